package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/ar-fit/internal/client"
	"github.com/MKhiriev/ar-fit/internal/service"
	"github.com/MKhiriev/ar-fit/models"
)

func newPlansCommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "plans",
		Short: "List the subscription plans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withApp(cmd, func(a *client.App) error {
				out := cmd.OutOrStdout()
				for _, plan := range a.Services().SubscriptionService.Plans() {
					fmt.Fprintf(out, "%-10s %2d month(s) %6.0f\n", plan.Type, plan.Duration, plan.Price)
				}
				return nil
			})
		},
	}
}

func newSubscribeCommand(o *rootOptions) *cobra.Command {
	var kind string
	var months int

	cmd := &cobra.Command{
		Use:   "subscribe",
		Short: "Activate a plan for the logged-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withApp(cmd, func(a *client.App) error {
				s := a.Services()
				plan, err := findPlan(s.SubscriptionService.Plans(), models.SubscriptionType(strings.ToLower(kind)), months)
				if err != nil {
					return err
				}

				user, err := s.AuthService.Current(cmd.Context(), s.Session)
				if err != nil {
					return err
				}

				updated, err := s.SubscriptionService.Activate(cmd.Context(), s.Session, models.ActivationRequest{
					UserID:   user.ID,
					Type:     plan.Type,
					Duration: plan.Duration,
					Price:    plan.Price,
				})
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				printSubscription(out, "Workout plan", updated.Subscriptions.Workout, s.SubscriptionService.IsActive(updated, models.SubscriptionWorkout))
				printSubscription(out, "Nutrition plan", updated.Subscriptions.Nutrition, s.SubscriptionService.IsActive(updated, models.SubscriptionNutrition))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&kind, "type", "", "Plan type (workout, nutrition, combo)")
	cmd.Flags().IntVar(&months, "months", 1, "Plan length in months (1, 6, 12)")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func findPlan(plans []models.Plan, kind models.SubscriptionType, months int) (models.Plan, error) {
	for _, plan := range plans {
		if plan.Type == kind && plan.Duration == months {
			return plan, nil
		}
	}
	return models.Plan{}, fmt.Errorf("%w: no %s plan for %d month(s)", service.ErrInvalidDataProvided, kind, months)
}
