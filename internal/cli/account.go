package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/ar-fit/internal/client"
	"github.com/MKhiriev/ar-fit/models"
)

func newRegisterCommand(o *rootOptions) *cobra.Command {
	var email, password, name string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account on this device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withApp(cmd, func(a *client.App) error {
				user, err := a.Services().AuthService.Register(cmd.Context(), models.User{
					Email:    strings.TrimSpace(email),
					Password: password,
					Name:     strings.TrimSpace(name),
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Registered %s (id %s)\n", user.Email, user.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLoginCommand(o *rootOptions) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in; the session is kept until logout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withApp(cmd, func(a *client.App) error {
				s := a.Services()
				user, err := s.AuthService.Login(cmd.Context(), s.Session, strings.TrimSpace(email), password)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", user.Email)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withApp(cmd, func(a *client.App) error {
				s := a.Services()
				if err := s.AuthService.Logout(cmd.Context(), s.Session); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
				return nil
			})
		},
	}
}

func newWhoAmICommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withApp(cmd, func(a *client.App) error {
				s := a.Services()
				user, err := s.AuthService.Current(cmd.Context(), s.Session)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Email: %s\n", user.Email)
				fmt.Fprintf(out, "Name: %s\n", dashIfEmpty(user.Name))
				if user.Age > 0 {
					fmt.Fprintf(out, "Profile: %s, %d y, %.1f kg, %.1f cm\n", dashIfEmpty(user.Gender), user.Age, user.Weight, user.Height)
				}
				fmt.Fprintf(out, "Streak: %d day(s)\n", user.Stats.Streak)
				fmt.Fprintf(out, "Workouts completed: %d\n", user.Stats.WorkoutsCompleted)
				fmt.Fprintf(out, "Eaten today: %d kcal\n", s.ProfileService.TodayMealCalories(user))
				printSubscription(out, "Workout plan", user.Subscriptions.Workout, s.SubscriptionService.IsActive(user, models.SubscriptionWorkout))
				printSubscription(out, "Nutrition plan", user.Subscriptions.Nutrition, s.SubscriptionService.IsActive(user, models.SubscriptionNutrition))
				return nil
			})
		},
	}
}

func printSubscription(w io.Writer, label string, sub *models.Subscription, active bool) {
	switch {
	case sub == nil:
		fmt.Fprintf(w, "%s: none\n", label)
	case active:
		fmt.Fprintf(w, "%s: active until %s\n", label, sub.EndDate.Format("2006-01-02"))
	default:
		fmt.Fprintf(w, "%s: expired on %s\n", label, sub.EndDate.Format("2006-01-02"))
	}
}

func dashIfEmpty(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}
