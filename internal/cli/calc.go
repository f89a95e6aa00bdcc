package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/ar-fit/internal/logger"
	"github.com/MKhiriev/ar-fit/internal/service"
	"github.com/MKhiriev/ar-fit/models"
)

// newCalcCommand needs no storage, so it does not open the app.
func newCalcCommand(_ *rootOptions) *cobra.Command {
	var (
		req            models.CalorieRequest
		activity, goal string
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Estimate daily calories and BMI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Activity = models.ActivityLevel(activity)
			req.Goal = models.WeightGoal(goal)

			result, err := service.NewCalculatorService(logger.Nop()).Calculate(cmd.Context(), req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "BMR: %d kcal\n", result.BMR)
			fmt.Fprintf(out, "Maintenance: %d kcal\n", result.Maintenance)
			fmt.Fprintf(out, "Target: %d kcal\n", result.Target)
			fmt.Fprintf(out, "BMI: %.1f (%s)\n", result.BMI, result.BMICategory)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Gender, "gender", "", "Gender (male, female)")
	cmd.Flags().IntVar(&req.Age, "age", 0, "Age in years")
	cmd.Flags().Float64Var(&req.Weight, "weight", 0, "Weight in kg")
	cmd.Flags().Float64Var(&req.Height, "height", 0, "Height in cm")
	cmd.Flags().StringVar(&activity, "activity", string(models.ActivitySedentary), "Activity (sedentary, light, moderate, active, very_active)")
	cmd.Flags().StringVar(&goal, "goal", string(models.GoalMaintain), "Goal (lose, maintain, gain)")
	for _, name := range []string{"gender", "age", "weight", "height"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}
