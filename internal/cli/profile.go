package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/ar-fit/internal/client"
	"github.com/MKhiriev/ar-fit/models"
)

var errNothingToUpdate = errors.New("nothing to update, pass at least one flag")

func newProfileCommand(o *rootOptions) *cobra.Command {
	var (
		name, gender   string
		age            int
		weight, height float64
	)

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Update name, gender, age, weight or height",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch models.ProfilePatch
			flags := cmd.Flags()
			if flags.Changed("name") {
				patch.Name = &name
			}
			if flags.Changed("gender") {
				patch.Gender = &gender
			}
			if flags.Changed("age") {
				patch.Age = &age
			}
			if flags.Changed("weight") {
				patch.Weight = &weight
			}
			if flags.Changed("height") {
				patch.Height = &height
			}
			if patch.IsEmpty() {
				return errNothingToUpdate
			}

			return o.withApp(cmd, func(a *client.App) error {
				s := a.Services()
				user, err := s.ProfileService.UpdateProfile(cmd.Context(), s.Session, patch)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Profile updated: %s, %s, %d y, %.1f kg, %.1f cm\n",
					dashIfEmpty(user.Name), dashIfEmpty(user.Gender), user.Age, user.Weight, user.Height)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&gender, "gender", "", "Gender (male, female)")
	cmd.Flags().IntVar(&age, "age", 0, "Age in years")
	cmd.Flags().Float64Var(&weight, "weight", 0, "Weight in kg")
	cmd.Flags().Float64Var(&height, "height", 0, "Height in cm")

	return cmd
}

func newSurveyCommand(o *rootOptions) *cobra.Command {
	var bodyProblems, dietRestrictions []string

	cmd := &cobra.Command{
		Use:   "survey",
		Short: "Replace the body problems and diet restrictions answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withApp(cmd, func(a *client.App) error {
				s := a.Services()
				user, err := s.ProfileService.SubmitSurvey(cmd.Context(), s.Session, bodyProblems, dietRestrictions)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Survey saved: %d body problem(s), %d diet restriction(s)\n",
					len(user.BodyProblems), len(user.DietRestrictions))
				return nil
			})
		},
	}

	cmd.Flags().StringSliceVar(&bodyProblems, "body-problems", nil, "Comma separated body problems (e.g. back,knees)")
	cmd.Flags().StringSliceVar(&dietRestrictions, "diet", nil, "Comma separated diet restrictions (e.g. vegan,gluten)")

	return cmd
}

func newMealCommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "meal NAME CALORIES",
		Short: "Log a meal for today",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			calories, err := parsePositiveInt("calories", args[1])
			if err != nil {
				return err
			}

			return o.withApp(cmd, func(a *client.App) error {
				s := a.Services()
				user, err := s.ProfileService.AddMeal(cmd.Context(), s.Session, args[0], calories)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Logged %s (%d kcal), today: %d kcal\n",
					args[0], calories, s.ProfileService.TodayMealCalories(user))
				return nil
			})
		},
	}
}

func newStepsCommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "steps COUNT",
		Short: "Record today's step count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, err := strconv.Atoi(args[0])
			if err != nil || steps < 0 {
				return fmt.Errorf("invalid step count %q", args[0])
			}

			return o.withApp(cmd, func(a *client.App) error {
				s := a.Services()
				if _, err := s.ProfileService.RecordSteps(cmd.Context(), s.Session, steps); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Steps today: %d\n", steps)
				return nil
			})
		},
	}
}

func parsePositiveInt(name, value string) (int, error) {
	v, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, value)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be > 0", name)
	}
	return v, nil
}
