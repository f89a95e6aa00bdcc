package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/ar-fit/internal/client"
	"github.com/MKhiriev/ar-fit/models"
)

func newTasksCommand(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Show today's tasks of the logged-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withApp(cmd, func(a *client.App) error {
				s := a.Services()
				user, err := s.AuthService.Current(cmd.Context(), s.Session)
				if err != nil {
					return err
				}
				tasks, err := s.TaskService.TodayTasks(cmd.Context(), user.ID)
				if err != nil {
					return err
				}
				printTasks(cmd.OutOrStdout(), tasks, s.TaskService.Progress(tasks))
				return nil
			})
		},
	}

	cmd.AddCommand(newToggleTaskCommand(o))
	return cmd
}

func newToggleTaskCommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle TASK",
		Short: "Mark a task done or undone; TASK is its number in the list or its id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withApp(cmd, func(a *client.App) error {
				s := a.Services()
				user, err := s.AuthService.Current(cmd.Context(), s.Session)
				if err != nil {
					return err
				}
				tasks, err := s.TaskService.TodayTasks(cmd.Context(), user.ID)
				if err != nil {
					return err
				}

				taskID := resolveTaskID(tasks, args[0])
				progress, err := s.TaskService.ToggleTask(cmd.Context(), s.Session, taskID)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Progress: %d/%d (%.0f%%), %d kcal burned\n",
					progress.Completed, progress.Total, progress.Percentage, progress.CaloriesBurned)
				return nil
			})
		},
	}
}

// resolveTaskID maps a 1-based list position to the task id. Anything
// else is taken as an id.
func resolveTaskID(tasks []models.DailyTask, ref string) string {
	if n, err := parsePositiveInt("task", ref); err == nil && n <= len(tasks) {
		return tasks[n-1].ID
	}
	return strings.TrimSpace(ref)
}

func printTasks(w io.Writer, tasks []models.DailyTask, progress models.DayProgress) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks for today")
		return
	}
	for i, task := range tasks {
		check := " "
		if task.Completed {
			check = "x"
		}
		fmt.Fprintf(w, "%d. [%s] %s (%s, %d kcal)\n", i+1, check, task.Title, task.Category, task.Category.CaloriesBurned())
	}
	fmt.Fprintf(w, "Progress: %d/%d (%.0f%%), %d kcal burned\n",
		progress.Completed, progress.Total, progress.Percentage, progress.CaloriesBurned)
}
