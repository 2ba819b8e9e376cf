package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/levelup/internal/model"
	"github.com/sandeepkv93/levelup/internal/views"
)

func newAddCmd(app *App) *cobra.Command {
	var tagName string

	cmd := &cobra.Command{
		Use:   "add [--tag TAG] <description...>",
		Short: "Add a task to the checklist",
		RunE: func(cmd *cobra.Command, args []string) error {
			description := strings.TrimSpace(strings.Join(args, " "))
			tag := model.ParseTag(tagName)
			if description == "" {
				if app.IsInteractive == nil || !app.IsInteractive() {
					fmt.Fprintln(cmd.OutOrStdout(), views.Muted.Render("nothing added"))
					return nil
				}
				var err error
				description, tag, err = runAddForm(tag)
				if err != nil {
					return err
				}
			}
			if !tag.IsKnown() {
				return fmt.Errorf("unknown tag %q (choose from %s)", tagName, tagList())
			}

			ctx := cmd.Context()
			s, err := openSession(ctx, cmd, app)
			if err != nil {
				return err
			}
			defer s.close()

			task, ok := s.checklist.Add(description, tag)
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), views.Muted.Render("nothing added"))
				return nil
			}
			if err := s.save(ctx); err != nil {
				return err
			}
			s.logger.Debug("task_added", "tag", string(task.Tag), "tasks", s.checklist.Len())

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %d. %s %s\n", views.Good.Render("added"), s.checklist.Len(), views.Checkbox(false), task.Label())
			return nil
		},
	}

	cmd.Flags().StringVarP(&tagName, "tag", "t", string(model.DefaultTag()), "Task tag ("+tagList()+")")
	return cmd
}

func newToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <n>",
		Short: "Toggle completion of the n-th task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return fmt.Errorf("invalid task number: %s", args[0])
			}

			ctx := cmd.Context()
			s, err := openSession(ctx, cmd, app)
			if err != nil {
				return err
			}
			defer s.close()

			change, err := s.checklist.ToggleAt(n - 1)
			if err != nil {
				return fmt.Errorf("no task number %d: %w", n, err)
			}
			if err := s.save(ctx); err != nil {
				return err
			}
			s.logger.Debug("task_toggled", "completed", change.Task.Completed, "total_points", change.TotalPoints, "level", change.Level)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d. %s %s\n", n, views.Checkbox(change.Task.Completed), change.Task.Label())
			fmt.Fprintln(out, views.LabelValue("Today's Total Points", change.TotalPoints))
			fmt.Fprintln(out, views.LabelValue("Level", change.Level))
			if change.LeveledUp {
				s.logger.Info("level_up", "from", change.PreviousLevel, "to", change.Level)
				fmt.Fprintf(out, "%s reached level %d\n", views.BadgeLevelUp, change.Level)
			}
			return nil
		},
	}
}

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the checklist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), cmd, app)
			if err != nil {
				return err
			}
			defer s.close()

			out := cmd.OutOrStdout()
			tasks := s.checklist.Tasks()
			if len(tasks) == 0 {
				fmt.Fprintln(out, views.Muted.Render("no tasks yet"))
				return nil
			}
			for i, t := range tasks {
				fmt.Fprintf(out, "%d. %s %s %s\n", i+1, views.Checkbox(t.Completed), t.Label(), views.Muted.Render(fmt.Sprintf("+%d", t.Points())))
			}
			return nil
		},
	}
}

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show points, level and progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printStatus(cmd, app)
		},
	}
}

func printStatus(cmd *cobra.Command, app *App) error {
	s, err := openSession(cmd.Context(), cmd, app)
	if err != nil {
		return err
	}
	defer s.close()

	sum := s.checklist.Summary()
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, views.Heading("🎯", "Level Up"))
	fmt.Fprintln(out, views.LabelValue("Tasks", fmt.Sprintf("%d (%d completed)", sum.Tasks, sum.Completed)))
	fmt.Fprintln(out, views.LabelValue("Today's Total Points", sum.TotalPoints))
	fmt.Fprintln(out, views.LabelValue("Level", sum.Level))
	fmt.Fprintln(out, views.LabelValue("Progress", fmt.Sprintf("%.0f%%", sum.Progress)))
	if sum.MaxLevel {
		fmt.Fprintln(out, views.LabelValue("Next level", "max level reached"))
	} else {
		fmt.Fprintln(out, views.LabelValue("Next level", fmt.Sprintf("at %d pts", sum.NextAt)))
	}
	if at, ok := s.lastSaved(cmd.Context()); ok {
		fmt.Fprintln(out, views.LabelValue("Last saved", at.Local().Format("2006-01-02 15:04:05")))
	}
	return nil
}

func newTagsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "Show the points awarded per tag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, tag := range model.Tags() {
				fmt.Fprintf(out, "%-10s %3d\n", tag, model.PointsFor(tag))
			}
			return nil
		},
	}
}

func tagList() string {
	tags := model.Tags()
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, string(t))
	}
	return strings.Join(names, "|")
}
