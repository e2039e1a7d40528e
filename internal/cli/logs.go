package cli

import (
	"fmt"

	"github.com/2beens/fittrack/internal/api"
	"github.com/2beens/fittrack/internal/gymstats/dailylog"
	"github.com/2beens/fittrack/pkg"

	"github.com/spf13/cobra"
)

func newLogCommand(s *state) *cobra.Command {
	var date, category string
	loadLogger := func(cmd *cobra.Command) (*dailylog.Logger, error) {
		if err := validateDateFlag(date); err != nil {
			return nil, err
		}
		logger := dailylog.NewLogger(s.app.Client, date)
		if err := logger.Load(cmd.Context()); err != nil {
			return nil, err
		}
		if category != "" {
			if err := logger.SetCategory(cmd.Context(), category); err != nil {
				return nil, err
			}
		}
		return logger, nil
	}
	show := func(cmd *cobra.Command, logger *dailylog.Logger) {
		d, c := logger.Key()
		renderLogs(cmd.OutOrStdout(), d, c, logger.Logs(), logger.AvailableExercises())
	}

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log exercises for a day",
	}
	cmd.PersistentFlags().StringVar(&date, "date", "", "day to log, YYYY-MM-DD (default today)")
	cmd.PersistentFlags().StringVar(&category, "category", "", "exercise group category (default first)")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the logged and the available exercises",
		Args:  cobra.NoArgs,
		RunE: authed(s, func(cmd *cobra.Command, _ []string) error {
			logger, err := loadLogger(cmd)
			if err != nil {
				return err
			}
			show(cmd, logger)
			return nil
		}),
	}

	add := &cobra.Command{
		Use:   "add EXERCISE",
		Short: "Log an exercise of the category with zero reps and count",
		Args:  cobra.ExactArgs(1),
		RunE: authed(s, func(cmd *cobra.Command, args []string) error {
			logger, err := loadLogger(cmd)
			if err != nil {
				return err
			}
			exercise, err := logger.FindExercise(args[0])
			if err != nil {
				return err
			}
			if _, err := logger.SelectExercise(cmd.Context(), *exercise); err != nil {
				return err
			}
			show(cmd, logger)
			return nil
		}),
	}

	var reps, count int
	set := &cobra.Command{
		Use:   "set EXERCISE",
		Short: "Update reps and count of a logged exercise",
		Args:  cobra.ExactArgs(1),
		RunE: authed(s, func(cmd *cobra.Command, args []string) error {
			update := api.LogUpdate{}
			if cmd.Flags().Changed("reps") {
				update.Reps = &reps
			}
			if cmd.Flags().Changed("count") {
				update.Count = &count
			}
			if update.Reps == nil && update.Count == nil {
				return fmt.Errorf("nothing to update, pass --reps and/or --count")
			}

			logger, err := loadLogger(cmd)
			if err != nil {
				return err
			}
			lg, err := logger.FindLog(args[0])
			if err != nil {
				return err
			}
			if _, err := logger.UpdateLog(cmd.Context(), lg.ID, update); err != nil {
				return err
			}
			show(cmd, logger)
			return nil
		}),
	}
	set.Flags().IntVar(&reps, "reps", 0, "repetitions")
	set.Flags().IntVar(&count, "count", 0, "sets")

	rm := &cobra.Command{
		Use:   "rm EXERCISE",
		Short: "Remove a logged exercise",
		Args:  cobra.ExactArgs(1),
		RunE: authed(s, func(cmd *cobra.Command, args []string) error {
			logger, err := loadLogger(cmd)
			if err != nil {
				return err
			}
			lg, err := logger.FindLog(args[0])
			if err != nil {
				return err
			}
			if err := logger.DeleteLog(cmd.Context(), lg.ID); err != nil {
				return err
			}
			show(cmd, logger)
			return nil
		}),
	}

	cmd.AddCommand(showCmd, add, set, rm)
	return cmd
}

// validateDateFlag accepts an empty --date, which means today.
func validateDateFlag(date string) error {
	if date == "" {
		return nil
	}
	return pkg.ValidateDate(date)
}
