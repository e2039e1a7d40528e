package cli

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/2beens/fittrack/internal/api"
	"github.com/2beens/fittrack/internal/gymstats/essentials"

	"github.com/spf13/cobra"
)

type essentialSetter func(ctx context.Context, t *essentials.Tracker, value string) error

func floatSetter(update func(t *essentials.Tracker, ctx context.Context, v float64) (*api.LogEssential, error)) essentialSetter {
	return func(ctx context.Context, t *essentials.Tracker, value string) error {
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid number [%s]: %w", value, err)
		}
		_, err = update(t, ctx, v)
		return err
	}
}

func intSetter(update func(t *essentials.Tracker, ctx context.Context, v int) (*api.LogEssential, error)) essentialSetter {
	return func(ctx context.Context, t *essentials.Tracker, value string) error {
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer [%s]: %w", value, err)
		}
		_, err = update(t, ctx, v)
		return err
	}
}

func boolSetter(update func(t *essentials.Tracker, ctx context.Context, v bool) (*api.LogEssential, error)) essentialSetter {
	return func(ctx context.Context, t *essentials.Tracker, value string) error {
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid bool [%s]: %w", value, err)
		}
		_, err = update(t, ctx, v)
		return err
	}
}

var essentialSetters = map[string]essentialSetter{
	"water":           floatSetter((*essentials.Tracker).UpdateWaterIntake),
	"steps":           intSetter((*essentials.Tracker).UpdateSteps),
	"calories":        intSetter((*essentials.Tracker).UpdateCaloriesConsumed),
	"calories-burned": intSetter((*essentials.Tracker).UpdateCaloriesBurned),
	"sleep":           floatSetter((*essentials.Tracker).UpdateSleepHours),
	"sleep-quality":   intSetter((*essentials.Tracker).UpdateSleepQuality),
	"weight":          floatSetter((*essentials.Tracker).UpdateWeight),
	"mood":            intSetter((*essentials.Tracker).UpdateMood),
	"energy":          intSetter((*essentials.Tracker).UpdateEnergy),
	"body-fat":        floatSetter((*essentials.Tracker).UpdateBodyFatPercentage),
	"muscle-mass":     floatSetter((*essentials.Tracker).UpdateMuscleMass),
	"waist":           floatSetter((*essentials.Tracker).UpdateWaistCircumference),
	"multivitamin":    boolSetter((*essentials.Tracker).ToggleMultivitamin),
	"vitamin-d":       boolSetter((*essentials.Tracker).ToggleVitaminD),
	"omega3":          boolSetter((*essentials.Tracker).ToggleOmega3),
	"protein":         floatSetter((*essentials.Tracker).UpdateProteinPowder),
	"meditation":      floatSetter((*essentials.Tracker).UpdateMeditation),
	"reading":         floatSetter((*essentials.Tracker).UpdateReading),
	"screen-time":     floatSetter((*essentials.Tracker).UpdateScreenTime),
	"stress":          intSetter((*essentials.Tracker).UpdateStressLevel),
	"other-supplements": func(ctx context.Context, t *essentials.Tracker, value string) error {
		_, err := t.UpdateOtherSupplements(ctx, value)
		return err
	},
}

func essentialFields() string {
	fields := make([]string, 0, len(essentialSetters))
	for f := range essentialSetters {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return strings.Join(fields, ", ")
}

func newEssentialsCommand(s *state) *cobra.Command {
	var date string
	loadTracker := func(cmd *cobra.Command) (*essentials.Tracker, error) {
		if err := validateDateFlag(date); err != nil {
			return nil, err
		}
		tracker := essentials.NewTracker(s.app.Client, date)
		if err := tracker.Load(cmd.Context()); err != nil {
			return nil, err
		}
		return tracker, nil
	}

	cmd := &cobra.Command{
		Use:   "essentials",
		Short: "Track daily essentials",
	}
	cmd.PersistentFlags().StringVar(&date, "date", "", "day, YYYY-MM-DD (default today)")

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the day's essentials against the goals",
		Args:  cobra.NoArgs,
		RunE: authed(s, func(cmd *cobra.Command, _ []string) error {
			tracker, err := loadTracker(cmd)
			if err != nil {
				return err
			}
			renderEssentials(cmd.OutOrStdout(), tracker)
			return nil
		}),
	}

	set := &cobra.Command{
		Use:   "set FIELD VALUE",
		Short: "Set one field of the day's record",
		Long:  "Set one field of the day's record. Fields: " + essentialFields(),
		Args:  cobra.ExactArgs(2),
		RunE: authed(s, func(cmd *cobra.Command, args []string) error {
			setter, ok := essentialSetters[args[0]]
			if !ok {
				return fmt.Errorf("unknown field [%s], one of: %s", args[0], essentialFields())
			}
			tracker, err := loadTracker(cmd)
			if err != nil {
				return err
			}
			if err := setter(cmd.Context(), tracker, args[1]); err != nil {
				return err
			}
			renderEssentials(cmd.OutOrStdout(), tracker)
			return nil
		}),
	}

	step := func(use, short string, inc, dec func(t *essentials.Tracker, ctx context.Context) (*api.LogEssential, error)) *cobra.Command {
		return &cobra.Command{
			Use:       use + " inc|dec",
			Short:     short,
			Args:      cobra.ExactArgs(1),
			ValidArgs: []string{"inc", "dec"},
			RunE: authed(s, func(cmd *cobra.Command, args []string) error {
				var fn func(t *essentials.Tracker, ctx context.Context) (*api.LogEssential, error)
				switch args[0] {
				case "inc", "+":
					fn = inc
				case "dec", "-":
					fn = dec
				default:
					return fmt.Errorf("expected inc or dec, got [%s]", args[0])
				}
				tracker, err := loadTracker(cmd)
				if err != nil {
					return err
				}
				if _, err := fn(tracker, cmd.Context()); err != nil {
					return err
				}
				renderEssentials(cmd.OutOrStdout(), tracker)
				return nil
			}),
		}
	}

	cmd.AddCommand(
		show,
		set,
		step("water", "Add or remove 0.1 l of water", (*essentials.Tracker).IncrementWater, (*essentials.Tracker).DecrementWater),
		step("steps", "Add or remove 500 steps", (*essentials.Tracker).IncrementSteps, (*essentials.Tracker).DecrementSteps),
	)
	return cmd
}
