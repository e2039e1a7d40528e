package cli

import (
	"fmt"
	"strconv"

	"github.com/2beens/fittrack/internal/api"
	"github.com/2beens/fittrack/internal/gymstats/profile"

	"github.com/spf13/cobra"
)

var (
	genders       = []string{"male", "female", "other"}
	fitnessLevels = []string{"beginner", "intermediate", "advanced"}
)

func oneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if a == value {
			return true
		}
	}
	return false
}

func newProfileCommand(s *state) *cobra.Command {
	loadEditor := func(cmd *cobra.Command) (*profile.Editor, error) {
		editor := profile.NewEditor(s.app.Client, s.app.Toaster)
		if err := editor.Load(cmd.Context()); err != nil {
			return nil, err
		}
		return editor, nil
	}
	show := func(cmd *cobra.Command, editor *profile.Editor) {
		bmi, ok := editor.BMI()
		category, _ := editor.BMICategory()
		renderProfile(cmd.OutOrStdout(), editor.Profile(), bmi, ok, category)
	}

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View and edit the user profile",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the profile with the BMI",
		Args:  cobra.NoArgs,
		RunE: authed(s, func(cmd *cobra.Command, _ []string) error {
			editor, err := loadEditor(cmd)
			if err != nil {
				return err
			}
			show(cmd, editor)
			return nil
		}),
	}

	var (
		edit      api.Profile
		weight    float64
		height    float64
		age       int
		goals     = map[string]*float64{}
		goalFlags = map[string]func(p *api.Profile) **float64{
			"water-goal":    func(p *api.Profile) **float64 { return &p.WaterGoal },
			"steps-goal":    func(p *api.Profile) **float64 { return &p.StepsGoal },
			"calorie-goal":  func(p *api.Profile) **float64 { return &p.CalorieGoal },
			"sleep-goal":    func(p *api.Profile) **float64 { return &p.SleepGoal },
			"body-fat-goal": func(p *api.Profile) **float64 { return &p.BodyFatGoal },
		}
		tracking map[string]string
	)
	set := &cobra.Command{
		Use:   "set",
		Short: "Change profile fields and save the whole profile",
		Args:  cobra.NoArgs,
		RunE: authed(s, func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			if flags.Changed("gender") && !oneOf(edit.Gender, genders) {
				return fmt.Errorf("invalid gender [%s]", edit.Gender)
			}
			if flags.Changed("fitness-level") && !oneOf(edit.FitnessLevel, fitnessLevels) {
				return fmt.Errorf("invalid fitness level [%s]", edit.FitnessLevel)
			}
			prefs := map[string]bool{}
			for section, v := range tracking {
				enabled, err := strconv.ParseBool(v)
				if err != nil {
					return fmt.Errorf("invalid tracking value for [%s]: %w", section, err)
				}
				prefs[section] = enabled
			}

			editor, err := loadEditor(cmd)
			if err != nil {
				return err
			}
			editor.Update(func(p *api.Profile) {
				if flags.Changed("firstname") {
					p.Firstname = edit.Firstname
				}
				if flags.Changed("lastname") {
					p.Lastname = edit.Lastname
				}
				if flags.Changed("gender") {
					p.Gender = edit.Gender
				}
				if flags.Changed("fitness-level") {
					p.FitnessLevel = edit.FitnessLevel
				}
				if flags.Changed("weight") {
					p.Weight = &weight
				}
				if flags.Changed("height") {
					p.Height = &height
				}
				if flags.Changed("age") {
					p.Age = &age
				}
				for name, field := range goalFlags {
					if flags.Changed(name) {
						v := *goals[name]
						*field(p) = &v
					}
				}
				if len(prefs) > 0 && p.TrackingPreferences == nil {
					p.TrackingPreferences = map[string]bool{}
				}
				for section, enabled := range prefs {
					p.TrackingPreferences[section] = enabled
				}
			})
			if err := editor.Save(cmd.Context()); err != nil {
				return err
			}
			show(cmd, editor)
			return nil
		}),
	}
	setFlags := set.Flags()
	setFlags.StringVar(&edit.Firstname, "firstname", "", "first name")
	setFlags.StringVar(&edit.Lastname, "lastname", "", "last name")
	setFlags.StringVar(&edit.Gender, "gender", "", "gender [male | female | other]")
	setFlags.StringVar(&edit.FitnessLevel, "fitness-level", "", "fitness level [beginner | intermediate | advanced]")
	setFlags.Float64Var(&weight, "weight", 0, "weight in kg")
	setFlags.Float64Var(&height, "height", 0, "height in cm")
	setFlags.IntVar(&age, "age", 0, "age in years")
	for name := range goalFlags {
		v := new(float64)
		goals[name] = v
		setFlags.Float64Var(v, name, 0, "daily essentials goal")
	}
	setFlags.StringToStringVar(&tracking, "track", nil, "tracked essentials sections, e.g. sleep=true,mood=false")

	goalAdd := &cobra.Command{
		Use:   "goal-add TEXT",
		Short: "Add a fitness goal",
		Args:  cobra.ExactArgs(1),
		RunE: authed(s, func(cmd *cobra.Command, args []string) error {
			editor, err := loadEditor(cmd)
			if err != nil {
				return err
			}
			editor.AddGoal()
			if err := editor.UpdateGoal(len(editor.Profile().Goals)-1, args[0]); err != nil {
				return err
			}
			if err := editor.Save(cmd.Context()); err != nil {
				return err
			}
			show(cmd, editor)
			return nil
		}),
	}

	goalRm := &cobra.Command{
		Use:   "goal-rm INDEX",
		Short: "Remove a fitness goal by its index",
		Args:  cobra.ExactArgs(1),
		RunE: authed(s, func(cmd *cobra.Command, args []string) error {
			idx, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid goal index [%s]: %w", args[0], err)
			}
			editor, err := loadEditor(cmd)
			if err != nil {
				return err
			}
			if err := editor.RemoveGoal(idx); err != nil {
				return err
			}
			if err := editor.Save(cmd.Context()); err != nil {
				return err
			}
			show(cmd, editor)
			return nil
		}),
	}

	cmd.AddCommand(showCmd, set, goalAdd, goalRm)
	return cmd
}
