package cli

import (
	"fmt"

	"github.com/2beens/fittrack/internal/gymstats/exercises"

	"github.com/spf13/cobra"
)

func newExercisesCommand(s *state) *cobra.Command {
	var category string
	loadManager := func(cmd *cobra.Command) (*exercises.Manager, error) {
		manager := exercises.NewManager(s.app.Client, exercises.DefaultCategories)
		if err := manager.SelectCategory(category); err != nil {
			return nil, err
		}
		if err := manager.Load(cmd.Context()); err != nil {
			return nil, err
		}
		return manager, nil
	}

	cmd := &cobra.Command{
		Use:   "exercises",
		Short: "Manage the flat exercise list",
	}
	cmd.PersistentFlags().StringVar(&category, "category", exercises.DefaultCategories[0], "category [arms | core | thighs | back]")

	list := &cobra.Command{
		Use:   "list",
		Short: "List the exercises of a category",
		Args:  cobra.NoArgs,
		RunE: authed(s, func(cmd *cobra.Command, _ []string) error {
			manager, err := loadManager(cmd)
			if err != nil {
				return err
			}
			renderExercises(cmd.OutOrStdout(), category, manager.ByCategory(category))
			return nil
		}),
	}

	add := &cobra.Command{
		Use:   "add NAME",
		Short: "Add an exercise to the category",
		Args:  cobra.ExactArgs(1),
		RunE: authed(s, func(cmd *cobra.Command, args []string) error {
			manager, err := loadManager(cmd)
			if err != nil {
				return err
			}
			created, err := manager.Add(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if created == nil {
				printMuted(cmd.OutOrStdout(), "blank name, nothing added")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(fmt.Sprintf("Added %s (%s)", created.Name, created.ID)))
			return nil
		}),
	}

	del := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete an exercise by id",
		Args:  cobra.ExactArgs(1),
		RunE: authed(s, func(cmd *cobra.Command, args []string) error {
			manager, err := loadManager(cmd)
			if err != nil {
				return err
			}
			if err := manager.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Deleted "+args[0]))
			return nil
		}),
	}

	cmd.AddCommand(list, add, del)
	return cmd
}
