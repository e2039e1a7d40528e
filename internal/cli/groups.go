package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/2beens/fittrack/internal/gymstats/groups"
	"github.com/2beens/fittrack/internal/gymstats/viewstate"

	"github.com/spf13/cobra"
)

// editGroups loads the document, applies edit and saves the whole document.
func editGroups(ctx context.Context, s *state, edit func(e *groups.Editor) error) (*groups.Editor, error) {
	editor := groups.NewEditor(s.app.Client, s.app.Toaster)
	if err := editor.Load(ctx); err != nil {
		return nil, err
	}
	if err := edit(editor); err != nil {
		return nil, err
	}
	if err := editor.SaveAll(ctx); err != nil {
		return nil, err
	}
	return editor, nil
}

func newGroupsCommand(s *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "groups",
		Short: "Manage exercise groups",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show all categories and their exercises",
		Args:  cobra.NoArgs,
		RunE: authed(s, func(cmd *cobra.Command, _ []string) error {
			editor := groups.NewEditor(s.app.Client, s.app.Toaster)
			if err := editor.Load(cmd.Context()); err != nil {
				return err
			}
			renderGroups(cmd.OutOrStdout(), editor.Document(), editor.SelectedCategory())
			return nil
		}),
	}

	edit := func(use, short string, nArgs int, fn func(e *groups.Editor, args []string) error) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.ExactArgs(nArgs),
			RunE: authed(s, func(cmd *cobra.Command, args []string) error {
				editor, err := editGroups(cmd.Context(), s, func(e *groups.Editor) error {
					return fn(e, args)
				})
				if err != nil {
					return err
				}
				renderGroups(cmd.OutOrStdout(), editor.Document(), editor.SelectedCategory())
				return nil
			}),
		}
	}

	var description string
	addExercise := edit("add-exercise CATEGORY NAME", "Add an exercise to a category", 2, func(e *groups.Editor, args []string) error {
		return e.AddExercise(args[0], args[1], description)
	})
	addExercise.Flags().StringVar(&description, "description", "", "optional exercise description")

	suggest := &cobra.Command{
		Use:   "suggest PROMPT...",
		Short: "Ask the assistant to rebuild the groups and save them",
		Args:  cobra.MinimumNArgs(1),
		RunE: authed(s, func(cmd *cobra.Command, args []string) error {
			editor := groups.NewEditor(s.app.Client, s.app.Toaster)
			if err := editor.Load(cmd.Context()); err != nil {
				return err
			}
			unsubscribe := editor.Subscribe(suggestProgress(cmd.OutOrStdout(), editor))
			defer unsubscribe()

			summary, err := editor.ApplyAISuggestions(cmd.Context(), strings.Join(args, " "))
			if summary != "" {
				fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(summary))
			}
			if err != nil {
				return err
			}
			renderGroups(cmd.OutOrStdout(), editor.Document(), editor.SelectedCategory())
			return nil
		}),
	}

	cmd.AddCommand(
		show,
		edit("add-category NAME", "Add an empty category", 1, func(e *groups.Editor, args []string) error {
			return e.AddCategory(args[0])
		}),
		edit("rename-category OLD NEW", "Rename a category", 2, func(e *groups.Editor, args []string) error {
			return e.RenameCategory(args[0], args[1])
		}),
		edit("delete-category NAME", "Delete a category and its exercises", 1, func(e *groups.Editor, args []string) error {
			return e.DeleteCategory(args[0])
		}),
		addExercise,
		edit("rename-exercise CATEGORY EXERCISE NEW", "Rename an exercise", 3, func(e *groups.Editor, args []string) error {
			return e.RenameExercise(args[0], args[1], args[2])
		}),
		edit("delete-exercise CATEGORY EXERCISE", "Delete an exercise", 2, func(e *groups.Editor, args []string) error {
			return e.DeleteExercise(args[0], args[1])
		}),
		suggest,
	)
	return cmd
}

// suggestProgress prints each stage of a suggestion run once, as the editor reports it.
func suggestProgress(w io.Writer, editor *groups.Editor) viewstate.Listener {
	var asked, saving bool
	return func() {
		if editor.AILoading() && !asked {
			asked = true
			printMuted(w, "Asking the assistant...")
		}
		if editor.Saving() && !saving {
			saving = true
			printMuted(w, "Saving exercise groups...")
		}
	}
}
