package cli

import (
	"fmt"
	"os"

	"github.com/2beens/fittrack/internal/gymstats/stats"

	"github.com/spf13/cobra"
)

func newStatsCommand(s *state) *cobra.Command {
	var (
		days     int
		category string
		xlsxPath string
	)
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show progress against the lifetime average",
		Args:  cobra.NoArgs,
		RunE: authed(s, func(cmd *cobra.Command, _ []string) error {
			if days <= 0 {
				return fmt.Errorf("invalid days: %d", days)
			}
			// the viewer starts on its first category, so a single request serves the selection
			viewer := stats.NewViewer(s.app.Client, withFirst(stats.DefaultCategories, category))
			var err error
			if days != viewer.Days() {
				err = viewer.SelectDateRange(cmd.Context(), days)
			} else {
				err = viewer.Load(cmd.Context())
			}
			if err != nil {
				return err
			}
			renderStats(cmd.OutOrStdout(), viewer)

			if xlsxPath == "" {
				return nil
			}
			f, err := os.Create(xlsxPath)
			if err != nil {
				return fmt.Errorf("create xlsx file: %w", err)
			}
			defer f.Close()
			if err := stats.WriteXLSX(f, viewer.Response()); err != nil {
				return err
			}
			printMuted(cmd.OutOrStdout(), "exported to %s", xlsxPath)
			return nil
		}),
	}
	cmd.Flags().IntVar(&days, "days", stats.DefaultDays, "period length in days [7 | 15 | 30 | 180]")
	cmd.Flags().StringVar(&category, "category", stats.DefaultCategories[0], "category [arms | core | thighs | back]")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "also export the stats to this .xlsx file")
	return cmd
}

func withFirst(list []string, first string) []string {
	out := []string{first}
	for _, v := range list {
		if v != first {
			out = append(out, v)
		}
	}
	return out
}
