package stats

import (
	"fmt"
	"io"
	"strings"

	"github.com/2beens/fittrack/internal/api"

	"github.com/xuri/excelize/v2"
)

const (
	SheetExercises = "Exercises"
	SheetOverall   = "Overall"
)

var exerciseColumns = []string{
	"Exercise",
	"Total reps",
	"Total count",
	"Expected reps",
	"Expected count",
	"Lifetime avg reps",
	"Days in period",
	"Change %",
	"Progress %",
}

// WriteXLSX writes the per-exercise table and the overall block as an xlsx workbook.
func WriteXLSX(w io.Writer, resp *api.EnhancedStatsResponse) error {
	f, err := NewWorkbook(resp)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// NewWorkbook builds the stats workbook. Rows of the exercises sheet are filled
// with the progress color of their reps.
func NewWorkbook(resp *api.EnhancedStatsResponse) (*excelize.File, error) {
	if resp == nil {
		resp = &api.EnhancedStatsResponse{}
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetExercises); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetOverall); err != nil {
		return nil, fmt.Errorf("create overall sheet: %w", err)
	}

	if err := writeExercisesSheet(f, resp.Exercises); err != nil {
		return nil, fmt.Errorf("exercises sheet: %w", err)
	}
	if err := writeOverallSheet(f, resp.Overall); err != nil {
		return nil, fmt.Errorf("overall sheet: %w", err)
	}

	f.SetActiveSheet(0)
	return f, nil
}

func writeExercisesSheet(f *excelize.File, exercises []api.ExerciseStats) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"1F4E79"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}

	if err := f.SetSheetRow(SheetExercises, "A1", &exerciseColumns); err != nil {
		return err
	}
	lastCol, err := excelize.ColumnNumberToName(len(exerciseColumns))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetExercises, "A1", lastCol+"1", headerStyle); err != nil {
		return err
	}

	styles := map[string]int{}
	for i, ex := range exercises {
		row := i + 2
		current, expected := ex.Totals.Reps, ex.ExpectedFromAverage.Reps
		values := []any{
			ex.ExerciseName,
			ex.Totals.Reps,
			ex.Totals.Count,
			ex.ExpectedFromAverage.Reps,
			ex.ExpectedFromAverage.Count,
			ex.LifetimeAverage.Reps,
			ex.DaysInPeriod,
			ChangePercent(current, expected),
			ProgressPercent(current, expected),
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetExercises, cell, &values); err != nil {
			return err
		}

		color := strings.TrimPrefix(ProgressColor(current, expected), "#")
		style, ok := styles[color]
		if !ok {
			style, err = f.NewStyle(&excelize.Style{
				Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
			})
			if err != nil {
				return err
			}
			styles[color] = style
		}
		if err := f.SetCellStyle(SheetExercises, fmt.Sprintf("H%d", row), fmt.Sprintf("I%d", row), style); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(SheetExercises, "A", "A", 28); err != nil {
		return err
	}
	return f.SetColWidth(SheetExercises, "B", lastCol, 16)
}

func writeOverallSheet(f *excelize.File, overall *api.OverallStats) error {
	if overall == nil {
		return f.SetCellValue(SheetOverall, "A1", "No overall stats")
	}

	labelStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E2EFDA"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	rows := [][]any{
		{"Current streak", overall.CurrentStreak},
		{"Longest streak", overall.LongestStreak},
		{"Total workout days", overall.TotalWorkoutDays},
		{"Total exercises", overall.TotalExercises},
		{"Period total reps", overall.PeriodTotal.Reps},
		{"Period total count", overall.PeriodTotal.Count},
		{"Lifetime avg reps", overall.LifetimeAverage.Reps},
		{"Lifetime avg count", overall.LifetimeAverage.Count},
		{"Comparison %", overall.ComparisonPercent},
	}
	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(SheetOverall, cell, &row); err != nil {
			return err
		}
		if err := f.SetCellStyle(SheetOverall, cell, cell, labelStyle); err != nil {
			return err
		}
	}
	return f.SetColWidth(SheetOverall, "A", "A", 22)
}
