package schedule

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"growsphere/pkg/plan/types"
)

const (
	CalendarSheet = "Calendar"
	SummarySheet  = "Summary"
)

// ExportXLSX writes plan as a workbook: one row per activity on the
// Calendar sheet and the plan header on the Summary sheet.
func ExportXLSX(w io.Writer, title string, plan types.CalendarPlan) error {
	x := excelize.NewFile()
	defer x.Close()

	if err := x.SetSheetName("Sheet1", CalendarSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	header := []any{"Month", "Label", "Week", "Activity", "Description"}
	if err := x.SetSheetRow(CalendarSheet, "A1", &header); err != nil {
		return err
	}
	bold, err := x.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	_ = x.SetCellStyle(CalendarSheet, "A1", "E1", bold)
	_ = x.SetColWidth(CalendarSheet, "D", "D", 18)
	_ = x.SetColWidth(CalendarSheet, "E", "E", 60)

	row := 2
	for _, m := range plan.Months {
		for _, a := range m.Activities {
			cell, _ := excelize.CoordinatesToCellName(1, row)
			vals := []any{m.Number, m.Label, a.Week, a.Title, a.Description}
			if err := x.SetSheetRow(CalendarSheet, cell, &vals); err != nil {
				return err
			}
			row++
		}
	}

	if _, err := x.NewSheet(SummarySheet); err != nil {
		return err
	}
	summary := [][]any{
		{"Plan", title},
		{"Starting", plan.StartMonth},
		{"Growth period (months)", plan.GrowthPeriodMonths},
		{"Total weeks", plan.TotalWeeks},
		{"Activities", len(plan.Activities)},
		{"Daily reminders", strings.Join(plan.DailyReminders, ", ")},
	}
	for i, r := range summary {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := x.SetSheetRow(SummarySheet, cell, &r); err != nil {
			return err
		}
	}
	_ = x.SetColWidth(SummarySheet, "A", "A", 24)

	if _, err := x.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
