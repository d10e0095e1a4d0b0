package render

import (
	"fmt"
	"io"

	"github.com/tlview/tlview/pkg/timeline"
	"github.com/xuri/excelize/v2"
)

// SummarySheet is the name of the first sheet of an exported workbook.
const SummarySheet = "summary"

// XLSX writes pages as a workbook: a summary sheet with per-producer
// statistics and the dataset id, followed by one sheet per page listing its
// clipped intervals and their source tables.
type XLSX struct{}

// Write encodes the workbook to w.
func (XLSX) Write(w io.Writer, pages []timeline.PageView, stats []timeline.ProducerStats) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SummarySheet); err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}

	header := []any{"producer", "events", "busy (ns)", "first (ns)", "last (ns)"}
	if err := f.SetSheetRow(SummarySheet, "A1", &header); err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}
	for i, st := range stats {
		row := []any{st.Producer, st.Events, st.Busy, st.First, st.Last}
		if err := f.SetSheetRow(SummarySheet, cell(1, i+2), &row); err != nil {
			return fmt.Errorf("xlsx: %w", err)
		}
	}
	if err := f.SetCellStyle(SummarySheet, "A1", "E1", bold); err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}
	if len(pages) > 0 && pages[0].DatasetID != "" {
		id := []any{"dataset", pages[0].DatasetID}
		if err := f.SetSheetRow(SummarySheet, "G1", &id); err != nil {
			return fmt.Errorf("xlsx: %w", err)
		}
		if err := f.SetCellStyle(SummarySheet, "G1", "G1", bold); err != nil {
			return fmt.Errorf("xlsx: %w", err)
		}
	}

	for _, v := range pages {
		name := PageSheetName(v.Page)
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("xlsx: sheet %s: %w", name, err)
		}
		header := []any{"producer", "start (ns)", "end (ns)", "duration (ns)", "source"}
		if err := f.SetSheetRow(name, "A1", &header); err != nil {
			return fmt.Errorf("xlsx: %w", err)
		}
		if err := f.SetCellStyle(name, "A1", "E1", bold); err != nil {
			return fmt.Errorf("xlsx: %w", err)
		}
		if v.Empty {
			if err := f.SetCellValue(name, "A2", NoDataText); err != nil {
				return fmt.Errorf("xlsx: %w", err)
			}
			continue
		}
		r := 2
		for _, row := range v.Rows() {
			for _, iv := range row.Intervals {
				vals := []any{iv.Producer, iv.Start, iv.End, iv.Duration(), iv.Source}
				if err := f.SetSheetRow(name, cell(1, r), &vals); err != nil {
					return fmt.Errorf("xlsx: %w", err)
				}
				r++
			}
		}
	}

	f.SetActiveSheet(0)
	if err := f.Write(w); err != nil {
		return fmt.Errorf("xlsx: write: %w", err)
	}
	return nil
}

// PageSheetName names the sheet holding page p.
func PageSheetName(p int) string {
	return fmt.Sprintf("page %d", p)
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
