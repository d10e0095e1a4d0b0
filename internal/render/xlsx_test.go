package render

import (
	"bytes"
	"testing"

	"github.com/tlview/tlview/pkg/timeline"
	"github.com/xuri/excelize/v2"
)

func TestXLSX_Write(t *testing.T) {
	s, views := testViews(t)
	var buf bytes.Buffer
	if err := (XLSX{}).Write(&buf, views, timeline.Stats(s.Dataset(), s.Order())); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	want := []string{SummarySheet, "page 0", "page 1", "page 2", "page 3"}
	if len(sheets) != len(want) {
		t.Fatalf("expected sheets %v, got %v", want, sheets)
	}
	for i := range want {
		if sheets[i] != want[i] {
			t.Errorf("expected sheet %q at %d, got %q", want[i], i, sheets[i])
		}
	}

	summary, err := f.GetRows(SummarySheet)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(summary) != 3 || summary[1][0] != "imu" || summary[2][0] != "camera" {
		t.Errorf("unexpected summary rows %v", summary)
	}
	if summary[2][1] != "2" || summary[2][2] != "700" {
		t.Errorf("expected camera with 2 events and 700 ns busy, got %v", summary[2])
	}
	if len(summary[0]) != 8 || summary[0][6] != "dataset" || summary[0][7] != views[0].DatasetID {
		t.Errorf("expected dataset id beside the summary header, got %v", summary[0])
	}

	page0, err := f.GetRows("page 0")
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(page0) != 3 {
		t.Fatalf("expected header and 2 intervals, got %v", page0)
	}
	if page0[1][0] != "imu" || page0[2][0] != "camera" || page0[2][2] != "900" {
		t.Errorf("unexpected page rows %v", page0)
	}
	if page0[0][4] != "source" || page0[2][4] != "switchboard" {
		t.Errorf("expected source column, got %v", page0)
	}

	page1, _ := f.GetRows("page 1")
	if len(page1) != 2 || page1[1][0] != NoDataText {
		t.Errorf("expected empty page marker, got %v", page1)
	}
}
