package timeline

import (
	"errors"
	"reflect"
	"testing"
)

var testNames = []ProducerName{
	{ID: 1, Name: "A"},
	{ID: 2, Name: "B"},
	{ID: 3, Name: "C"},
}

func TestJoin_SubstitutesNames(t *testing.T) {
	ds, err := Join(testNames, PassThrough, EventTable{
		Source: "switchboard",
		Events: []RawEvent{{1, 0, 500}, {2, 800, 1200}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ds.Len() != 2 {
		t.Fatalf("expected 2 events, got %d", ds.Len())
	}
	if ds.Events[0].Producer != "A" || ds.Events[1].Producer != "B" {
		t.Errorf("expected producers A, B, got %q, %q", ds.Events[0].Producer, ds.Events[1].Producer)
	}
	if ds.Events[0].Source != "switchboard" {
		t.Errorf("expected source label carried, got %q", ds.Events[0].Source)
	}
	if ds.ID == "" {
		t.Error("expected dataset ID to be set")
	}
}

func TestJoin_NoTables(t *testing.T) {
	_, err := Join(testNames, PassThrough)
	if !errors.Is(err, ErrIncompleteSelection) {
		t.Fatalf("expected ErrIncompleteSelection, got %v", err)
	}
}

func TestJoin_EmptyNameTableYieldsNoRows(t *testing.T) {
	ds, err := Join(nil, PassThrough, EventTable{Events: []RawEvent{{1, 0, 10}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ds.Empty() {
		t.Errorf("expected empty dataset, got %d events", ds.Len())
	}
	if ds.Order == nil || len(ds.Order) != 0 {
		t.Errorf("expected empty non-nil order, got %v", ds.Order)
	}
}

func TestJoin_ConcatenatesAndKeepsDuplicates(t *testing.T) {
	ds, err := Join(testNames, PassThrough,
		EventTable{Source: "switchboard", Events: []RawEvent{{1, 100, 200}}},
		EventTable{Source: "threadloop", Events: []RawEvent{{1, 100, 200}}},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ds.Len() != 2 {
		t.Fatalf("expected duplicates preserved, got %d events", ds.Len())
	}
	if ds.Events[0].Source != "switchboard" || ds.Events[1].Source != "threadloop" {
		t.Errorf("expected source order kept on ties, got %q then %q", ds.Events[0].Source, ds.Events[1].Source)
	}
	if !reflect.DeepEqual(ds.Sources, []string{"switchboard", "threadloop"}) {
		t.Errorf("unexpected sources %v", ds.Sources)
	}
}

func TestJoin_StableSortByStart(t *testing.T) {
	ds, err := Join(testNames, PassThrough,
		EventTable{Events: []RawEvent{{3, 50, 60}, {2, 10, 20}, {1, 10, 30}}},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := []string{ds.Events[0].Producer, ds.Events[1].Producer, ds.Events[2].Producer}
	want := []string{"B", "A", "C"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if !reflect.DeepEqual(ds.Order, want) {
		t.Errorf("expected baseline order %v, got %v", want, ds.Order)
	}
	if ds.MinStart != 10 || ds.MaxEnd != 60 {
		t.Errorf("expected bounds 10..60, got %d..%d", ds.MinStart, ds.MaxEnd)
	}
}

func TestJoin_UnmatchedPassThrough(t *testing.T) {
	ds, err := Join(testNames, PassThrough,
		EventTable{Events: []RawEvent{{9, 0, 1}, {9, 2, 3}, {1, 4, 5}}},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ds.Events[0].Producer != "#9" {
		t.Errorf("expected labelled id as name, got %q", ds.Events[0].Producer)
	}
	if !reflect.DeepEqual(ds.Unmatched, []int64{9}) {
		t.Errorf("expected unmatched [9], got %v", ds.Unmatched)
	}
}

func TestJoin_UnmatchedReject(t *testing.T) {
	_, err := Join(testNames, Reject,
		EventTable{Source: "threadloop", Events: []RawEvent{{9, 0, 1}}},
	)
	if !errors.Is(err, ErrMalformedSource) {
		t.Fatalf("expected ErrMalformedSource, got %v", err)
	}
	var mse *MalformedSourceError
	if !errors.As(err, &mse) || mse.Table != "threadloop" {
		t.Errorf("expected MalformedSourceError for threadloop, got %#v", err)
	}
}

func TestJoin_KeepsInvertedEvents(t *testing.T) {
	ds, err := Join(testNames, PassThrough,
		EventTable{Events: []RawEvent{{1, 10, 5}, {1, 10, 10}}},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ds.Inverted != 1 || ds.Len() != 2 {
		t.Errorf("expected 1 inverted and 2 kept, got %d inverted, %d kept", ds.Inverted, ds.Len())
	}
	if ds.Events[0].End != 5 {
		t.Errorf("expected the stored end as recorded, got %+v", ds.Events[0])
	}
	if ds.Events[0].Duration() != 0 {
		t.Errorf("expected zero duration for an inverted event, got %d", ds.Events[0].Duration())
	}
}

func TestJoin_InvertedProducerStaysInOrder(t *testing.T) {
	ds, err := Join([]ProducerName{{1, "A"}, {2, "B"}}, PassThrough,
		EventTable{Events: []RawEvent{{1, 100, 200}, {2, 500, 400}}},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ds.Len() != 2 || !reflect.DeepEqual(ds.Order, []string{"A", "B"}) {
		t.Fatalf("expected both producers, got %d events, order %v", ds.Len(), ds.Order)
	}
	if ds.MaxEnd != 500 {
		t.Errorf("expected max end at the inverted start, got %d", ds.MaxEnd)
	}
	s := newTestSession(t, 1000)
	if err := s.Load(ds); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := s.Reorder([]string{"B", "A"}); err != nil {
		t.Errorf("expected reorder to accept B, got %v", err)
	}
	v, _ := s.View()
	if len(v.Intervals) != 2 {
		t.Fatalf("expected both events on page 0, got %+v", v.Intervals)
	}
	for _, iv := range v.Intervals {
		if iv.End < iv.Start {
			t.Errorf("expected clipped interval with end >= start, got %+v", iv)
		}
	}
}

func TestJoin_UnmatchedLabelAvoidsRealNames(t *testing.T) {
	ds, err := Join([]ProducerName{{1, "A"}, {3, "7"}, {4, "#7"}}, PassThrough,
		EventTable{Events: []RawEvent{{3, 0, 10}, {7, 20, 30}, {4, 40, 50}}},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"7", "##7", "#7"}
	if !reflect.DeepEqual(ds.Order, want) {
		t.Errorf("expected distinct producers %v, got %v", want, ds.Order)
	}
}

func TestJoin_Idempotent(t *testing.T) {
	tables := []EventTable{
		{Source: "switchboard", Events: []RawEvent{{2, 30, 40}, {1, 0, 500}}},
		{Source: "threadloop", Events: []RawEvent{{3, 30, 90}}},
	}
	a, err := Join(testNames, PassThrough, tables...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Join(testNames, PassThrough, tables...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(a.Events, b.Events) || !reflect.DeepEqual(a.Order, b.Order) || a.MaxEnd != b.MaxEnd {
		t.Error("expected identical datasets from identical input")
	}
	if a.ID == b.ID {
		t.Error("expected distinct dataset IDs per load")
	}
}

func TestMalformedSourceError_Message(t *testing.T) {
	err := &MalformedSourceError{Path: "names.db", Table: "plugin_name", Missing: []string{"plugin_id"}}
	want := `malformed source names.db: table "plugin_name" is missing column(s) plugin_id`
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}
