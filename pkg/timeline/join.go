package timeline

import (
	"sort"

	"github.com/google/uuid"
)

// Dataset is one loaded, joined and start-sorted event set. It is immutable
// once returned by Join.
type Dataset struct {
	// ID identifies this load in logs and exports.
	ID string
	// Events are sorted by Start; ties keep source order, then row order.
	Events []Event
	// Order is the baseline producer order: first-seen names in Events.
	Order []string
	// Sources lists the event table labels in concatenation order.
	Sources []string
	// MinStart and MaxEnd bound the data; both are zero for an empty set.
	MinStart int64
	MaxEnd   int64
	// Inverted counts events whose End is before their Start. They are kept.
	Inverted int
	// Unmatched lists distinct producer ids without a name, in first-seen order.
	Unmatched []int64
}

// Len returns the number of events.
func (d *Dataset) Len() int { return len(d.Events) }

// Empty reports whether the dataset holds no events.
func (d *Dataset) Empty() bool { return len(d.Events) == 0 }

// Join substitutes producer ids with display names across every table,
// concatenating the tables in the given order. Duplicate rows are kept.
//
// An empty name table yields an empty dataset. Ids missing from a non-empty
// name table follow policy.
func Join(names []ProducerName, policy UnmatchedPolicy, tables ...EventTable) (*Dataset, error) {
	if len(tables) == 0 {
		return nil, ErrIncompleteSelection
	}
	ds := &Dataset{ID: uuid.NewString()}
	for _, t := range tables {
		ds.Sources = append(ds.Sources, t.Source)
	}
	if len(names) == 0 {
		ds.Order = []string{}
		return ds, nil
	}

	lookup := make(map[int64]string, len(names))
	taken := make(map[string]bool, len(names))
	for _, n := range names {
		if _, dup := lookup[n.ID]; !dup {
			lookup[n.ID] = n.Name
			taken[n.Name] = true
		}
	}
	labels := map[int64]string{}

	var total int
	for _, t := range tables {
		total += len(t.Events)
	}
	ds.Events = make([]Event, 0, total)
	for _, t := range tables {
		for _, r := range t.Events {
			if r.End < r.Start {
				ds.Inverted++
			}
			name, ok := lookup[r.ProducerID]
			if !ok {
				if policy == Reject {
					return nil, &MalformedSourceError{
						Table: t.Source,
						Err:   &unmatchedIDError{id: r.ProducerID},
					}
				}
				if name, ok = labels[r.ProducerID]; !ok {
					name = unmatchedName(r.ProducerID, taken)
					labels[r.ProducerID] = name
					ds.Unmatched = append(ds.Unmatched, r.ProducerID)
				}
			}
			ds.Events = append(ds.Events, Event{
				Producer: name,
				Start:    r.Start,
				End:      r.End,
				Source:   t.Source,
			})
		}
	}

	sort.Stable(EventSlice(ds.Events))
	ds.Order = BaselineOrder(ds.Events)
	if len(ds.Events) > 0 {
		ds.MinStart = ds.Events[0].Start
		ds.MaxEnd = ds.Events[0].Reach()
		for _, e := range ds.Events[1:] {
			if e.Reach() > ds.MaxEnd {
				ds.MaxEnd = e.Reach()
			}
		}
	}
	return ds, nil
}

type unmatchedIDError struct {
	id int64
}

func (e *unmatchedIDError) Error() string {
	return "producer id " + idName(e.id) + " has no entry in the name table"
}
