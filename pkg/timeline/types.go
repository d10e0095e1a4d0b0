package timeline

import "strconv"

// DefaultPageSize is the width of one page on the time axis, in nanoseconds.
const DefaultPageSize int64 = 1_000_000

// ProducerName maps a producer id to its display name.
type ProducerName struct {
	ID   int64
	Name string
}

// RawEvent is one row as read from an event table, before the name join.
type RawEvent struct {
	ProducerID int64
	Start      int64
	End        int64
}

// EventTable is the full row set contributed by one event source.
type EventTable struct {
	// Source labels the table (e.g. "switchboard"); it is carried onto every
	// joined event so renderers can tell subsystems apart.
	Source string
	Events []RawEvent
}

// Event is a joined event attributed to a producer display name. End is
// normally >= Start; inverted rows are kept as recorded.
type Event struct {
	Producer string
	Start    int64
	End      int64
	Source   string
}

// Duration returns End-Start in nanoseconds, or 0 for an inverted event.
func (e Event) Duration() int64 { return e.Reach() - e.Start }

// Reach returns the later of Start and End. Paging treats an inverted event
// as a point at Start.
func (e Event) Reach() int64 {
	if e.End < e.Start {
		return e.Start
	}
	return e.End
}

// Interval is an event clipped to a page window. Group is the color and
// legend key; it always equals Producer.
type Interval struct {
	Producer string
	Group    string
	Start    int64
	End      int64
	Source   string
}

// Duration returns End-Start in nanoseconds.
func (iv Interval) Duration() int64 { return iv.End - iv.Start }

// UnmatchedPolicy decides what the join does with producer ids that have no
// entry in the name table.
type UnmatchedPolicy int

const (
	// PassThrough keeps the event and names its producer "#<id>".
	PassThrough UnmatchedPolicy = iota
	// Reject fails the join with a MalformedSourceError.
	Reject
)

// ParseUnmatchedPolicy maps "pass" / "reject" (and "" for the default) to a
// policy.
func ParseUnmatchedPolicy(s string) (UnmatchedPolicy, bool) {
	switch s {
	case "", "pass", "passthrough", "pass-through":
		return PassThrough, true
	case "reject", "fail":
		return Reject, true
	}
	return PassThrough, false
}

func (p UnmatchedPolicy) String() string {
	if p == Reject {
		return "reject"
	}
	return "pass"
}

func idName(id int64) string {
	return strconv.FormatInt(id, 10)
}

// unmatchedName labels an id missing from the name table. The label gets
// more '#' prefixes until it differs from every name in taken.
func unmatchedName(id int64, taken map[string]bool) string {
	name := "#" + idName(id)
	for taken[name] {
		name = "#" + name
	}
	return name
}
