package timeline

import "strconv"

// PageView is everything a renderer needs for one page.
type PageView struct {
	DatasetID  string
	Page       int
	TotalPages int
	PageSize   int64
	// Start and End bound the page window on the time axis.
	Start int64
	End   int64
	// Intervals are the clipped events of the page, sorted by start.
	Intervals []Interval
	// Order is the page-local producer order, top row first.
	Order []string
	// Empty is set when the window holds no events. It is a valid page,
	// not an error.
	Empty bool
}

// Row groups the intervals of one producer.
type Row struct {
	Producer  string
	Intervals []Interval
}

// Rows groups Intervals by producer following Order.
func (v PageView) Rows() []Row {
	idx := make(map[string]int, len(v.Order))
	rows := make([]Row, len(v.Order))
	for i, name := range v.Order {
		idx[name] = i
		rows[i].Producer = name
	}
	for _, iv := range v.Intervals {
		i, ok := idx[iv.Producer]
		if !ok {
			continue
		}
		rows[i].Intervals = append(rows[i].Intervals, iv)
	}
	return rows
}

// Label returns the "current / total" page indicator.
func (v PageView) Label() string {
	return strconv.Itoa(v.Page) + " / " + strconv.Itoa(v.TotalPages)
}
