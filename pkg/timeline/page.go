package timeline

// Paginator cuts the time axis into fixed-width, non-overlapping pages
// starting at Origin. Page p covers [Origin+p*Size, Origin+p*Size+Size).
type Paginator struct {
	Size   int64
	Origin int64
}

// Window returns the bounds of page p. end is exclusive for selection and
// inclusive as a clipping bound.
func (pg Paginator) Window(p int) (start, end int64) {
	start = pg.Origin + int64(p)*pg.Size
	return start, start + pg.Size
}

// PageOf returns the page holding timestamp ts. Timestamps before Origin map
// to page 0.
func (pg Paginator) PageOf(ts int64) int {
	if ts <= pg.Origin {
		return 0
	}
	return int((ts - pg.Origin) / pg.Size)
}

// LastPage returns the index of the page holding maxEnd, the last page that
// can carry data.
func (pg Paginator) LastPage(maxEnd int64) int {
	return pg.PageOf(maxEnd)
}

// Slice selects the events overlapping page p and clips copies of them to
// the page bounds. An event is selected when its start or end lies in the
// window, or when it spans the whole window. An inverted event counts as a
// point at its Start and its copy gets End == Start. events must be sorted by
// Start.
func (pg Paginator) Slice(events []Event, p int) []Interval {
	start, end := pg.Window(p)
	var out []Interval
	for _, e := range events {
		if e.Start >= end {
			break
		}
		if e.Reach() < start {
			continue
		}
		iv := Interval{
			Producer: e.Producer,
			Group:    e.Producer,
			Start:    e.Start,
			End:      e.Reach(),
			Source:   e.Source,
		}
		if iv.End > end {
			iv.End = end
		}
		if iv.Start < start {
			iv.Start = start
		}
		out = append(out, iv)
	}
	return out
}

// Occupied returns the ascending indices of the pages that Slice would fill
// for events, which must be sorted by Start. It stops after limit pages when
// limit is positive.
func (pg Paginator) Occupied(events []Event, limit int) []int {
	var out []int
	next := 0
	for _, e := range events {
		from, to := pg.PageOf(e.Start), pg.PageOf(e.Reach())
		if from < next {
			from = next
		}
		for p := from; p <= to; p++ {
			if limit > 0 && len(out) == limit {
				return out
			}
			out = append(out, p)
		}
		if to+1 > next {
			next = to + 1
		}
	}
	return out
}
