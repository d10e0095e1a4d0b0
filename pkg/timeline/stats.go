package timeline

// ProducerStats summarises the events of one producer.
type ProducerStats struct {
	Producer string
	Events   int
	// Busy is the summed event duration in nanoseconds. Overlapping events
	// are counted twice.
	Busy  int64
	First int64
	Last  int64
}

// Stats returns per-producer statistics following order. Producers missing
// from order are appended in first-seen order.
func Stats(ds *Dataset, order []string) []ProducerStats {
	if ds == nil {
		return nil
	}
	byName := make(map[string]*ProducerStats)
	var seen []string
	for _, e := range ds.Events {
		st, ok := byName[e.Producer]
		if !ok {
			st = &ProducerStats{Producer: e.Producer, First: e.Start, Last: e.Reach()}
			byName[e.Producer] = st
			seen = append(seen, e.Producer)
		}
		st.Events++
		st.Busy += e.Duration()
		if e.Reach() > st.Last {
			st.Last = e.Reach()
		}
	}
	out := make([]ProducerStats, 0, len(byName))
	used := make(map[string]bool, len(byName))
	for _, name := range order {
		if st, ok := byName[name]; ok && !used[name] {
			out = append(out, *st)
			used[name] = true
		}
	}
	for _, name := range seen {
		if !used[name] {
			out = append(out, *byName[name])
		}
	}
	return out
}
