package timeline

// EventSlice attaches the methods of sort.Interface to []Event, ordering by
// Start. Use it with sort.Stable so equal starts keep ingestion order.
type EventSlice []Event

// Len returns the number of elements in the slice.
func (x EventSlice) Len() int { return len(x) }

// Less reports whether the event at index i starts before the event at index j.
func (x EventSlice) Less(i, j int) bool { return x[i].Start < x[j].Start }

// Swap exchanges the elements at indices i and j.
func (x EventSlice) Swap(i, j int) { x[i], x[j] = x[j], x[i] }
