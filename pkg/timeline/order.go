package timeline

import "fmt"

// BaselineOrder returns the distinct producer names of events in first-seen
// order. events are expected to be sorted by Start already.
func BaselineOrder(events []Event) []string {
	seen := make(map[string]bool)
	order := []string{}
	for _, e := range events {
		if seen[e.Producer] {
			continue
		}
		seen[e.Producer] = true
		order = append(order, e.Producer)
	}
	return order
}

// ValidateOrder checks that proposed is a permutation of known.
func ValidateOrder(known, proposed []string) error {
	if len(proposed) != len(known) {
		return fmt.Errorf("%w: got %d names, want %d", ErrInvalidOrder, len(proposed), len(known))
	}
	want := make(map[string]int, len(known))
	for _, n := range known {
		want[n]++
	}
	for _, n := range proposed {
		if want[n] == 0 {
			if _, ok := want[n]; ok {
				return fmt.Errorf("%w: %q listed more than once", ErrInvalidOrder, n)
			}
			return fmt.Errorf("%w: unknown producer %q", ErrInvalidOrder, n)
		}
		want[n]--
	}
	return nil
}

// LocalOrder filters global down to the producers present in intervals,
// keeping the relative order of global.
func LocalOrder(global []string, intervals []Interval) []string {
	present := make(map[string]bool, len(intervals))
	for _, iv := range intervals {
		present[iv.Producer] = true
	}
	local := make([]string, 0, len(present))
	for _, name := range global {
		if present[name] {
			local = append(local, name)
		}
	}
	return local
}
