package timeline

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrIncompleteSelection is returned when the name source or every event
	// source is missing from a load request.
	ErrIncompleteSelection = errors.New("a producer name source and at least one event source are required")
	// ErrMalformedSource is matched by every *MalformedSourceError.
	ErrMalformedSource = errors.New("malformed source")
	// ErrInvalidOrder is returned when a reorder request is not a permutation
	// of the currently known producer names.
	ErrInvalidOrder = errors.New("order is not a permutation of the known producers")
	// ErrNoDataset is returned by Session methods that need loaded data.
	ErrNoDataset = errors.New("no dataset loaded")
	// ErrInvalidPageSize is returned for page sizes below one nanosecond.
	ErrInvalidPageSize = errors.New("page size must be positive")
)

// MalformedSourceError describes a source that could not be read or does
// not carry the expected table and columns.
type MalformedSourceError struct {
	Path    string
	Table   string
	Missing []string
	Err     error
}

func (e *MalformedSourceError) Error() string {
	var b strings.Builder
	b.WriteString("malformed source")
	if e.Path != "" {
		fmt.Fprintf(&b, " %s", e.Path)
	}
	switch {
	case e.Table != "" && len(e.Missing) > 0:
		fmt.Fprintf(&b, ": table %q is missing column(s) %s", e.Table, strings.Join(e.Missing, ", "))
	case e.Table != "":
		fmt.Fprintf(&b, ": table %q", e.Table)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *MalformedSourceError) Unwrap() error { return e.Err }

// Is reports ErrMalformedSource as a match so callers can use errors.Is
// without knowing the concrete type.
func (e *MalformedSourceError) Is(target error) bool {
	return target == ErrMalformedSource
}
