package source

import (
	"fmt"
	"strings"

	"github.com/tlview/tlview/pkg/timeline"
)

// EventSource is one event database and the kind of log it holds.
type EventSource struct {
	Kind string
	Path string
}

// Label names the source in logs and progress output.
func (e EventSource) Label() string { return e.Kind }

// Selection is the set of databases picked for one load.
type Selection struct {
	// Names is the database holding the producer name table.
	Names  string
	Events []EventSource
}

// Validate checks the selection against schema before any I/O. A missing
// name database or an empty event list yields
// timeline.ErrIncompleteSelection.
func (s Selection) Validate(schema Schema) error {
	if s.Names == "" || len(s.Events) == 0 {
		return timeline.ErrIncompleteSelection
	}
	for _, ev := range s.Events {
		if ev.Path == "" {
			return fmt.Errorf("%w: no path for %s source", timeline.ErrIncompleteSelection, ev.Kind)
		}
		if _, ok := schema.TableFor(ev.Kind); !ok {
			return fmt.Errorf("unknown event source kind %q (known: %s)", ev.Kind, strings.Join(schema.Kinds(), ", "))
		}
	}
	return nil
}

// ParseEventSpec parses "kind=path".
func ParseEventSpec(spec string) (EventSource, error) {
	kind, path, ok := strings.Cut(spec, "=")
	kind = strings.TrimSpace(kind)
	path = strings.TrimSpace(path)
	if !ok || kind == "" || path == "" {
		return EventSource{}, fmt.Errorf("invalid event source %q, expected kind=path", spec)
	}
	return EventSource{Kind: kind, Path: path}, nil
}
