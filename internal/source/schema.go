package source

import (
	"fmt"
	"regexp"
)

// EventKind binds an event source kind (as chosen on the command line) to the
// table that holds its rows.
type EventKind struct {
	Kind  string `yaml:"kind"`
	Table string `yaml:"table"`
}

// Schema names the tables and columns agreed with the logging system.
type Schema struct {
	NameTable   string      `yaml:"name_table"`
	IDColumn    string      `yaml:"id_column"`
	NameColumn  string      `yaml:"name_column"`
	StartColumn string      `yaml:"start_column"`
	EndColumn   string      `yaml:"end_column"`
	Events      []EventKind `yaml:"events"`
}

// Default source kinds.
const (
	KindSwitchboard = "switchboard"
	KindThreadloop  = "threadloop"
)

// DefaultSchema returns the ILLIXR logging conventions.
func DefaultSchema() Schema {
	return Schema{
		NameTable:   "plugin_name",
		IDColumn:    "plugin_id",
		NameColumn:  "plugin_name",
		StartColumn: "cpu_time_start",
		EndColumn:   "cpu_time_stop",
		Events: []EventKind{
			{Kind: KindSwitchboard, Table: "switchboard_callback"},
			{Kind: KindThreadloop, Table: "threadloop_iteration"},
		},
	}
}

// TableFor returns the table registered for kind.
func (s Schema) TableFor(kind string) (string, bool) {
	for _, ek := range s.Events {
		if ek.Kind == kind {
			return ek.Table, true
		}
	}
	return "", false
}

// Kinds lists the registered event source kinds in declaration order.
func (s Schema) Kinds() []string {
	kinds := make([]string, len(s.Events))
	for i, ek := range s.Events {
		kinds[i] = ek.Kind
	}
	return kinds
}

// identifiers are spliced into SQL, so only plain names are accepted.
var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validate checks that every identifier is set and safe to splice into SQL.
func (s Schema) Validate() error {
	idents := map[string]string{
		"name_table":   s.NameTable,
		"id_column":    s.IDColumn,
		"name_column":  s.NameColumn,
		"start_column": s.StartColumn,
		"end_column":   s.EndColumn,
	}
	for key, v := range idents {
		if !identRe.MatchString(v) {
			return fmt.Errorf("schema: invalid %s %q", key, v)
		}
	}
	if len(s.Events) == 0 {
		return fmt.Errorf("schema: no event kinds defined")
	}
	seen := map[string]bool{}
	for _, ek := range s.Events {
		if ek.Kind == "" || seen[ek.Kind] {
			return fmt.Errorf("schema: empty or duplicate event kind %q", ek.Kind)
		}
		seen[ek.Kind] = true
		if !identRe.MatchString(ek.Table) {
			return fmt.Errorf("schema: invalid table %q for kind %s", ek.Table, ek.Kind)
		}
	}
	return nil
}
