package render

import (
	"hash/fnv"
	"strings"
)

// base is cycled by name hash. Entries are readable on both dark and light
// backgrounds.
var base = []string{
	"#f59e0b",
	"#8b5cf6",
	"#3b82f6",
	"#10b981",
	"#ef4444",
	"#f97316",
	"#06b6d4",
	"#ec4899",
	"#84cc16",
	"#eab308",
	"#6366f1",
	"#14b8a6",
}

// Fallback is used for names that hash nowhere, i.e. the empty name.
const Fallback = "#9ca3af"

// Palette maps producer names to hex colors. The same name always gets the
// same color, which keeps legends stable across pages and runs.
type Palette struct {
	overrides map[string]string
}

// NewPalette returns a palette with per-name overrides. Override values
// without a leading '#' are accepted.
func NewPalette(overrides map[string]string) *Palette {
	p := &Palette{overrides: make(map[string]string, len(overrides))}
	for name, c := range overrides {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if !strings.HasPrefix(c, "#") {
			c = "#" + c
		}
		p.overrides[name] = c
	}
	return p
}

// Color returns the color of name.
func (p *Palette) Color(name string) string {
	if p != nil {
		if c, ok := p.overrides[name]; ok {
			return c
		}
	}
	if name == "" {
		return Fallback
	}
	h := fnv.New32a()
	h.Write([]byte(name))
	return base[h.Sum32()%uint32(len(base))]
}
