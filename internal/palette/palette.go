// Package palette assigns stable colors to category labels.
package palette

// Default colors cycled when no palette is configured.
var defaultColors = []string{
	"#C89A3A",
	"#4D9DE0",
	"#E15554",
	"#3BB273",
	"#7768AE",
	"#E1BC29",
	"#5BC0BE",
	"#FF7F51",
	"#8C8C8C",
	"#B56576",
}

// Palette hands out colors from a fixed list, caching the assignment per
// key so the same category always gets the same color within a session.
type Palette struct {
	colors []string
	byKey  map[string]string
	next   int
}

// New returns a palette over the given colors, or the default list when
// none are provided.
func New(colors ...string) *Palette {
	if len(colors) == 0 {
		colors = defaultColors
	}
	return &Palette{
		colors: colors,
		byKey:  map[string]string{},
	}
}

// Color returns the color assigned to key, assigning the next palette
// color on first sight.
func (p *Palette) Color(key string) string {
	if c, ok := p.byKey[key]; ok {
		return c
	}
	c := p.colors[p.next%len(p.colors)]
	p.next++
	p.byKey[key] = c
	return c
}
