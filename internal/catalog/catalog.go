package catalog

// Catalog is the deduplicated, normalized list of color records.
// It is immutable after loading.
type Catalog struct {
	colors []Color
	byName map[string]int
}

// New builds a catalog from records, dropping unnamed entries and keeping
// the first occurrence of each name.
func New(colors []Color) *Catalog {
	c := &Catalog{byName: make(map[string]int, len(colors))}
	for _, col := range colors {
		if col.Name == "" {
			continue
		}
		if _, seen := c.byName[col.Name]; seen {
			continue
		}
		c.byName[col.Name] = len(c.colors)
		c.colors = append(c.colors, col)
	}
	return c
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.colors)
}

// At returns the record at index i.
func (c *Catalog) At(i int) Color {
	return c.colors[i]
}

// All returns a copy of every record in load order.
func (c *Catalog) All() []Color {
	return append([]Color(nil), c.colors...)
}

// Names returns every record name in load order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.colors))
	for i, col := range c.colors {
		names[i] = col.Name
	}
	return names
}

// ByName looks up a record by exact name.
func (c *Catalog) ByName(name string) (Color, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Color{}, false
	}
	return c.colors[i], true
}
