// Package catalog - Standard dimensions and units
// Every entry is built only with the public dimension and unit operations;
// the catalog adds no algebra of its own.
package catalog

import (
	"sort"

	"dimensional/core/unit"
)

// Kind classifies how an entry relates to its dimension
type Kind int

const (
	// KindBase - scale-1 unit of its dimension
	KindBase Kind = iota
	// KindScaled - a multiple of a base unit
	KindScaled
	// KindDerived - scale-1 unit of a composite dimension
	KindDerived
)

// String returns string representation
func (k Kind) String() string {
	switch k {
	case KindBase:
		return "base"
	case KindScaled:
		return "scaled"
	case KindDerived:
		return "derived"
	default:
		return "unknown"
	}
}

// Entry is a named unit in the catalog
type Entry struct {
	Name   string
	Symbol string
	Kind   Kind
	Unit   unit.Unit
	Notes  string
}

// Catalog holds catalog entries in registration order
type Catalog struct {
	entries []*Entry
}

// NewCatalog creates a new catalog
func NewCatalog() *Catalog {
	return &Catalog{}
}

// Register adds an entry to the catalog
func (c *Catalog) Register(entry Entry) {
	if entry.Unit.Name() == "" {
		entry.Unit = entry.Unit.Rename(entry.Name)
	}
	c.entries = append(c.entries, &entry)
}

// Len returns the number of entries
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns all entries ordered by dimension, then scale, then name
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, *e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		di, dj := out[i].Unit.Dimension().String(), out[j].Unit.Dimension().String()
		if di != dj {
			return di < dj
		}
		if cmp := out[i].Unit.Scale().Cmp(out[j].Unit.Scale()); cmp != 0 {
			return cmp < 0
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// CompatibleWith returns the entries whose dimension equals u's
func (c *Catalog) CompatibleWith(u unit.Unit) []Entry {
	var result []Entry
	for _, e := range c.Entries() {
		if e.Unit.Dimension().Equal(u.Dimension()) {
			result = append(result, e)
		}
	}
	return result
}

// Groups returns entries grouped by rendered dimension, in dimension order
func (c *Catalog) Groups() []Group {
	var groups []Group
	for _, e := range c.Entries() {
		dim := e.Unit.Dimension().String()
		if len(groups) == 0 || groups[len(groups)-1].Dimension != dim {
			groups = append(groups, Group{Dimension: dim})
		}
		groups[len(groups)-1].Entries = append(groups[len(groups)-1].Entries, e)
	}
	return groups
}

// Group is a set of entries sharing a dimension
type Group struct {
	Dimension string
	Entries   []Entry
}

// Stats returns catalog statistics
func (c *Catalog) Stats() Stats {
	stats := Stats{ByKind: make(map[Kind]int)}
	dims := make(map[string]struct{})
	for _, e := range c.entries {
		stats.Total++
		stats.ByKind[e.Kind]++
		dims[e.Unit.Dimension().Key()] = struct{}{}
	}
	stats.Dimensions = len(dims)
	return stats
}

// Stats holds catalog statistics
type Stats struct {
	Total      int
	Dimensions int
	ByKind     map[Kind]int
}
