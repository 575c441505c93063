package catalog

import (
	"errors"
	"fmt"
	"sort"
)

// Validate checks catalog-level invariants: every plant has an ID and a
// name, and IDs are unique. All problems are reported together.
func Validate(plants []Plant) error {
	var errs []error
	seen := make(map[string]int, len(plants))
	for i, p := range plants {
		if p.ID == "" {
			errs = append(errs, fmt.Errorf("plant at index %d has no id", i))
		} else if first, dup := seen[p.ID]; dup {
			errs = append(errs, fmt.Errorf("duplicate id %q at index %d (first at %d)", p.ID, i, first))
		} else {
			seen[p.ID] = i
		}
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("plant %q has no name", p.ID))
		}
	}
	return errors.Join(errs...)
}

// Facets summarises a catalog for filter bars and the wizard.
type Facets struct {
	Total      int
	ByCategory map[Category]int
	Features   []string // distinct feature tags, sorted
}

// Count returns the number of plants in a category.
func (f Facets) Count(c Category) int {
	if c == CategoryAll {
		return f.Total
	}
	return f.ByCategory[c]
}

// ComputeFacets counts plants per category and collects the feature
// vocabulary.
func ComputeFacets(plants []Plant) Facets {
	f := Facets{
		Total:      len(plants),
		ByCategory: make(map[Category]int),
		Features:   []string{},
	}
	seen := make(map[string]bool)
	for _, p := range plants {
		for _, c := range Categories()[1:] {
			if c.Matches(p) {
				f.ByCategory[c]++
			}
		}
		for _, tag := range p.Features {
			if tag != "" && !seen[tag] {
				seen[tag] = true
				f.Features = append(f.Features, tag)
			}
		}
	}
	sort.Strings(f.Features)
	return f
}
