package catalog

import (
	"fmt"
	"strings"
)

// Category is the catalog's secondary selector: all, critical, or a plant
// type.
type Category string

const (
	CategoryAll      Category = "all"
	CategoryCritical Category = "critical"
)

// Categories returns the selectors in the order the filter bar shows them.
func Categories() []Category {
	out := []Category{CategoryAll, CategoryCritical}
	for _, t := range PlantTypes {
		out = append(out, Category(t))
	}
	return out
}

// ParseCategory resolves a selector name. Empty means all.
func ParseCategory(s string) (Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return CategoryAll, nil
	}
	for _, c := range Categories() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Matches reports whether p falls into the category.
func (c Category) Matches(p Plant) bool {
	switch c {
	case CategoryAll, "":
		return true
	case CategoryCritical:
		return p.DangerLevel == DangerCritical
	default:
		return string(p.Type) == string(c)
	}
}

// Filter selects plants by free text and category.
type Filter struct {
	Query    string   // substring of name, latin name, or description
	Category Category // all, critical, or a plant type
}

// Apply returns the plants matching both the query and the category, in
// catalog order. The input is not modified.
func (f Filter) Apply(plants []Plant) []Plant {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]Plant, 0, len(plants))
	for _, p := range plants {
		if q != "" && !matchesSearch(p, q) {
			continue
		}
		if !f.Category.Matches(p) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// ByID returns the plant with the given ID, or nil.
func ByID(plants []Plant, id string) *Plant {
	for i := range plants {
		if plants[i].ID == id {
			return &plants[i]
		}
	}
	return nil
}

// IDs returns the plant IDs in catalog order.
func IDs(plants []Plant) []string {
	out := make([]string, len(plants))
	for i, p := range plants {
		out[i] = p.ID
	}
	return out
}

func matchesSearch(p Plant, q string) bool {
	if strings.Contains(strings.ToLower(p.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(p.LatinName), q) {
		return true
	}
	return strings.Contains(strings.ToLower(p.Description), q)
}
