package catalog

import (
	"sort"
	"strings"

	"app/internal/domain/model"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	SortName      = "name"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
)

// Filter holds the listing query. Empty fields match everything.
type Filter struct {
	Search      string
	Brand       string
	InStockOnly bool
	Sort        string
}

// ValidSort reports whether s is an accepted sort key ("" defaults to name).
func ValidSort(s string) bool {
	switch s {
	case "", SortName, SortPriceLow, SortPriceHigh:
		return true
	}
	return false
}

// FilterAndSort applies the listing pipeline: case-insensitive substring
// search over name or description, exact brand match and the aggregate
// stock predicate, combined with AND, then a stable sort. The input
// slice is never modified.
func FilterAndSort(products []model.Product, f Filter) []model.Product {
	search := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		if f.Brand != "" && p.Brand != f.Brand {
			continue
		}
		if f.InStockOnly && !IsAvailable(p) {
			continue
		}
		out = append(out, p)
	}

	switch f.Sort {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	default:
		// Vietnamese collation so diacritics sort naturally next to
		// their base letters.
		c := collate.New(language.Vietnamese)
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[i].Name, out[j].Name) < 0
		})
	}

	return out
}

// Brands lists the distinct brands of the collection in first-seen order,
// for the brand filter dropdown.
func Brands(products []model.Product) []string {
	seen := make(map[string]bool)
	brands := make([]string, 0)
	for _, p := range products {
		if p.Brand == "" || seen[p.Brand] {
			continue
		}
		seen[p.Brand] = true
		brands = append(brands, p.Brand)
	}
	return brands
}
