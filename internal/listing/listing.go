// Package listing implements the search + pagination composition shared by
// every console listing screen: the full collection is already in memory, a
// search term narrows it, and a page window slices the narrowed view.
package listing

import (
	"sort"
	"strings"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Page is a 1-based page request.
type Page struct {
	Page  int
	Limit int
}

// Clamp normalizes out-of-range page parameters to usable values.
func (p Page) Clamp() Page {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Paginate slices items to the requested page window. A page past the end
// yields an empty slice, never an error. Returns the window plus the total
// count before slicing.
func Paginate[T any](items []T, p Page) ([]T, int) {
	p = p.Clamp()
	total := len(items)
	start := (p.Page - 1) * p.Limit
	if start >= total {
		return []T{}, total
	}
	end := start + p.Limit
	if end > total {
		end = total
	}
	return items[start:end], total
}

// MatchFold reports whether the search term occurs, case-insensitively, in any
// of the given fields. An empty term matches everything, mirroring an empty
// search box.
func MatchFold(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// SortStable orders items by less in place, keeping the incoming order for
// equal elements. desc inverts the ordering.
func SortStable[T any](items []T, desc bool, less func(a, b T) bool) {
	sort.SliceStable(items, func(i, j int) bool {
		if desc {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})
}

// Search filters items to those whose fields match the term, preserving order.
func Search[T any](items []T, term string, fields func(T) []string) []T {
	if term == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if MatchFold(term, fields(item)...) {
			out = append(out, item)
		}
	}
	return out
}
