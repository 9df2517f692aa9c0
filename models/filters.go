package models

import (
	"net/url"
	"sort"
	"strings"
)

// Sort orders accepted by the catalog API.
const (
	SortPrice  = "price"
	SortName   = "name"
	SortNewest = "createdAt"
	SortRating = "rating"
)

// AllSentinel is the "no filter" value for the category and color selects.
const AllSentinel = "all"

// DefaultSort is applied whenever no (or an unknown) sort is requested.
const DefaultSort = SortPrice

// filterKeys is the serialization order of the committed query. Using a
// fixed order keeps the query string canonical, so it doubles as the
// product cache key and as a stable shareable URL.
var filterKeys = []string{"search", "minPrice", "maxPrice", "categoryId", "colorId", "sortBy"}

// FilterFields is the draft filter state: freely mutable per keystroke and
// only turned into a committed query by an explicit apply. A field holds
// its sentinel ("" or "all") when the user has not constrained it.
type FilterFields struct {
	Search     string
	MinPrice   string
	MaxPrice   string
	CategoryID string
	ColorID    string
	SortBy     string
}

// DefaultFilters is the draft state after a reset.
func DefaultFilters() FilterFields {
	return FilterFields{
		CategoryID: AllSentinel,
		ColorID:    AllSentinel,
		SortBy:     DefaultSort,
	}
}

// ValidSort clamps unknown sort values to the default.
func ValidSort(s string) string {
	switch s {
	case SortPrice, SortName, SortNewest, SortRating:
		return s
	}
	return DefaultSort
}

// Query serializes the draft into a committed query. A field is present
// iff its value differs from its "no filter" sentinel; sortBy is always
// present. Min/max prices are passed through unvalidated — the server owns
// that rule.
func (f FilterFields) Query() url.Values {
	q := url.Values{}
	if s := strings.TrimSpace(f.Search); s != "" {
		q.Set("search", s)
	}
	if f.MinPrice != "" {
		q.Set("minPrice", f.MinPrice)
	}
	if f.MaxPrice != "" {
		q.Set("maxPrice", f.MaxPrice)
	}
	if f.CategoryID != "" && f.CategoryID != AllSentinel {
		q.Set("categoryId", f.CategoryID)
	}
	if f.ColorID != "" && f.ColorID != AllSentinel {
		q.Set("colorId", f.ColorID)
	}
	q.Set("sortBy", ValidSort(f.SortBy))
	return q
}

// FiltersFromQuery rebuilds a draft from a committed query. This is the
// reconciliation path: whenever the URL changes by any means other than
// this page's own apply/reset (back button, shared link), the form is
// resynchronized from it so the draft never silently diverges.
func FiltersFromQuery(q url.Values) FilterFields {
	f := DefaultFilters()
	f.Search = q.Get("search")
	f.MinPrice = q.Get("minPrice")
	f.MaxPrice = q.Get("maxPrice")
	if v := q.Get("categoryId"); v != "" {
		f.CategoryID = v
	}
	if v := q.Get("colorId"); v != "" {
		f.ColorID = v
	}
	if v := q.Get("sortBy"); v != "" {
		f.SortBy = ValidSort(v)
	}
	return f
}

// CanonicalQuery renders values with the filter keys in fixed order and
// any remaining keys (page, limit) sorted after them. Two queries with the
// same fields always produce the same string.
func CanonicalQuery(q url.Values) string {
	var b strings.Builder
	seen := map[string]bool{}
	write := func(key string) {
		for _, v := range q[key] {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			b.WriteString(url.QueryEscape(key))
			b.WriteByte('=')
			b.WriteString(url.QueryEscape(v))
		}
		seen[key] = true
	}
	for _, key := range filterKeys {
		if _, ok := q[key]; ok {
			write(key)
		}
	}
	rest := make([]string, 0, len(q))
	for key := range q {
		if !seen[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	for _, key := range rest {
		write(key)
	}
	return b.String()
}
