// Package listing applies screen-style filters and page slicing to rows
// already loaded in memory. Every list endpoint fetches the full entity
// set and narrows it here, mirroring how the tills browse their data.
package listing

import (
	"strings"
	"time"
)

// DefaultPageSize is the fixed page size used by every list screen.
const DefaultPageSize = 20

// Predicate reports whether a row passes one active filter.
type Predicate[T any] func(T) bool

// Filter applies all non-nil predicates conjunctively. The source slice is
// never mutated or reordered; the result is a fresh slice.
func Filter[T any](rows []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(rows))
rows:
	for _, row := range rows {
		for _, pred := range preds {
			if pred == nil {
				continue
			}
			if !pred(row) {
				continue rows
			}
		}
		out = append(out, row)
	}
	return out
}

// Page holds one slice of a filtered result set.
type Page[T any] struct {
	Rows       []T `json:"rows"`
	Number     int `json:"page"`
	TotalPages int `json:"total_pages"`
	TotalRows  int `json:"total_rows"`
}

// Paginate slices rows into fixed-size pages. Pages are 1-based; a page
// past the end yields an empty row set with the true page count.
func Paginate[T any](rows []T, page, size int) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page <= 0 {
		page = 1
	}

	totalRows := len(rows)
	totalPages := (totalRows + size - 1) / size

	start := (page - 1) * size
	if start >= totalRows {
		return Page[T]{Rows: []T{}, Number: page, TotalPages: totalPages, TotalRows: totalRows}
	}
	end := start + size
	if end > totalRows {
		end = totalRows
	}

	out := make([]T, end-start)
	copy(out, rows[start:end])
	return Page[T]{Rows: out, Number: page, TotalPages: totalPages, TotalRows: totalRows}
}

// DateRange matches rows whose timestamp falls inside [from, to]. A nil
// bound is open. Returns nil (inactive) when both bounds are nil.
func DateRange[T any](get func(T) time.Time, from, to *time.Time) Predicate[T] {
	if from == nil && to == nil {
		return nil
	}
	return func(row T) bool {
		ts := get(row)
		if from != nil && ts.Before(*from) {
			return false
		}
		if to != nil && ts.After(*to) {
			return false
		}
		return true
	}
}

// NumericRange matches rows whose value falls inside [min, max]. A nil
// bound is open. Returns nil (inactive) when both bounds are nil.
func NumericRange[T any](get func(T) float64, min, max *float64) Predicate[T] {
	if min == nil && max == nil {
		return nil
	}
	return func(row T) bool {
		v := get(row)
		if min != nil && v < *min {
			return false
		}
		if max != nil && v > *max {
			return false
		}
		return true
	}
}

// Substring matches rows where any of the given fields contains the query,
// case-insensitively. Returns nil (inactive) for a blank query.
func Substring[T any](query string, fields ...func(T) string) Predicate[T] {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	return func(row T) bool {
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field(row)), query) {
				return true
			}
		}
		return false
	}
}

// Equals matches rows whose field equals the wanted value exactly.
// Returns nil (inactive) for a blank value.
func Equals[T any](get func(T) string, want string) Predicate[T] {
	want = strings.TrimSpace(want)
	if want == "" {
		return nil
	}
	return func(row T) bool {
		return get(row) == want
	}
}
