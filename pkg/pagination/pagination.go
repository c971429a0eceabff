// Package pagination holds page-number pagination shared by stores, services and handlers.
package pagination

import "math"

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Params selects one page of a result set. Page is 1-based.
type Params struct {
	Page     int
	PageSize int
}

// Normalize clamps values into the supported range.
func (p Params) Normalize() Params {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// InRange reports whether the page ends at an offset representable as an int.
// p must be normalized.
func (p Params) InRange() bool {
	return p.Page <= math.MaxInt/p.PageSize
}

// Offset never goes negative, even for params that skipped Normalize.
func (p Params) Offset() int {
	if p.Page < 1 || p.PageSize < 1 {
		return 0
	}
	if !p.InRange() {
		return math.MaxInt - p.PageSize
	}
	return (p.Page - 1) * p.PageSize
}

func (p Params) Limit() int {
	return p.PageSize
}

// Page is one page of results plus the total count.
type Page[T any] struct {
	Count    int `json:"count"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Results  []T `json:"results"`
}

// NewPage builds a page, never returning a nil results slice.
func NewPage[T any](p Params, count int, results []T) Page[T] {
	if results == nil {
		results = []T{}
	}
	return Page[T]{Count: count, Page: p.Page, PageSize: p.PageSize, Results: results}
}

// Slice pages an in-memory slice. Used by memory stores.
func Slice[T any](items []T, p Params) []T {
	start := p.Offset()
	if start < 0 || start >= len(items) {
		return []T{}
	}
	end := start + p.Limit()
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// Map converts the results of a page.
func Map[T, U any](in Page[T], fn func(T) U) Page[U] {
	out := make([]U, 0, len(in.Results))
	for _, item := range in.Results {
		out = append(out, fn(item))
	}
	return Page[U]{Count: in.Count, Page: in.Page, PageSize: in.PageSize, Results: out}
}
