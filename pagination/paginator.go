// Package pagination splits an in-memory result set into numbered pages.
package pagination

import (
	"strconv"
	"strings"
)

type Paginator[T any] struct {
	items   []T
	perPage int
}

// New returns a paginator over items. perPage values below one are treated
// as one.
func New[T any](items []T, perPage int) *Paginator[T] {
	if perPage < 1 {
		perPage = 1
	}
	return &Paginator[T]{items: items, perPage: perPage}
}

func (p *Paginator[T]) Count() int {
	return len(p.items)
}

// NumPages is never less than one: an empty result set has one empty page.
func (p *Paginator[T]) NumPages() int {
	if len(p.items) == 0 {
		return 1
	}
	return (len(p.items) + p.perPage - 1) / p.perPage
}

// GetPage resolves a raw page parameter to a page. Missing or non-numeric
// values give the first page; numbers outside the valid range give the last.
func (p *Paginator[T]) GetPage(raw string) Page[T] {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		n = 1
	}
	if n < 1 || n > p.NumPages() {
		n = p.NumPages()
	}
	return p.Page(n)
}

// Page returns page n, which must be within 1..NumPages.
func (p *Paginator[T]) Page(n int) Page[T] {
	start := (n - 1) * p.perPage
	end := start + p.perPage
	if end > len(p.items) {
		end = len(p.items)
	}
	if start > end {
		start = end
	}
	return Page[T]{
		Items:    p.items[start:end],
		Number:   n,
		NumPages: p.NumPages(),
		Count:    len(p.items),
		offset:   start,
	}
}

type Page[T any] struct {
	Items    []T
	Number   int
	NumPages int
	Count    int
	offset   int
}

func (pg Page[T]) HasNext() bool {
	return pg.Number < pg.NumPages
}

func (pg Page[T]) HasPrevious() bool {
	return pg.Number > 1
}

func (pg Page[T]) HasOtherPages() bool {
	return pg.HasNext() || pg.HasPrevious()
}

func (pg Page[T]) NextPageNumber() int {
	if !pg.HasNext() {
		return pg.Number
	}
	return pg.Number + 1
}

func (pg Page[T]) PreviousPageNumber() int {
	if !pg.HasPrevious() {
		return pg.Number
	}
	return pg.Number - 1
}

// StartIndex is the 1-based position of the first item on the page, or 0
// when there are no items at all.
func (pg Page[T]) StartIndex() int {
	if pg.Count == 0 {
		return 0
	}
	return pg.offset + 1
}

func (pg Page[T]) EndIndex() int {
	return pg.offset + len(pg.Items)
}

// PageRange lists page numbers 1..NumPages for navigation links.
func (pg Page[T]) PageRange() []int {
	r := make([]int, pg.NumPages)
	for i := range r {
		r[i] = i + 1
	}
	return r
}
