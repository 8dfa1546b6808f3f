package models

import "math"

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
	// MaxPage keeps Skip well inside int64 for every allowed limit.
	MaxPage = math.MaxInt32
)

// Page selects a window of a newest-first listing. Page numbers start at 1.
type Page struct {
	Page  int
	Limit int
}

// NewPage clamps page and limit into their valid ranges.
func NewPage(page, limit int) Page {
	if page < 1 {
		page = DefaultPage
	}
	if page > MaxPage {
		page = MaxPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Page{Page: page, Limit: limit}
}

func (p Page) Skip() int64 {
	if p.Page < 1 || p.Limit < 1 {
		return 0
	}
	return int64(p.Page-1) * int64(p.Limit)
}

func (p Page) TotalPages(total int64) int {
	if p.Limit <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(p.Limit) - 1) / int64(p.Limit))
}
