package dto

// Pagination is the pagination envelope the API attaches to collection
// responses. All fields default to zero when the server omits them,
// which the page walker relies on to terminate safely after one page.
type Pagination struct {
	Page    int `json:"page"`
	Pages   int `json:"pages"`
	PerPage int `json:"per_page"`
	Items   int `json:"items"`
}

// Exhausted reports whether the server-reported cursor says there are
// no further pages. Missing metadata (both fields zero) counts as
// exhausted.
func (p Pagination) Exhausted() bool {
	return p.Page >= p.Pages
}
