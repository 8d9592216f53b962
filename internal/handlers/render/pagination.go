package render

import (
	"net/url"
	"strconv"
)

// PageRequest is the canonical descriptor of a list request: which
// window to return and which filter produced it. Limit 0 means the
// request is unpaginated and Page is ignored.
type PageRequest struct {
	Page          int64
	Limit         int64
	Search        string
	FavoritesOnly bool
}

// Paginated reports whether the request asked for a page window.
func (q PageRequest) Paginated() bool {
	return q.Limit > 0
}

// PageLink is a navigation link to one page of the collection
type PageLink struct {
	Page int64  `json:"page"`
	Href string `json:"href"`
}

// PageLinks is the navigation link set of a page. Previous and Next
// are serialized as null when absent, matching the collection wire
// format.
type PageLinks struct {
	First    *PageLink `json:"first"`
	Last     *PageLink `json:"last"`
	Previous *PageLink `json:"previous"`
	Next     *PageLink `json:"next"`
}

// Pagination is the computed page metadata for a collection response
type Pagination struct {
	CurrentPage  int64     `json:"currentPage"`
	CurrentItems int64     `json:"currentItems"`
	TotalPages   int64     `json:"totalPages"`
	TotalItems   int64     `json:"totalItems"`
	Links        PageLinks `json:"_links"`
}

// Paginate computes the page metadata for a request against totalItems
// matching records. totalItems must already be counted against the
// request's filter, never the unfiltered collection.
func (r *SongRenderer) Paginate(req PageRequest, totalItems int64) Pagination {
	if !req.Paginated() {
		// A single synthetic page holding everything. First and last
		// point at the bare collection root.
		root := ResourceLink{Href: r.collectionURL}
		return Pagination{
			CurrentPage:  1,
			CurrentItems: totalItems,
			TotalPages:   1,
			TotalItems:   totalItems,
			Links: PageLinks{
				First: &PageLink{Page: 1, Href: root.Href},
				Last:  &PageLink{Page: 1, Href: root.Href},
			},
		}
	}

	totalPages := (totalItems + req.Limit - 1) / req.Limit

	p := Pagination{
		CurrentPage:  req.Page,
		CurrentItems: req.Limit,
		TotalPages:   totalPages,
		TotalItems:   totalItems,
		Links: PageLinks{
			First: &PageLink{Page: 1, Href: r.pageHref(req, 1)},
			Last:  &PageLink{Page: totalPages, Href: r.pageHref(req, totalPages)},
		},
	}

	if req.Page > 1 {
		p.Links.Previous = &PageLink{Page: req.Page - 1, Href: r.pageHref(req, req.Page-1)}
	}
	if req.Page < totalPages {
		p.Links.Next = &PageLink{Page: req.Page + 1, Href: r.pageHref(req, req.Page+1)}
	}

	return p
}

// pageHref builds an absolute link to one page, carrying the complete
// query state so that following it reproduces an equivalent view.
func (r *SongRenderer) pageHref(req PageRequest, page int64) string {
	values := url.Values{}
	values.Set("page", strconv.FormatInt(page, 10))
	values.Set("limit", strconv.FormatInt(req.Limit, 10))
	if req.Search != "" {
		values.Set("search", req.Search)
	}
	if req.FavoritesOnly {
		values.Set("favorites", "true")
	}

	return r.collectionURL + "?" + values.Encode()
}
