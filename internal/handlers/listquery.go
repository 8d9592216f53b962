package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"songvault/internal/handlers/render"
)

var errInvalidPageLimit = errors.New("page and limit must be greater than 0")

// parseListQuery normalizes the raw query string of a list request
// into a canonical descriptor.
//
// Rules:
//   - page and limit are base-10 integers; present but non-numeric or
//     below 1 fails validation
//   - without limit the request is unpaginated and page is ignored
//   - with limit but without page, page defaults to 1
//   - search is trimmed and lowercased; blank means absent
//   - favorites filters only for the literal value "true"
//
// No upper bound is enforced on page or limit.
func parseListQuery(c *gin.Context) (render.PageRequest, error) {
	var req render.PageRequest

	rawPage, hasPage := c.GetQuery("page")
	rawLimit, hasLimit := c.GetQuery("limit")

	page := int64(1)
	if hasPage {
		parsed, err := strconv.ParseInt(rawPage, 10, 64)
		if err != nil || parsed < 1 {
			return req, errInvalidPageLimit
		}
		page = parsed
	}

	if hasLimit {
		parsed, err := strconv.ParseInt(rawLimit, 10, 64)
		if err != nil || parsed < 1 {
			return req, errInvalidPageLimit
		}
		req.Limit = parsed
		req.Page = page
	}

	req.Search = strings.ToLower(strings.TrimSpace(c.Query("search")))
	req.FavoritesOnly = c.Query("favorites") == "true"

	return req, nil
}
