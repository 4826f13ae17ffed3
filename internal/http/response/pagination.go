package response

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/meusistema/clientes/internal/pkg/pagination"
)

const HeaderTotalCount = "X-Total-Count"

// RespondPage writes the page content with X-Total-Count and Link headers.
func RespondPage[T any](c *gin.Context, page *pagination.Page[T]) {
	c.Header(HeaderTotalCount, strconv.FormatInt(page.TotalElements, 10))
	c.Header("Link", LinkHeader(requestURL(c.Request), page.Number, page.Size, page.TotalPages(), page.HasNext(), page.HasPrevious()))
	c.JSON(http.StatusOK, page.Content)
}

// LinkHeader builds the RFC 5988 header with next, prev, last and first relations,
// in that order. next and prev are left out when there is no such page.
func LinkHeader(base *url.URL, number, size, totalPages int, hasNext, hasPrev bool) string {
	lastPage := 0
	if totalPages > 0 {
		lastPage = totalPages - 1
	}
	links := make([]string, 0, 4)
	if hasNext {
		links = append(links, link(base, number+1, size, "next"))
	}
	if hasPrev {
		links = append(links, link(base, number-1, size, "prev"))
	}
	links = append(links, link(base, lastPage, size, "last"))
	links = append(links, link(base, 0, size, "first"))
	return strings.Join(links, ",")
}

func link(base *url.URL, page, size int, rel string) string {
	u := *base
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	u.RawQuery = q.Encode()
	return "<" + u.String() + `>; rel="` + rel + `"`
}

func requestURL(r *http.Request) *url.URL {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if fwd := strings.TrimSpace(r.Header.Get("X-Forwarded-Proto")); fwd != "" {
		scheme = fwd
	}
	return &url.URL{
		Scheme:   scheme,
		Host:     r.Host,
		Path:     r.URL.Path,
		RawQuery: r.URL.RawQuery,
	}
}
