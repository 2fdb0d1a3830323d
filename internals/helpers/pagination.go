// file: internals/helpers/pagination.go
package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 100
)

type Params struct {
	Page    int
	PerPage int
	Sort    string
}

// ParseFiber reads ?page=, ?per_page= (alias ?limit=) and ?sort= from the
// request and clamps them: page >= 1, 1 <= per_page <= MaxPerPage.
func ParseFiber(c *fiber.Ctx, defaultSort string) Params {
	page := atoiDefault(c.Query("page"), DefaultPage)
	if page < 1 {
		page = DefaultPage
	}

	perRaw := strings.TrimSpace(firstNonEmpty(c.Query("per_page"), c.Query("limit")))
	per := DefaultPerPage
	if n, err := strconv.Atoi(perRaw); err == nil && n > 0 {
		per = n
	}
	if per > MaxPerPage {
		per = MaxPerPage
	}
	if per < 1 {
		per = DefaultPerPage
	}

	sort := strings.ToLower(strings.TrimSpace(c.Query("sort")))
	if sort == "" {
		sort = defaultSort
	}

	return Params{Page: page, PerPage: per, Sort: sort}
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}

func firstNonEmpty(a, b string) string {
	if strings.TrimSpace(a) != "" {
		return a
	}
	return b
}

// Limit & Offset
func (p Params) Limit() int  { return p.PerPage }
func (p Params) Offset() int { return (p.Page - 1) * p.PerPage }

// OrderClause maps the requested sort key onto a whitelisted ORDER BY
// expression. Unknown keys fall back to the default key.
func (p Params) OrderClause(allowed map[string]string, defaultKey string) string {
	if expr, ok := allowed[p.Sort]; ok {
		return expr
	}
	return allowed[defaultKey]
}

// Meta is the pagination envelope returned with every listing.
type Meta struct {
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
	Pages   int   `json:"pages"`
}

func BuildMeta(total int64, p Params) Meta {
	pages := 0
	if total > 0 {
		pages = int((total + int64(p.PerPage) - 1) / int64(p.PerPage)) // ceil
	}
	return Meta{
		Page:    p.Page,
		PerPage: p.PerPage,
		Total:   total,
		Pages:   pages,
	}
}
