// Package pagination parses page/size/sort query parameters and carries paged results.
package pagination

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	pkgerrors "github.com/meusistema/clientes/internal/pkg/errors"
)

const (
	DefaultSize = 20
	MaxSize     = 2000
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Order is one sort key. Field is the JSON attribute name, Column the database column.
type Order struct {
	Field     string
	Column    string
	Direction Direction
}

type Pageable struct {
	Page int
	Size int
	Sort []Order
}

// Offset is the number of rows skipped before this page.
func (p Pageable) Offset() int { return p.Page * p.Size }

// Sorted reports whether any sort key was requested.
func (p Pageable) Sorted() bool { return len(p.Sort) > 0 }

// Of builds a Pageable without sort keys.
func Of(page, size int) Pageable {
	return Pageable{Page: page, Size: size}
}

// Parser reads a Pageable from query parameters. Columns maps the JSON attributes that
// may be sorted on to their database column.
type Parser struct {
	Columns     map[string]string
	DefaultSize int
	MaxSize     int
}

// ParseError reports which parameter was rejected.
type ParseError struct {
	Param string
	Msg   string
}

func (e *ParseError) Error() string { return e.Param + ": " + e.Msg }

func (e *ParseError) Unwrap() error { return pkgerrors.ErrInvalidArgument }

func (p Parser) Parse(q url.Values) (Pageable, error) {
	defSize := p.DefaultSize
	if defSize <= 0 {
		defSize = DefaultSize
	}
	maxSize := p.MaxSize
	if maxSize <= 0 {
		maxSize = MaxSize
	}

	out := Pageable{Page: 0, Size: defSize}

	if raw := strings.TrimSpace(q.Get("page")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return Pageable{}, &ParseError{Param: "page", Msg: fmt.Sprintf("must be a non-negative integer, got %q", raw)}
		}
		out.Page = n
	}
	if raw := strings.TrimSpace(q.Get("size")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return Pageable{}, &ParseError{Param: "size", Msg: fmt.Sprintf("must be a positive integer, got %q", raw)}
		}
		if n > maxSize {
			n = maxSize
		}
		out.Size = n
	}
	// Guard Offset() against overflow on absurd page numbers.
	if out.Page > math.MaxInt32/out.Size {
		return Pageable{}, &ParseError{Param: "page", Msg: "out of range"}
	}

	seen := map[string]bool{}
	for _, raw := range q["sort"] {
		parts := strings.Split(raw, ",")
		field := strings.TrimSpace(parts[0])
		if field == "" {
			continue
		}
		dir := Asc
		switch len(parts) {
		case 1:
		case 2:
			switch strings.ToLower(strings.TrimSpace(parts[1])) {
			case "", "asc":
			case "desc":
				dir = Desc
			default:
				return Pageable{}, &ParseError{Param: "sort", Msg: fmt.Sprintf("unknown direction %q", parts[1])}
			}
		default:
			return Pageable{}, &ParseError{Param: "sort", Msg: fmt.Sprintf("malformed sort %q", raw)}
		}
		col, ok := p.Columns[field]
		if !ok {
			return Pageable{}, &ParseError{Param: "sort", Msg: fmt.Sprintf("unknown sort property %q", field)}
		}
		if seen[field] {
			continue
		}
		seen[field] = true
		out.Sort = append(out.Sort, Order{Field: field, Column: col, Direction: dir})
	}
	return out, nil
}

// Page is one slice of a larger ordered result.
type Page[T any] struct {
	Content       []T
	Number        int
	Size          int
	TotalElements int64
}

func NewPage[T any](content []T, p Pageable, total int64) *Page[T] {
	if content == nil {
		content = []T{}
	}
	return &Page[T]{Content: content, Number: p.Page, Size: p.Size, TotalElements: total}
}

func (p *Page[T]) TotalPages() int {
	if p.Size <= 0 {
		return 1
	}
	return int((p.TotalElements + int64(p.Size) - 1) / int64(p.Size))
}

func (p *Page[T]) HasNext() bool { return p.Number+1 < p.TotalPages() }

func (p *Page[T]) HasPrevious() bool { return p.Number > 0 }
