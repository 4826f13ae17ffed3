package pagination

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/meusistema/clientes/internal/pkg/errors"
)

var parser = Parser{Columns: map[string]string{"id": "id", "area": "area", "valor": "valor"}}

func TestParseDefaults(t *testing.T) {
	p, err := parser.Parse(url.Values{})
	require.NoError(t, err)
	assert.Equal(t, 0, p.Page)
	assert.Equal(t, DefaultSize, p.Size)
	assert.False(t, p.Sorted())
	assert.Equal(t, 0, p.Offset())
}

func TestParsePageSizeSort(t *testing.T) {
	q := url.Values{}
	q.Set("page", "3")
	q.Set("size", "5")
	q.Add("sort", "area,desc")
	q.Add("sort", "id")
	q.Add("sort", "area,asc")

	p, err := parser.Parse(q)
	require.NoError(t, err)
	assert.Equal(t, 15, p.Offset())
	require.Len(t, p.Sort, 2)
	assert.Equal(t, Order{Field: "area", Column: "area", Direction: Desc}, p.Sort[0])
	assert.Equal(t, Order{Field: "id", Column: "id", Direction: Asc}, p.Sort[1])
}

func TestParseClampsSize(t *testing.T) {
	p, err := Parser{MaxSize: 50}.Parse(url.Values{"size": {"900"}})
	require.NoError(t, err)
	assert.Equal(t, 50, p.Size)
}

func TestParseRejects(t *testing.T) {
	cases := map[string]url.Values{
		"negative page":  {"page": {"-1"}},
		"text page":      {"page": {"x"}},
		"zero size":      {"size": {"0"}},
		"unknown field":  {"sort": {"password,asc"}},
		"bad direction":  {"sort": {"id,sideways"}},
		"too many parts": {"sort": {"id,asc,desc"}},
		"huge page":      {"page": {"2147483647"}},
	}
	for name, q := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parser.Parse(q)
			require.Error(t, err)
			var pe *ParseError
			assert.True(t, errors.As(err, &pe))
			assert.True(t, errors.Is(err, pkgerrors.ErrInvalidArgument))
		})
	}
}

func TestPageMath(t *testing.T) {
	pg := NewPage([]int{1, 2}, Of(0, 2), 5)
	assert.Equal(t, 3, pg.TotalPages())
	assert.True(t, pg.HasNext())
	assert.False(t, pg.HasPrevious())

	last := NewPage[int](nil, Of(2, 2), 5)
	assert.NotNil(t, last.Content)
	assert.False(t, last.HasNext())
	assert.True(t, last.HasPrevious())

	empty := NewPage[int](nil, Of(0, 20), 0)
	assert.Equal(t, 0, empty.TotalPages())
	assert.False(t, empty.HasNext())
}
