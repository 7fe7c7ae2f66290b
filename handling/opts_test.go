package handling

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProductListOptionsEmpty(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/products", nil)

	opts, err := ParseProductListOptions(r)
	require.NoError(t, err)
	assert.Empty(t, opts.Search)
	assert.Nil(t, opts.MinPrice)
	assert.Nil(t, opts.MaxPrice)
	assert.Zero(t, opts.Limit)
}

func TestParseProductListOptionsFull(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet,
		"/products?search=mug&category=kitchen&min_price=100&max_price=5000&sort_by=price&sort_order=asc&limit=50&offset=25", nil)

	opts, err := ParseProductListOptions(r)
	require.NoError(t, err)

	assert.Equal(t, "mug", opts.Search)
	assert.Equal(t, "kitchen", opts.Category)
	require.NotNil(t, opts.MinPrice)
	assert.Equal(t, uint64(100), *opts.MinPrice)
	require.NotNil(t, opts.MaxPrice)
	assert.Equal(t, uint64(5000), *opts.MaxPrice)
	assert.Equal(t, "price", opts.SortBy)
	assert.Equal(t, "asc", opts.SortOrder)
	assert.Equal(t, 50, opts.Limit)
	assert.Equal(t, 25, opts.Offset)
}

func TestParseProductListOptionsBothPriceBounds(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/products?min_price=10&max_price=20", nil)

	opts, err := ParseProductListOptions(r)
	require.NoError(t, err)

	require.NotNil(t, opts.MinPrice)
	require.NotNil(t, opts.MaxPrice)
	assert.Equal(t, uint64(10), *opts.MinPrice)
	assert.Equal(t, uint64(20), *opts.MaxPrice)
	assert.NotSame(t, opts.MinPrice, opts.MaxPrice)
}

func TestParseProductListOptionsRejectsBadNumbers(t *testing.T) {
	for _, query := range []string{
		"min_price=cheap",
		"max_price=-1",
		"limit=ten",
		"offset=2.5",
	} {
		r := httptest.NewRequest(http.MethodGet, "/products?"+query, nil)
		_, err := ParseProductListOptions(r)
		assert.Error(t, err, "query %q", query)
	}
}
