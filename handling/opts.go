package handling

import (
	"net/http"
	"strconv"

	"tienda_server/services"
)

// ParseProductListOptions parses HTTP query parameters into ProductListOptions.
// Malformed numeric parameters are rejected; unknown sort values are left for
// Normalize to fall back on.
func ParseProductListOptions(r *http.Request) (*services.ProductListOptions, error) {
	query := r.URL.Query()

	opts := &services.ProductListOptions{}
	if len(query) == 0 {
		return opts, nil
	}

	var err error
	var valInt int

	if search := query.Get("search"); search != "" {
		opts.Search = search
	}

	if category := query.Get("category"); category != "" {
		opts.Category = category
	}

	if minPrice := query.Get("min_price"); minPrice != "" {
		val, err := strconv.ParseUint(minPrice, 10, 64)
		if err != nil {
			return nil, err
		}
		opts.MinPrice = &val
	}

	if maxPrice := query.Get("max_price"); maxPrice != "" {
		val, err := strconv.ParseUint(maxPrice, 10, 64)
		if err != nil {
			return nil, err
		}
		opts.MaxPrice = &val
	}

	opts.SortBy = query.Get("sort_by")
	opts.SortOrder = query.Get("sort_order")

	if limit := query.Get("limit"); limit != "" {
		if valInt, err = strconv.Atoi(limit); err != nil {
			return nil, err
		}
		opts.Limit = valInt
	}

	if offset := query.Get("offset"); offset != "" {
		if valInt, err = strconv.Atoi(offset); err != nil {
			return nil, err
		}
		opts.Offset = valInt
	}

	return opts, nil
}
