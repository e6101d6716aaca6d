package server

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/kasuboski/vodz/pkg/pagination"
)

// ParsePaginationParams reads page and pageSize, accepting page_size as well
func ParsePaginationParams(r *http.Request) (pagination.Params, error) {
	qp := r.URL.Query()

	page, err := intParam(qp, 1, 1, "page")
	if err != nil {
		return pagination.Params{}, err
	}

	pageSize, err := intParam(qp, 0, 0, "pageSize", "page_size")
	if err != nil {
		return pagination.Params{}, err
	}

	return pagination.Params{Page: page, PageSize: pageSize}.Normalize(), nil
}

// intParam parses the first of names present in qp. Values below minimum are rejected.
func intParam(qp url.Values, def, minimum int, names ...string) (int, error) {
	for _, name := range names {
		v := qp.Get(name)
		if v == "" {
			continue
		}

		n, err := strconv.Atoi(v)
		if err != nil || n < minimum {
			return 0, fmt.Errorf("invalid %s parameter: must be an integer of at least %d", name, minimum)
		}
		return n, nil
	}

	return def, nil
}

func optionalParam[T any](qp url.Values, name string, parse func(string) (T, error)) (*T, error) {
	v := qp.Get(name)
	if v == "" {
		return nil, nil
	}

	parsed, err := parse(v)
	if err != nil {
		return nil, fmt.Errorf("invalid %s parameter: %q", name, v)
	}
	return &parsed, nil
}

func parseFloat(v string) (float64, error) {
	return strconv.ParseFloat(v, 64)
}
