package request

import (
	"fmt"
	"net/http"
	"strconv"
)

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

type Pagination struct {
	Skip  int
	Limit int
}

// ParsePagination reads the skip and limit query parameters.
// Skip defaults to 0, limit defaults to DefaultLimit and is capped at MaxLimit.
func ParsePagination(r *http.Request) (Pagination, error) {
	p := Pagination{
		Skip:  0,
		Limit: DefaultLimit,
	}

	if raw := r.URL.Query().Get("skip"); raw != "" {
		skip, err := strconv.Atoi(raw)
		if err != nil || skip < 0 {
			return Pagination{}, fmt.Errorf("skip must be a non-negative integer")
		}

		p.Skip = skip
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > MaxLimit {
			return Pagination{}, fmt.Errorf("limit must be an integer between 1 and %d", MaxLimit)
		}

		p.Limit = limit
	}

	return p, nil
}
