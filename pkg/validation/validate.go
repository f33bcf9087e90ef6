package validation

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
)

// ErrBadRequest classifies malformed or missing request parameters. Failures
// from the validators wrap it; the response writer maps it to 400.
var ErrBadRequest = errors.New("bad request")

// RequireContent extracts the required non-empty "content" parameter.
func RequireContent(q url.Values) (string, error) {
	if !q.Has("content") {
		return "", fmt.Errorf("%w: content parameter required", ErrBadRequest)
	}
	content := q.Get("content")
	if content == "" {
		return "", fmt.Errorf("%w: content must not be empty", ErrBadRequest)
	}
	return content, nil
}

// RequireID extracts the required "id" parameter as a finite number.
// Fractional or negative values are accepted here and simply never match a
// stored id, surfacing as not-found from the store resolver.
func RequireID(q url.Values) (float64, error) {
	if !q.Has("id") {
		return 0, fmt.Errorf("%w: id parameter required", ErrBadRequest)
	}
	id, err := strconv.ParseFloat(q.Get("id"), 64)
	if err != nil || math.IsNaN(id) || math.IsInf(id, 0) {
		return 0, fmt.Errorf("%w: id must be a number", ErrBadRequest)
	}
	return id, nil
}
