package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"postsdb/pkg/httpx"
	"postsdb/pkg/store"
	"postsdb/pkg/validation"
)

// JSONWrite writes the provided value as JSON with the given status code.
// It ensures the Content-Type is set to application/json.
func JSONWrite(w httpx.ResponseWriter, status int, v interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// WriteErr maps an error kind to its status code and writes an empty-body
// response: validation failures to 400, missing/invisible records to 404.
// Anything else is an internal error; the two expected kinds are never
// logged, they are normal traffic outcomes.
func WriteErr(w httpx.ResponseWriter, err error) {
	switch {
	case errors.Is(err, validation.ErrBadRequest):
		w.WriteHeader(http.StatusBadRequest)
	case errors.Is(err, store.ErrNotFound):
		w.WriteHeader(http.StatusNotFound)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
}
