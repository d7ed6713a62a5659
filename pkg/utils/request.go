package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/loyalty/pkg/validate"
)

var (
	ErrInvalidBody = errors.New("Invalid request body")
	ErrInvalidID   = errors.New("Invalid id")
)

// DecodeJSON reads the request body into dst and checks its validate tags.
func DecodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return ErrInvalidBody
	}
	return validate.Struct(dst)
}

// IntParam reads a positive integer URL parameter.
func IntParam(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
