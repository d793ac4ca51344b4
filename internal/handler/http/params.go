package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/restoops/staff-backend-go/internal/pkg/validator"
)

// pathID parses a numeric chi URL parameter.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// queryParams collects typed query values and the field errors hit while
// reading them.
type queryParams struct {
	values map[string][]string
	errs   validator.ValidationErrors
}

func newQueryParams(r *http.Request) *queryParams {
	return &queryParams{values: r.URL.Query()}
}

func (q *queryParams) raw(key string) string {
	if v, ok := q.values[key]; ok && len(v) > 0 {
		return strings.TrimSpace(v[0])
	}
	return ""
}

func (q *queryParams) String(key string) string {
	return q.raw(key)
}

func (q *queryParams) OptionalString(key string) *string {
	v := q.raw(key)
	if v == "" {
		return nil
	}
	return &v
}

func (q *queryParams) OptionalInt64(key string) *int64 {
	v := q.raw(key)
	if v == "" {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		q.errs = append(q.errs, validator.ValidationError{Field: key, Message: key + " must be an integer"})
		return nil
	}
	return &n
}

func (q *queryParams) Int(key string, fallback int) int {
	v := q.raw(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		q.errs = append(q.errs, validator.ValidationError{Field: key, Message: key + " must be an integer"})
		return fallback
	}
	return n
}

func (q *queryParams) OptionalBool(key string) *bool {
	v := q.raw(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		q.errs = append(q.errs, validator.ValidationError{Field: key, Message: key + " must be true or false"})
		return nil
	}
	return &b
}

func (q *queryParams) Bool(key string, fallback bool) bool {
	if b := q.OptionalBool(key); b != nil {
		return *b
	}
	return fallback
}

// Err returns the accumulated field errors, or nil.
func (q *queryParams) Err() error {
	if len(q.errs) > 0 {
		return q.errs
	}
	return nil
}
