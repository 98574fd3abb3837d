package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"imuhira/internal/apperr"
	"imuhira/internal/i18n"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const maxBodyBytes = 2 << 20

var validate = validator.New(validator.WithRequiredStructEnabled())

// decode читает JSON-тело и проверяет validate-теги. Ошибки — apperr.ErrValidation.
func decode(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON body", apperr.ErrValidation)
	}
	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: field %s failed %q check", apperr.ErrValidation, lowerFirst(fe.Field()), fe.Tag())
		}
		return fmt.Errorf("%w: %v", apperr.ErrValidation, err)
	}
	return nil
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s must be a UUID", apperr.ErrValidation, name)
	}
	return id, nil
}

func queryUUID(r *http.Request, name string) (*uuid.UUID, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a UUID", apperr.ErrValidation, name)
	}
	return &id, nil
}

// locale: ?locale= (или ?lng=), затем Accept-Language, иначе язык по умолчанию.
func locale(r *http.Request) i18n.Locale {
	q := r.URL.Query()
	if v := q.Get("locale"); v != "" {
		return i18n.Parse(v)
	}
	if v := q.Get("lng"); v != "" {
		return i18n.Parse(v)
	}
	return i18n.Negotiate(r.Header.Get("Accept-Language"))
}

func page(r *http.Request) (limit, offset int) {
	limit = clampAtoi(r.URL.Query().Get("limit"), 20, 1, 100)
	offset = clampAtoi(r.URL.Query().Get("offset"), 0, 0, 1_000_000)
	return limit, offset
}

func clampAtoi(s string, def, min, max int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}
