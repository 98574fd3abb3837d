package apperr

import (
	"errors"
	"net/http"
)

var (
	// ErrValidation — пустые или некорректные входные данные, повторять запрос бессмысленно.
	ErrValidation = errors.New("validation error")
	// ErrNotFound — запись не найдена или не опубликована.
	ErrNotFound = errors.New("not found")
	// ErrConflict — нарушение уникальности (например, slug).
	ErrConflict = errors.New("conflict")
	// ErrStoreUnavailable — хранилище недоступно (сеть, таймаут, пул закрыт).
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Status — HTTP-статус, которым хендлеры отвечают на ошибку данного вида.
func Status(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func IsValidation(err error) bool       { return errors.Is(err, ErrValidation) }
func IsNotFound(err error) bool         { return errors.Is(err, ErrNotFound) }
func IsStoreUnavailable(err error) bool { return errors.Is(err, ErrStoreUnavailable) }
