package helpers

import (
	"encoding/json"
	"errors"
	"net/http"

	"imuhira/internal/apperr"
)

type Response struct {
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Response{Data: data})
}

func Error(w http.ResponseWriter, status int, errMsg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Response{Error: errMsg})
}

// FromError пишет ошибку сервиса с кодом по её виду. Текст внутренних ошибок клиенту не отдаётся.
func FromError(w http.ResponseWriter, err error) {
	status := apperr.Status(err)
	switch {
	case status == http.StatusInternalServerError:
		Error(w, status, "internal error")
	case status == http.StatusServiceUnavailable:
		Error(w, status, "storage temporarily unavailable")
	case errors.Is(err, apperr.ErrNotFound):
		Error(w, status, "not available")
	default:
		Error(w, status, err.Error())
	}
}
