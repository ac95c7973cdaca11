package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"github.com/aidar/stellar-team/internal/domain"
)

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail содержит код и описание ошибки
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondWithError отправляет ответ с ошибкой
func RespondWithError(w http.ResponseWriter, r *http.Request, statusCode int, code, message string) {
	render.Status(r, statusCode)
	render.JSON(w, r, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

// HandleError преобразует доменные ошибки в HTTP ответы
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	code := domain.MapErrorToCode(err)

	switch {
	case errors.Is(err, domain.ErrInvalidIndex):
		RespondWithError(w, r, http.StatusBadRequest, string(code), "index must be a non-negative integer")
	case errors.Is(err, domain.ErrMemberNotFound):
		RespondWithError(w, r, http.StatusNotFound, string(code), "member not found")
	case errors.Is(err, domain.ErrNotFound):
		RespondWithError(w, r, http.StatusNotFound, string(code), "resource not found")
	default:
		RespondWithError(w, r, http.StatusInternalServerError, string(code), "internal server error")
	}
}
