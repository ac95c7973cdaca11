package domain

import "errors"

// Доменные ошибки, возвращаемые HTTP слоем
var (
	// ErrNotFound возвращается когда ресурс не найден
	ErrNotFound = errors.New("resource not found")

	// ErrMemberNotFound возвращается когда участника с такой позицией нет в каталоге
	ErrMemberNotFound = errors.New("member not found")

	// ErrInvalidIndex возвращается когда позиция участника не является неотрицательным числом
	ErrInvalidIndex = errors.New("invalid member index")
)

// ErrorCode представляет коды ошибок API
type ErrorCode string

// Коды ошибок API
const (
	CodeBadRequest ErrorCode = "BAD_REQUEST"    // Некорректный запрос
	CodeNotFound   ErrorCode = "NOT_FOUND"      // Ресурс не найден
	CodeInternal   ErrorCode = "INTERNAL_ERROR" // Внутренняя ошибка
)

// MapErrorToCode преобразует доменные ошибки в коды ошибок API
func MapErrorToCode(err error) ErrorCode {
	switch {
	case errors.Is(err, ErrInvalidIndex):
		return CodeBadRequest
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrMemberNotFound):
		return CodeNotFound
	default:
		return CodeInternal
	}
}
