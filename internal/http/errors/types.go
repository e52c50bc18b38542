// Package errors maps service failures to the HTTP error envelope.
package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dropDatabas3/rbac-admin/internal/domain/repository"
	"github.com/dropDatabas3/rbac-admin/internal/jwt"
)

// AppError define la estructura estándar para errores de la API.
type AppError struct {
	Code       string // código interno, sólo para logs
	Message    string
	Detail     string
	HTTPStatus int
	Err        error // causa original, nunca se expone al cliente
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

// WithDetail devuelve una COPIA con el detalle agregado.
func (e *AppError) WithDetail(detail string) *AppError {
	cp := *e
	cp.Detail = detail
	return &cp
}

// WithCause devuelve una COPIA con la causa agregada.
func (e *AppError) WithCause(err error) *AppError {
	cp := *e
	cp.Err = err
	return &cp
}

// Msg es el texto que viaja en el envelope.
func (e *AppError) Msg() string {
	if e.Detail == "" {
		return e.Message
	}
	return e.Message + ": " + e.Detail
}

var (
	ErrBadRequest = &AppError{Code: "BAD_REQUEST", Message: "bad request", HTTPStatus: http.StatusBadRequest}

	ErrInvalidJSON = &AppError{Code: "INVALID_JSON", Message: "invalid json body", HTTPStatus: http.StatusBadRequest}

	ErrInvalidParameter = &AppError{Code: "INVALID_PARAMETER", Message: "invalid path parameter", HTTPStatus: http.StatusBadRequest}

	ErrBodyTooLarge = &AppError{Code: "BODY_TOO_LARGE", Message: "request body too large", HTTPStatus: http.StatusRequestEntityTooLarge}

	ErrValidation = &AppError{Code: "VALIDATION", Message: "validation failed", HTTPStatus: http.StatusBadRequest}

	ErrTokenMissing = &AppError{Code: "TOKEN_MISSING", Message: "missing authorization header", HTTPStatus: http.StatusBadRequest}

	ErrMalformedToken = &AppError{Code: "TOKEN_MALFORMED", Message: "malformed bearer token", HTTPStatus: http.StatusUnauthorized}

	ErrTokenInvalid = &AppError{Code: "TOKEN_INVALID", Message: "invalid or expired token", HTTPStatus: http.StatusUnauthorized}

	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "invalid user name or password", HTTPStatus: http.StatusUnauthorized}

	ErrNotFound = &AppError{Code: "NOT_FOUND", Message: "resource not found", HTTPStatus: http.StatusNotFound}

	ErrConflict = &AppError{Code: "CONFLICT", Message: "resource already exists", HTTPStatus: http.StatusConflict}

	ErrMethodNotAllowed = &AppError{Code: "METHOD_NOT_ALLOWED", Message: "method not allowed", HTTPStatus: http.StatusMethodNotAllowed}

	ErrRateLimitExceeded = &AppError{Code: "RATE_LIMITED", Message: "too many requests", HTTPStatus: http.StatusTooManyRequests}

	ErrInternalServerError = &AppError{Code: "INTERNAL", Message: "internal server error", HTTPStatus: http.StatusInternalServerError}

	ErrServiceUnavailable = &AppError{Code: "UNAVAILABLE", Message: "service unavailable", HTTPStatus: http.StatusServiceUnavailable}
)

// FromError convierte errores de otras capas en AppError. Lo que no se
// reconoce termina como 500 conservando la causa para los logs.
func FromError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	switch {
	case errors.Is(err, repository.ErrInvalidInput):
		return ErrValidation.WithCause(err)
	case errors.Is(err, repository.ErrNotFound):
		return ErrNotFound.WithCause(err)
	case errors.Is(err, repository.ErrConflict):
		return ErrConflict.WithCause(err)
	case errors.Is(err, jwt.ErrInvalidToken):
		return ErrTokenInvalid.WithCause(err)
	}
	return ErrInternalServerError.WithCause(err)
}
