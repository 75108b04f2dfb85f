// Package httputil maps internal errors to the stable client-facing error envelope.
package httputil

import (
	"net/http"

	authDomain "github.com/allisson/tickets/internal/auth/domain"
	apperrors "github.com/allisson/tickets/internal/errors"
	ticketDomain "github.com/allisson/tickets/internal/ticket/domain"
)

// ClientError is the error type string exposed to clients.
type ClientError string

// Client error types.
const (
	ClientErrorNoAuthTokenCookie ClientError = "AUTH_FAIL_NO_AUTH_TOKEN_COOKIE"
	ClientErrorTokenWrongFormat  ClientError = "AUTH_FAIL_TOKEN_WRONG_FORMAT"
	ClientErrorCtxNotInRequest   ClientError = "AUTH_FAIL_CTX_NOT_IN_REQUEST_EXT"
	ClientErrorTicketNotFound    ClientError = "TICKET_DELETE_FAIL_ID_NOT_FOUND"
	ClientErrorLoginFail         ClientError = "LOGIN_FAIL"
	ClientErrorInvalidParams     ClientError = "INVALID_PARAMS"
	ClientErrorRateLimited       ClientError = "RATE_LIMIT_EXCEEDED"
	ClientErrorService           ClientError = "SERVICE_ERROR"
)

// ErrorResponse is the body written for every mapped failure.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the client error type and the request correlation id.
type ErrorBody struct {
	Type    ClientError `json:"type"`
	ReqUUID string      `json:"req_uuid"`
}

// NewErrorResponse builds the error envelope.
func NewErrorResponse(clientError ClientError, reqUUID string) ErrorResponse {
	return ErrorResponse{Error: ErrorBody{Type: clientError, ReqUUID: reqUUID}}
}

// MapError derives the HTTP status code and client error type for err.
// Specific domain errors are matched before the generic kinds they wrap.
// Unknown errors map to SERVICE_ERROR so internal detail never reaches the client.
func MapError(err error) (int, ClientError) {
	switch {
	case apperrors.Is(err, authDomain.ErrNoAuthTokenCookie):
		return http.StatusUnauthorized, ClientErrorNoAuthTokenCookie

	case apperrors.Is(err, authDomain.ErrTokenWrongFormat):
		return http.StatusUnauthorized, ClientErrorTokenWrongFormat

	case apperrors.Is(err, authDomain.ErrCtxNotInRequest):
		return http.StatusInternalServerError, ClientErrorCtxNotInRequest

	case apperrors.Is(err, ticketDomain.ErrTicketNotFound):
		return http.StatusBadRequest, ClientErrorTicketNotFound

	case apperrors.Is(err, authDomain.ErrLoginFailed):
		return http.StatusForbidden, ClientErrorLoginFail

	case apperrors.Is(err, apperrors.ErrInvalidInput):
		return http.StatusBadRequest, ClientErrorInvalidParams

	case apperrors.Is(err, apperrors.ErrRateLimited):
		return http.StatusTooManyRequests, ClientErrorRateLimited

	default:
		return http.StatusInternalServerError, ClientErrorService
	}
}
