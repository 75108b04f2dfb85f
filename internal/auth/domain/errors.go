package domain

import (
	"github.com/allisson/tickets/internal/errors"
)

// Authentication errors. Each one maps to a distinct client error type.
var (
	// ErrNoAuthTokenCookie indicates the request carried no credential cookie at all.
	// It is the expected state of an anonymous request and never signals tampering.
	ErrNoAuthTokenCookie = errors.Wrap(errors.ErrUnauthorized, "no auth token cookie")

	// ErrTokenWrongFormat indicates the credential cookie did not match the token shape.
	ErrTokenWrongFormat = errors.Wrap(errors.ErrUnauthorized, "auth token wrong format")

	// ErrCtxNotInRequest indicates the ctx resolver middleware did not run for the request.
	ErrCtxNotInRequest = errors.Wrap(errors.ErrInternal, "auth ctx not in request")

	// ErrLoginFailed indicates the login credentials did not match.
	ErrLoginFailed = errors.Wrap(errors.ErrUnauthorized, "login failed")
)
