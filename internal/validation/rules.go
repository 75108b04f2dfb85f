// Package validation provides the string rules the login body is checked with,
// and the bridge from jellydator/validation errors to ErrInvalidInput.
package validation

import (
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/tickets/internal/errors"
)

// WrapValidationError marks err as invalid input. The field messages are kept as detail.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

func trimRule(code, message string, ok func(s, trimmed string) bool) validation.StringRule {
	return validation.NewStringRuleWithError(
		func(s string) bool { return ok(s, strings.TrimSpace(s)) },
		validation.NewError(code, message),
	)
}

var (
	// NoWhitespace rejects leading or trailing whitespace.
	NoWhitespace = trimRule("validation_no_whitespace", "must not contain leading or trailing whitespace",
		func(s, trimmed string) bool { return s == trimmed })

	// NotBlank rejects strings made only of whitespace. Empty strings are left to validation.Required.
	NotBlank = trimRule("validation_not_blank", "must not be blank",
		func(_, trimmed string) bool { return trimmed != "" })
)
