// Package dto provides request and response bodies for the login endpoints.
package dto

import (
	validation "github.com/jellydator/validation"

	authUseCase "github.com/allisson/tickets/internal/auth/usecase"
	customValidation "github.com/allisson/tickets/internal/validation"
)

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Username string `json:"username"`
	Pwd      string `json:"pwd"`
}

// Validate checks if the login request is valid.
func (r *LoginRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Username,
			validation.Required,
			customValidation.NotBlank,
			customValidation.NoWhitespace,
			validation.Length(1, 255),
		),
		validation.Field(&r.Pwd,
			validation.Required,
			validation.Length(1, 255),
		),
	)
}

// ToLoginInput converts the request into use case input.
func (r *LoginRequest) ToLoginInput() authUseCase.LoginInput {
	return authUseCase.LoginInput{Username: r.Username, Password: r.Pwd}
}
