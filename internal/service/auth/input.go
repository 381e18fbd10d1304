package auth

import (
	"github.com/heartmarshall/escolhe-pra-mim/internal/validation"
)

// RegisterInput holds parameters for account registration.
type RegisterInput struct {
	Name     string `json:"name"     validate:"notblank"`
	Email    string `json:"email"    validate:"notblank,simple_email"`
	Password string `json:"password" validate:"required,min=6"`
}

var registerMessages = validation.Messages{
	"notblank":           "Name, email, and password are required",
	"required":           "Name, email, and password are required",
	"email.simple_email": "Invalid email format",
	"password.min":       "Password must be at least 6 characters long",
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	return validation.Struct(i, registerMessages)
}

// LoginInput holds parameters for email + password login.
type LoginInput struct {
	Email    string `json:"email"    validate:"notblank"`
	Password string `json:"password" validate:"required"`
}

var loginMessages = validation.Messages{
	"notblank": "Email and password are required",
	"required": "Email and password are required",
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	return validation.Struct(i, loginMessages)
}
