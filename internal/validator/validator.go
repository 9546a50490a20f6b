// Package validator holds the custom validation tags shared by request
// binding and configuration checks.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// identifierRegex matches user and phrase ids: ASCII letters, digits, hyphens and underscores
var identifierRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// validateIdentifier validates that a string is a usable path identifier
func validateIdentifier(fl validator.FieldLevel) bool {
	return identifierRegex.MatchString(fl.Field().String())
}

func register(v *validator.Validate) {
	_ = v.RegisterValidation("identifier", validateIdentifier)
}

// RegisterCustomValidators registers all custom validators with gin's validator
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		register(v)
	}
}

// New returns a standalone validator with the custom validators registered.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	register(v)
	return v
}
