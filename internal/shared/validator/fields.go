package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	// usernameRegex allows letters (any script), digits, '_', '.', '-'
	usernameRegex = regexp.MustCompile(`^[\p{L}\p{N}_.\-]+$`)

	// sortKeyRegex matches "field" or "field,asc|desc"
	sortKeyRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*(,(?i:asc|desc))?$`)
)

// ValidateUsername validates a member username
func ValidateUsername(fl validator.FieldLevel) bool {
	return usernameRegex.MatchString(fl.Field().String())
}

// ValidateSortKey validates the shape of a sort parameter; the key itself is
// resolved by the domain that owns the columns
func ValidateSortKey(fl validator.FieldLevel) bool {
	return sortKeyRegex.MatchString(fl.Field().String())
}
