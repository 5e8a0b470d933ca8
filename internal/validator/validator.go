package validator

import (
	"slices"
	"strings"
)

// Validator contains a list of validation errors.
type Validator struct {
	Errors []string
}

// New is a helper which creates a new Validator instance with an empty errors list.
func New() *Validator {
	return &Validator{}
}

// Valid returns true if the errors list doesn't contain any entries.
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError adds an error message to the errors list
func (v *Validator) AddError(message string) {
	v.Errors = append(v.Errors, message)
}

// Check adds an error message to the list only if a validation check is not 'ok'.
func (v *Validator) Check(ok bool, message string) {
	if !ok {
		v.AddError(message)
	}
}

// PermittedValue returns true if a specific value is in a list of permitted values.
func PermittedValue[T comparable](value T, permittedValues ...T) bool {
	return slices.Contains(permittedValues, value)
}

// NotEmptyOrWhitespace returns true if a string contains at least one non-whitespace character.
func NotEmptyOrWhitespace(value string) bool {
	return strings.TrimSpace(value) != ""
}
