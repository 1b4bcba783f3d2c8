// Package validation holds request validation helpers. The product
// routes use struct-tag schema validation; simpler inputs run through
// the hand-rolled Validator checks.
package validation

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

	validate = validator.New()
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type Validator struct {
	Errors []ValidationError
}

func New() *Validator {
	return &Validator{Errors: make([]ValidationError, 0)}
}

func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

func (v *Validator) AddError(field, message string) {
	v.Errors = append(v.Errors, ValidationError{Field: field, Message: message})
}

func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

// FieldMap flattens collected errors for a JSON response body.
func (v *Validator) FieldMap() map[string]string {
	out := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		out[e.Field] = e.Message
	}
	return out
}

func ValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func ValidPhone(phone string) bool {
	return phone == "" || phoneRegex.MatchString(phone)
}

// Struct runs tag-based schema validation and returns a field error map,
// or nil when the input is valid.
func Struct(input interface{}) map[string]string {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}
	fields := make(map[string]string)
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			fields[fe.Field()] = fmt.Sprintf("failed %s validation", fe.Tag())
		}
		return fields
	}
	fields["_"] = err.Error()
	return fields
}
