// Package errors holds the domain error type shared by all services.
// Services return these values; handlers translate them into JSON
// bodies, keeping one error contract for every mutation.
package errors

// DomainError is a coded business failure. Infrastructure failures are
// plain errors and surface as generic 500s.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// New builds a one-off domain error.
func New(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}
