package errors

import "fmt"

// HTTPError carries an HTTP status code alongside a user-facing message.
// Delivery layers translate domain errors into HTTPError; pkg/response
// picks the status code from it when writing the reply.
type HTTPError struct {
	Code    int
	Message string
}

func (e HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// NewHTTPError creates an HTTPError with the given status code and message.
func NewHTTPError(code int, message string) HTTPError {
	return HTTPError{Code: code, Message: message}
}
