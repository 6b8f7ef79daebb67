package types

import "fmt"

// Error types reported in the JSON envelope
const (
	TypeAuthorizationUser  = "forms.authorization.user"
	TypeAuthorizationAdmin = "forms.authorization.admin"
	TypeValidation         = "forms.validation"
	TypeDuplicate          = "forms.duplicate"
	TypeWrite              = "forms.write"
	TypeRead               = "submissions.read"
	TypeNotFound           = "not_found"
	TypeRegistration       = "register"
)

// CustomError carries an HTTP status and envelope type through the fiber error path
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// NewError builds a CustomError
func NewError(code int, errorType, format string, args ...any) *CustomError {
	return &CustomError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Type:    errorType,
	}
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}
