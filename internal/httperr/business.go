package httperr

import "errors"

// Stable business error codes surfaced to the caller.
const (
	CodeInvalidCredentials = "invalid_credentials"
	CodeForbidden          = "forbidden"
	CodeNotFound           = "not_found"
	CodeInvalidReference   = "invalid_reference"
	CodeDuplicateCode      = "duplicate_code"
	CodeDuplicateEmail     = "duplicate_email"
	CodeValidationError    = "validation_error"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
