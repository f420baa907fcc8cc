package httperr

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// BusinessError is a recoverable rule violation identified by a stable
// wire code. Field, when set, names the offending input so clients can
// attach the message to the right form control.
type BusinessError struct {
	Code  string
	Field string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code, field string) error {
	return BusinessError{Code: code, Field: field}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// WriteBusiness renders err's business code with the given status,
// keeping the field scope on the payload. Anything that is not a
// BusinessError becomes a plain internal error.
func WriteBusiness(c *gin.Context, status int, err error, message string) {
	var be BusinessError
	if !errors.As(err, &be) {
		Internal(c, "internal_error", "Unexpected error.")
		return
	}
	c.JSON(status, HTTPError{
		Code:    be.Code,
		Message: message,
		Field:   be.Field,
	})
}
