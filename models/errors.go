package models

import "errors"

// Error taxonomy shared by services and controllers. Controllers map these
// onto HTTP status codes; everything else is wrapped and treated as a
// ServerError.
var (
	ErrNotFound        = errors.New("resource not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrValidation      = errors.New("validation failed")
	ErrNetwork         = errors.New("upstream unreachable")
	ErrServer          = errors.New("internal error")
	ErrPaymentRejected = errors.New("payment rejected")
	ErrPaymentTimeout  = errors.New("payment status polling timed out")
)

// IsNotFound reports whether err is (or wraps) ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
