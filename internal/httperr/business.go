package httperr

import (
	"errors"
	"net/http"
)

// BusinessError is a domain rule violation identified by a stable code.
// Status is the HTTP status it maps to.
type BusinessError struct {
	Code   string
	Status int
}

func (e BusinessError) Error() string {
	return e.Code
}

// ErrBusiness is a rule violation answered with 400.
func ErrBusiness(code string) error {
	return BusinessError{Code: code, Status: http.StatusBadRequest}
}

// ErrMissing is a lookup miss answered with 404.
func ErrMissing(code string) error {
	return BusinessError{Code: code, Status: http.StatusNotFound}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}

func businessStatus(err error) int {
	var be BusinessError
	if errors.As(err, &be) && be.Status != 0 {
		return be.Status
	}
	return http.StatusBadRequest
}
