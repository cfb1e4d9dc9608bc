package httperr

import "errors"

// BusinessError is a named validation failure of a single request:
// business_not_found, outside_working_hours, slot_unavailable and so
// on. Anything that is not a BusinessError is treated as an internal
// failure by the transport layer.
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
