package drivers

import "errors"

var (
	ErrDriversNotFound   = errors.New("no drivers found for province")
	ErrDriverNotResolved = errors.New("unified delivery driver not resolved")
)
