package printgate

import "errors"

var (
	ErrPrintCapacityNotFound = errors.New("print capacity not found")
	ErrPrintCounterNotFound  = errors.New("print counter not found")
)
