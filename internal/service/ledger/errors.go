package ledger

import "errors"

var (
	ErrCounterNotFound          = errors.New("used capacity counter not found")
	ErrDeclaredCapacityNotFound = errors.New("declared capacity not found")
)
