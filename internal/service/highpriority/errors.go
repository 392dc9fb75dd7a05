package highpriority

import "errors"

var (
	ErrHighPriorityItemMissing = errors.New("high priority item already dispatched")
	ErrHighPriorityTransaction = errors.New("high priority transaction failed")
)
