package runner

import "errors"

var (
	ErrInvalidTrigger      = errors.New("invalid job trigger")
	ErrInvalidPartitionKey = errors.New("invalid partition key")
)
