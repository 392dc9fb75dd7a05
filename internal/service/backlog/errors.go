package backlog

import "errors"

var (
	ErrInsertPaperDeliveries = errors.New("insert paper deliveries: unprocessed items remain")

	errUnprocessedItems = errors.New("batch returned unprocessed items")
)
