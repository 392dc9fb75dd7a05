package backlog

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"delayer/internal/entities"
)

type Writer struct {
	repository Repository
	retrier    retrier
	chunkSize  int
}

// New retrier должен ретраить только ошибки, для которых ShouldRetry возвращает true,
// и ограничивать число попыток.
func New(repository Repository, retrier retrier, chunkSize int) *Writer {
	if chunkSize <= 0 {
		chunkSize = 25
	}
	return &Writer{
		repository: repository,
		retrier:    retrier,
		chunkSize:  chunkSize,
	}
}

// ShouldRetry повторная попытка нужна только если в пачке остались необработанные записи.
func ShouldRetry(err error) bool {
	return errors.Is(err, errUnprocessedItems)
}

// Insert пишет отправления пачками. На повторной попытке отправляются только необработанные.
// Уже записанные пачки при ошибке остаются записанными.
func (w *Writer) Insert(ctx context.Context, items []entities.PaperDelivery) error {
	if len(items) == 0 {
		return nil
	}

	pending := items
	attempt := 0
	err := w.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		if attempt > 0 {
			BatchWriteRetriesTotal.Inc()
		}
		attempt++

		var unprocessed []entities.PaperDelivery
		for chunk := range slices.Chunk(pending, w.chunkSize) {
			rest, err := w.repository.BatchPut(ctx, chunk)
			if err != nil {
				return err
			}
			unprocessed = append(unprocessed, rest...)
		}

		pending = unprocessed
		if len(pending) > 0 {
			return fmt.Errorf("%d of %d: %w", len(pending), len(items), errUnprocessedItems)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, errUnprocessedItems) {
			return fmt.Errorf("%w: %d items after %d attempts", ErrInsertPaperDeliveries, len(pending), attempt)
		}
		return fmt.Errorf("batch put paper deliveries: %w", err)
	}

	for _, item := range items {
		WrittenItemsTotal.WithLabelValues(item.Stage.String()).Inc()
	}
	return nil
}
