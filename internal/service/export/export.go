package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"path"
	"strconv"
	"time"

	"delayer/internal/entities"
)

const (
	pageSize    = 500
	contentType = "text/csv"
	fileSuffix  = "_DeliveryDriverUsed.csv"
)

var header = []string{"pk", "deliveryDate", "unifiedDeliveryDriver", "geoKey", "usedCapacity", "declaredCapacity"}

// Result итог выгрузки. Пустой URL означает, что за неделю нет данных.
type Result struct {
	Key  string
	URL  string
	Rows int
}

type Exporter struct {
	counters  CounterReader
	storage   Storage
	keyPrefix string
}

func New(counters CounterReader, storage Storage, keyPrefix string) *Exporter {
	return &Exporter{
		counters:  counters,
		storage:   storage,
		keyPrefix: keyPrefix,
	}
}

// ExportUsedCapacities выгружает счетчики использованной мощности недели в CSV
// и возвращает ссылку на скачивание.
func (e *Exporter) ExportUsedCapacities(ctx context.Context, week time.Time) (Result, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return Result{}, fmt.Errorf("write csv header: %w", err)
	}

	rows := 0
	cursor := entities.Cursor("")
	for {
		page, err := e.counters.ListByWeek(ctx, week, cursor, pageSize)
		if err != nil {
			return Result{}, fmt.Errorf("list used capacities at cursor %q: %w", cursor, err)
		}

		for _, c := range page.Items {
			record := []string{
				c.Scope.Key(),
				entities.FormatDate(c.DeliveryWeek),
				c.DriverID,
				c.GeoKey,
				strconv.Itoa(c.Used),
				strconv.Itoa(c.Declared),
			}
			if err := w.Write(record); err != nil {
				return Result{}, fmt.Errorf("write csv record: %w", err)
			}
		}
		rows += len(page.Items)

		if !page.HasNext() {
			break
		}
		cursor = page.NextCursor
	}

	if rows == 0 {
		return Result{}, nil
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return Result{}, fmt.Errorf("flush csv: %w", err)
	}

	key := path.Join(e.keyPrefix, entities.FormatDate(week)+fileSuffix)
	if err := e.storage.Put(ctx, key, buf.Bytes(), contentType); err != nil {
		return Result{}, fmt.Errorf("upload export: %w", err)
	}

	url, err := e.storage.PresignGet(ctx, key)
	if err != nil {
		return Result{}, fmt.Errorf("presign export: %w", err)
	}

	return Result{Key: key, URL: url, Rows: rows}, nil
}
