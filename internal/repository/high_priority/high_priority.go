package high_priority

import (
	"context"
	"fmt"

	"delayer/internal/entities"
	"delayer/internal/service/highpriority"

	sq "github.com/Masterminds/squirrel"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Query страница очереди скоупа в порядке создания.
func (r *Repository) Query(
	ctx context.Context,
	scope entities.Scope,
	cursor entities.Cursor,
	limit int,
) (entities.Page[entities.HighPriorityItem], error) {
	builder := qb.
		Select("pk", "created_at", "request_id", "unified_delivery_driver", "geo_key",
			"iun", "product_type", "province", "cap", "tender_id").
		From("high_priority_deliveries").
		Where(sq.Eq{"pk": entities.HighPriorityKey(scope.DriverID, scope.GeoKey)})

	if cursor != "" {
		createdAt, requestID, err := decodeCursor(cursor)
		if err != nil {
			return entities.Page[entities.HighPriorityItem]{}, err
		}
		builder = builder.Where("(created_at, request_id) > (?, ?)", createdAt, requestID)
	}

	query, args, err := builder.
		OrderBy("created_at", "request_id").
		Limit(uint64(limit) + 1).
		ToSql()
	if err != nil {
		return entities.Page[entities.HighPriorityItem]{}, fmt.Errorf("unexpected high priority repository query error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return entities.Page[entities.HighPriorityItem]{}, fmt.Errorf("unexpected high priority repository query error: %w", err)
	}
	defer rows.Close()

	var (
		page entities.Page[entities.HighPriorityItem]
		last HighPriorityDB
	)
	for rows.Next() {
		if len(page.Items) == limit {
			page.NextCursor = encodeCursor(&last)
			break
		}
		var h HighPriorityDB
		if err := rows.Scan(
			&h.Pk, &h.CreatedAt, &h.RequestID, &h.UnifiedDeliveryDriver, &h.GeoKey,
			&h.Iun, &h.ProductType, &h.Province, &h.Cap, &h.TenderID,
		); err != nil {
			return entities.Page[entities.HighPriorityItem]{}, fmt.Errorf("unexpected high priority repository scan error: %w", err)
		}
		page.Items = append(page.Items, ToDomain(&h))
		last = h
	}
	if err := rows.Err(); err != nil {
		return entities.Page[entities.HighPriorityItem]{}, fmt.Errorf("unexpected high priority repository rows error: %w", err)
	}
	return page, nil
}

// ListScopes все скоупы (driver, geoKey), у которых есть отправления в очереди.
func (r *Repository) ListScopes(ctx context.Context) ([]entities.Scope, error) {
	query := `
		SELECT DISTINCT unified_delivery_driver, geo_key
		FROM high_priority_deliveries
		ORDER BY unified_delivery_driver, geo_key
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected high priority repository list scopes error: %w", err)
	}
	defer rows.Close()

	var res []entities.Scope
	for rows.Next() {
		var s entities.Scope
		if err := rows.Scan(&s.DriverID, &s.GeoKey); err != nil {
			return nil, fmt.Errorf("unexpected high priority repository scan error: %w", err)
		}
		res = append(res, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected high priority repository rows error: %w", err)
	}
	return res, nil
}

// Delete удаляет отправления из очереди. Если хотя бы одного уже нет, возвращает ошибку,
// чтобы транзакция откатилась целиком.
func (r *Repository) Delete(ctx context.Context, items []entities.HighPriorityItem) error {
	if len(items) == 0 {
		return nil
	}

	keys := make(sq.Or, 0, len(items))
	for _, item := range items {
		keys = append(keys, sq.Eq{
			"pk":         entities.HighPriorityKey(item.UnifiedDeliveryDriver, item.GeoKey),
			"created_at": item.CreatedAt,
			"request_id": item.RequestID,
		})
	}

	query, args, err := qb.Delete("high_priority_deliveries").Where(keys).ToSql()
	if err != nil {
		return fmt.Errorf("unexpected high priority repository delete error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected high priority repository delete error: %w", err)
	}
	if result.RowsAffected() != int64(len(items)) {
		return fmt.Errorf("%w: deleted %d of %d", highpriority.ErrHighPriorityItemMissing, result.RowsAffected(), len(items))
	}
	return nil
}

// InsertReadyToSend вставляет отправления с назначенной датой доставки. Дубликат ключа
// считается ошибкой.
func (r *Repository) InsertReadyToSend(ctx context.Context, items []entities.ReadyToSend) error {
	if len(items) == 0 {
		return nil
	}

	builder := qb.Insert("ready_to_send").Columns("delivery_date", "request_id", "iun")
	for _, item := range items {
		m := FromReadyToSendDomain(item)
		builder = builder.Values(m.DeliveryDate, m.RequestID, m.Iun)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("unexpected high priority repository insert ready to send error: %w", err)
	}
	if _, err := r.querier.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("unexpected high priority repository insert ready to send error: %w", err)
	}
	return nil
}
