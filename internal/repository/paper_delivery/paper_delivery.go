package paper_delivery

import (
	"context"
	"fmt"
	"strings"

	"delayer/internal/entities"
	"delayer/internal/repository"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{
	"pk", "sk", "request_id", "iun", "stage", "delivery_week", "created_at",
	"notification_sent_at", "prepare_request_date", "product_type", "sender_pa_id",
	"recipient_id", "province", "cap", "attempt", "unified_delivery_driver", "tender_id", "priority",
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Query возвращает страницу партиции pk, ключи сортировки которой начинаются с skPrefix,
// строго после курсора. Курсор следующей страницы пуст, если дальше записей нет.
func (r *Repository) Query(
	ctx context.Context,
	pk, skPrefix string,
	cursor entities.Cursor,
	limit int,
) (entities.Page[entities.PaperDelivery], error) {
	builder := qb.
		Select(columns...).
		From("paper_deliveries").
		Where(sq.Eq{"pk": pk})

	if skPrefix != "" {
		builder = builder.Where("sk LIKE ? ESCAPE '\\'", escapeLike(skPrefix)+"%")
	}
	if cursor != "" {
		builder = builder.Where(sq.Gt{"sk": string(cursor)})
	}

	// одна лишняя строка говорит о том, что есть следующая страница
	query, args, err := builder.
		OrderBy("sk").
		Limit(uint64(limit) + 1).
		ToSql()
	if err != nil {
		return entities.Page[entities.PaperDelivery]{}, fmt.Errorf("unexpected paper delivery repository query error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return entities.Page[entities.PaperDelivery]{}, fmt.Errorf("unexpected paper delivery repository query error: %w", err)
	}
	defer rows.Close()

	items := make([]entities.PaperDelivery, 0, limit)
	var lastSk string
	hasMore := false
	for rows.Next() {
		if len(items) == limit {
			hasMore = true
			break
		}
		var p PaperDeliveryDB
		if err := rows.Scan(
			&p.Pk, &p.Sk, &p.RequestID, &p.Iun, &p.Stage, &p.DeliveryWeek, &p.CreatedAt,
			&p.NotificationSentAt, &p.PrepareRequestDate, &p.ProductType, &p.SenderPaID,
			&p.RecipientID, &p.Province, &p.Cap, &p.Attempt, &p.UnifiedDeliveryDriver, &p.TenderID, &p.Priority,
		); err != nil {
			return entities.Page[entities.PaperDelivery]{}, fmt.Errorf("unexpected paper delivery repository scan error: %w", err)
		}
		items = append(items, ToDomain(&p))
		lastSk = p.Sk
	}
	if err := rows.Err(); err != nil {
		return entities.Page[entities.PaperDelivery]{}, fmt.Errorf("unexpected paper delivery repository rows error: %w", err)
	}

	page := entities.Page[entities.PaperDelivery]{Items: items}
	if hasMore {
		page.NextCursor = entities.Cursor(lastSk)
	}
	return page, nil
}

// BatchPut пишет пачку одним pipeline. Повторная запись того же ключа игнорируется.
// Пачка выполняется в неявной транзакции, поэтому при временной ошибке
// необработанной считается вся пачка.
func (r *Repository) BatchPut(ctx context.Context, items []entities.PaperDelivery) ([]entities.PaperDelivery, error) {
	if len(items) == 0 {
		return nil, nil
	}

	query := `
		INSERT INTO paper_deliveries (` + strings.Join(columns, ", ") + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (pk, sk) DO NOTHING
	`

	batch := &pgx.Batch{}
	for _, item := range items {
		p := FromDomain(item)
		batch.Queue(query,
			p.Pk, p.Sk, p.RequestID, p.Iun, p.Stage, p.DeliveryWeek, p.CreatedAt,
			p.NotificationSentAt, p.PrepareRequestDate, p.ProductType, p.SenderPaID,
			p.RecipientID, p.Province, p.Cap, p.Attempt, p.UnifiedDeliveryDriver, p.TenderID, p.Priority,
		)
	}

	results := r.querier.SendBatch(ctx, batch)
	var execErr error
	for range items {
		if _, err := results.Exec(); err != nil {
			execErr = err
			break
		}
	}
	closeErr := results.Close()
	if execErr == nil {
		execErr = closeErr
	}

	if execErr != nil {
		if repository.IsTransient(execErr) {
			return items, nil
		}
		return nil, fmt.Errorf("unexpected paper delivery repository batch put error: %w", execErr)
	}
	return nil, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
