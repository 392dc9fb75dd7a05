package sender_limit

import (
	"context"
	"fmt"
	"time"

	"delayer/internal/entities"

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

// GetLimits процентные лимиты по ключам paId~productType~province на дату отправки.
func (r *Repository) GetLimits(ctx context.Context, keys []string, date time.Time) ([]entities.SenderLimit, error) {
	if len(keys) == 0 {
		return nil, nil
	}

	query, args, err := qb.
		Select("pk", "delivery_date", "pa_id", "product_type", "province", "percentage").
		From("sender_limits").
		Where(sq.Eq{"pk": keys, "delivery_date": date}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected sender limit repository get limits error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected sender limit repository get limits error: %w", err)
	}
	defer rows.Close()

	var res []entities.SenderLimit
	for rows.Next() {
		var s SenderLimitDB
		if err := rows.Scan(&s.Pk, &s.DeliveryDate, &s.PaID, &s.ProductType, &s.Province, &s.Percentage); err != nil {
			return nil, fmt.Errorf("unexpected sender limit repository scan error: %w", err)
		}
		res = append(res, ToDomain(&s))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected sender limit repository rows error: %w", err)
	}
	return res, nil
}

// GetUsed счетчики использованного лимита по ключам на дату отправки.
func (r *Repository) GetUsed(ctx context.Context, keys []string, date time.Time) ([]entities.UsedSenderLimit, error) {
	if len(keys) == 0 {
		return nil, nil
	}

	query, args, err := qb.
		Select("pk", "delivery_date", "pa_id", "product_type", "province", "number_of_shipment", "sender_limit").
		From("used_sender_limits").
		Where(sq.Eq{"pk": keys, "delivery_date": date}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected sender limit repository get used error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected sender limit repository get used error: %w", err)
	}
	defer rows.Close()

	var res []entities.UsedSenderLimit
	for rows.Next() {
		var u UsedSenderLimitDB
		if err := rows.Scan(&u.Pk, &u.DeliveryDate, &u.PaID, &u.ProductType, &u.Province, &u.NumberOfShipment, &u.SenderLimit); err != nil {
			return nil, fmt.Errorf("unexpected sender limit repository scan error: %w", err)
		}
		res = append(res, ToUsedDomain(&u))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected sender limit repository rows error: %w", err)
	}
	return res, nil
}

// IncrementUsed ADD number_of_shipment, SET sender_limit.
func (r *Repository) IncrementUsed(ctx context.Context, inc entities.SenderLimitIncrement) error {
	query := `
		INSERT INTO used_sender_limits (pk, delivery_date, pa_id, product_type, province, number_of_shipment, sender_limit)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (pk, delivery_date) DO UPDATE
		SET number_of_shipment = used_sender_limits.number_of_shipment + EXCLUDED.number_of_shipment,
		    sender_limit = EXCLUDED.sender_limit
	`

	_, err := r.querier.Exec(ctx, query,
		entities.SenderLimitKey(inc.PaID, inc.ProductType, inc.Province),
		inc.DeliveryDate,
		inc.PaID,
		string(inc.ProductType),
		inc.Province,
		inc.Delta,
		inc.SenderLimit,
	)
	if err != nil {
		return fmt.Errorf("unexpected sender limit repository increment error: %w", err)
	}
	return nil
}
