package used_capacity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"delayer/internal/entities"
	"delayer/internal/service/ledger"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{"pk", "delivery_date", "unified_delivery_driver", "geo_key", "used_capacity", "declared_capacity"}

type Repository struct {
	querier Querier
	table   Table
}

func New(querier Querier, table Table) *Repository {
	return &Repository{
		querier: querier,
		table:   table,
	}
}

func (r *Repository) Get(ctx context.Context, scope entities.Scope, week time.Time) (*entities.UsedCapacity, error) {
	query, args, err := qb.
		Select(columns...).
		From(string(r.table)).
		Where(sq.Eq{
			"pk":            entities.DriverGeoKey(scope.DriverID, scope.GeoKey),
			"delivery_date": week,
		}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected %s repository get error: %w", r.table, err)
	}

	var u UsedCapacityDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&u.Pk, &u.DeliveryDate, &u.UnifiedDeliveryDriver, &u.GeoKey, &u.UsedCapacity, &u.DeclaredCapacity,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ledger.ErrCounterNotFound
		}
		return nil, fmt.Errorf("unexpected %s repository get error: %w", r.table, err)
	}
	return ToDomain(&u), nil
}

// Increment атомарно прибавляет Delta к used_capacity. Заявленная мощность перезаписывается.
func (r *Repository) Increment(ctx context.Context, inc entities.CapacityIncrement) error {
	query, args, err := qb.
		Insert(string(r.table)).
		Columns(columns...).
		Values(
			entities.DriverGeoKey(inc.DriverID, inc.GeoKey),
			inc.DeliveryWeek,
			inc.DriverID,
			inc.GeoKey,
			inc.Delta,
			inc.Declared,
		).
		Suffix(fmt.Sprintf(`ON CONFLICT (pk, delivery_date) DO UPDATE
			SET used_capacity = %[1]s.used_capacity + EXCLUDED.used_capacity,
			    declared_capacity = EXCLUDED.declared_capacity`, r.table)).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected %s repository increment error: %w", r.table, err)
	}

	if _, err := r.querier.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("unexpected %s repository increment error: %w", r.table, err)
	}
	return nil
}

// ListByWeek страница счетчиков недели, упорядоченная по ключу.
func (r *Repository) ListByWeek(
	ctx context.Context,
	week time.Time,
	cursor entities.Cursor,
	limit int,
) (entities.Page[entities.UsedCapacity], error) {
	builder := qb.
		Select(columns...).
		From(string(r.table)).
		Where(sq.Eq{"delivery_date": week})
	if cursor != "" {
		builder = builder.Where(sq.Gt{"pk": string(cursor)})
	}

	query, args, err := builder.OrderBy("pk").Limit(uint64(limit) + 1).ToSql()
	if err != nil {
		return entities.Page[entities.UsedCapacity]{}, fmt.Errorf("unexpected %s repository list error: %w", r.table, err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return entities.Page[entities.UsedCapacity]{}, fmt.Errorf("unexpected %s repository list error: %w", r.table, err)
	}
	defer rows.Close()

	var page entities.Page[entities.UsedCapacity]
	var lastPk string
	for rows.Next() {
		if len(page.Items) == limit {
			page.NextCursor = entities.Cursor(lastPk)
			break
		}
		var u UsedCapacityDB
		if err := rows.Scan(
			&u.Pk, &u.DeliveryDate, &u.UnifiedDeliveryDriver, &u.GeoKey, &u.UsedCapacity, &u.DeclaredCapacity,
		); err != nil {
			return entities.Page[entities.UsedCapacity]{}, fmt.Errorf("unexpected %s repository scan error: %w", r.table, err)
		}
		page.Items = append(page.Items, *ToDomain(&u))
		lastPk = u.Pk
	}
	if err := rows.Err(); err != nil {
		return entities.Page[entities.UsedCapacity]{}, fmt.Errorf("unexpected %s repository rows error: %w", r.table, err)
	}
	return page, nil
}
