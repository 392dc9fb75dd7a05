package print_counter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"delayer/internal/entities"
	"delayer/internal/service/printgate"

	"github.com/AlekSi/pointer"
	"github.com/jackc/pgx/v5"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// GetActualCapacity строка мощности печати с наибольшей датой начала не позже недели.
func (r *Repository) GetActualCapacity(ctx context.Context, week time.Time) (*entities.PrintCapacity, error) {
	query := `
		SELECT start_date, daily_capacity
		FROM print_capacities
		WHERE start_date <= $1
		ORDER BY start_date DESC
		LIMIT 1
	`

	var c PrintCapacityDB
	err := r.querier.QueryRow(ctx, query, week).Scan(&c.StartDate, &c.DailyCapacity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, printgate.ErrPrintCapacityNotFound
		}
		return nil, fmt.Errorf("unexpected print counter repository get capacity error: %w", err)
	}
	return ToPrintCapacityDomain(&c), nil
}

// SaveCapacities заводит строки мощности печати, существующие даты перезаписываются.
func (r *Repository) SaveCapacities(ctx context.Context, capacities []entities.PrintCapacity) error {
	query := `
		INSERT INTO print_capacities (start_date, daily_capacity)
		VALUES ($1, $2)
		ON CONFLICT (start_date) DO UPDATE SET daily_capacity = EXCLUDED.daily_capacity
	`
	for _, c := range capacities {
		if _, err := r.querier.Exec(ctx, query, c.StartDate, c.DailyCapacity); err != nil {
			return fmt.Errorf("unexpected print counter repository save capacity error: %w", err)
		}
	}
	return nil
}

func (r *Repository) GetPrintCounter(ctx context.Context, week time.Time) (*entities.PrintCounter, error) {
	query := `
		SELECT sk, number_of_shipments, excluded_delivery_counter, weekly_print_capacity, daily_print_capacity
		FROM paper_delivery_counters
		WHERE pk = $1 AND sk = $2
	`

	var c PrintCounterDB
	err := r.querier.QueryRow(ctx, query, printPk, entities.FormatDate(week)).Scan(
		&c.Sk, &c.NumberOfShipments, &c.ExcludedDeliveryCounter, &c.WeeklyPrintCapacity, &c.DailyPrintCapacity,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, printgate.ErrPrintCounterNotFound
		}
		return nil, fmt.Errorf("unexpected print counter repository get error: %w", err)
	}
	return ToDomain(&c)
}

// UpdatePrintCounter прибавляет отправленные и исключенные (nil означает ноль),
// мощность и TTL перезаписываются при каждом вызове.
func (r *Repository) UpdatePrintCounter(ctx context.Context, progress entities.PrintProgress) error {
	query := `
		INSERT INTO paper_delivery_counters (
			pk, sk, number_of_shipments, excluded_delivery_counter,
			weekly_print_capacity, daily_print_capacity, sent_to_next_week, ttl
		)
		VALUES ($1, $2, $3, $4, $5, $6, 0, $7)
		ON CONFLICT (pk, sk) DO UPDATE
		SET number_of_shipments = paper_delivery_counters.number_of_shipments + EXCLUDED.number_of_shipments,
		    excluded_delivery_counter = paper_delivery_counters.excluded_delivery_counter + EXCLUDED.excluded_delivery_counter,
		    weekly_print_capacity = EXCLUDED.weekly_print_capacity,
		    daily_print_capacity = EXCLUDED.daily_print_capacity,
		    ttl = EXCLUDED.ttl
	`

	_, err := r.querier.Exec(ctx, query,
		printPk,
		entities.FormatDate(progress.DeliveryWeek),
		pointer.Get(progress.Sent),
		pointer.Get(progress.Excluded),
		progress.WeeklyPrintCapacity,
		progress.DailyPrintCapacity,
		progress.TTL,
	)
	if err != nil {
		return fmt.Errorf("unexpected print counter repository update error: %w", err)
	}
	return nil
}

// ListExcluded счетчики EXCLUDE~province~* недели.
func (r *Repository) ListExcluded(ctx context.Context, week time.Time, province string) ([]entities.ExcludedCounter, error) {
	query := `
		SELECT sk, number_of_shipments
		FROM paper_delivery_counters
		WHERE pk = $1 AND starts_with(sk, $2)
	`

	prefix := entities.JoinKey(excludeSkPrefix, province) + "~"
	rows, err := r.querier.Query(ctx, query, entities.FormatDate(week), prefix)
	if err != nil {
		return nil, fmt.Errorf("unexpected print counter repository list excluded error: %w", err)
	}
	defer rows.Close()

	var res []entities.ExcludedCounter
	for rows.Next() {
		var c ExcludedCounterDB
		if err := rows.Scan(&c.Sk, &c.NumberOfShipments); err != nil {
			return nil, fmt.Errorf("unexpected print counter repository scan error: %w", err)
		}
		res = append(res, ToExcludedDomain(&c))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected print counter repository rows error: %w", err)
	}
	return res, nil
}
