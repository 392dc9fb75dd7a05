package driver_capacity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"delayer/internal/entities"
	"delayer/internal/service/ledger"

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

// GetActive заявленная мощность по ключу tenderId##driverId##geoKey, действующая на дату at.
// Из нескольких подходящих интервалов берется начавшийся позже всех.
func (r *Repository) GetActive(ctx context.Context, tenderID, driverID, geoKey string, at time.Time) (int, error) {
	query := `
		SELECT capacity
		FROM driver_capacities
		WHERE pk = $1
		  AND activation_date_from <= $2
		  AND (activation_date_to IS NULL OR activation_date_to > $2)
		ORDER BY activation_date_from DESC
		LIMIT 1
	`

	var capacity int
	err := r.querier.QueryRow(ctx, query, entities.TenderKey(tenderID, driverID, geoKey), at).Scan(&capacity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ledger.ErrDeclaredCapacityNotFound
		}
		return 0, fmt.Errorf("unexpected driver capacity repository get error: %w", err)
	}
	return capacity, nil
}

// ListActiveOnProvince действующие мощности всех водителей провинции, по одной на водителя.
func (r *Repository) ListActiveOnProvince(ctx context.Context, tenderID, province string, at time.Time) ([]entities.DriverCapacity, error) {
	query := `
		SELECT DISTINCT ON (pk)
			pk, activation_date_from, activation_date_to, tender_id,
			unified_delivery_driver, geo_key, capacity, products
		FROM driver_capacities
		WHERE tender_id = $1
		  AND geo_key = $2
		  AND activation_date_from <= $3
		  AND (activation_date_to IS NULL OR activation_date_to > $3)
		ORDER BY pk, activation_date_from DESC
	`

	rows, err := r.querier.Query(ctx, query, tenderID, province, at)
	if err != nil {
		return nil, fmt.Errorf("unexpected driver capacity repository list error: %w", err)
	}
	defer rows.Close()

	var res []entities.DriverCapacity
	for rows.Next() {
		var d DriverCapacityDB
		if err := rows.Scan(
			&d.Pk, &d.ActivationDateFrom, &d.ActivationDateTo, &d.TenderID,
			&d.UnifiedDeliveryDriver, &d.GeoKey, &d.Capacity, &d.Products,
		); err != nil {
			return nil, fmt.Errorf("unexpected driver capacity repository scan error: %w", err)
		}
		res = append(res, ToDomain(&d))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected driver capacity repository rows error: %w", err)
	}
	return res, nil
}
