package printgate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"delayer/internal/entities"

	"github.com/AlekSi/pointer"
)

type Gate struct {
	repository  Repository
	workingDays int
	counterTTL  time.Duration
}

func New(repository Repository, workingDays int, counterTTL time.Duration) *Gate {
	return &Gate{
		repository:  repository,
		workingDays: workingDays,
		counterTTL:  counterTTL,
	}
}

// ActualWeeklyCeiling недельный потолок печати: дневная мощность из последней строки
// не позже недели, умноженная на число рабочих дней.
func (g *Gate) ActualWeeklyCeiling(ctx context.Context, week time.Time) (int, error) {
	capacity, err := g.repository.GetActualCapacity(ctx, week)
	if err != nil {
		if errors.Is(err, ErrPrintCapacityNotFound) {
			return 0, fmt.Errorf("week %s: %w", entities.FormatDate(week), err)
		}
		return 0, fmt.Errorf("get print capacity: %w", err)
	}
	return capacity.DailyCapacity * g.workingDays, nil
}

// Progress сколько мест печати недели уже занято.
func (g *Gate) Progress(ctx context.Context, week time.Time) (int, error) {
	counter, err := g.repository.GetPrintCounter(ctx, week)
	if err != nil {
		if errors.Is(err, ErrPrintCounterNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("get print counter: %w", err)
	}
	return counter.Progress(), nil
}

// Split делит n принятых отправлений на уложившиеся в потолок и исключенные.
func Split(ceiling, progress, n int) (sent, excluded int) {
	sent = min(max(ceiling-progress, 0), n)
	return sent, n - sent
}

// RecordProgress обновляет счетчики печати. Нулевой счетчик в этом вызове не трогается,
// потолок перезаписывается всегда.
func (g *Gate) RecordProgress(ctx context.Context, week time.Time, sent, excluded, ceiling int) error {
	progress := entities.PrintProgress{
		DeliveryWeek:        week,
		WeeklyPrintCapacity: ceiling,
		DailyPrintCapacity:  g.daily(ceiling),
		TTL:                 week.Add(g.counterTTL),
	}
	if sent > 0 {
		progress.Sent = pointer.To(sent)
	}
	if excluded > 0 {
		progress.Excluded = pointer.To(excluded)
	}

	if err := g.repository.UpdatePrintCounter(ctx, progress); err != nil {
		return fmt.Errorf("update print counter: %w", err)
	}
	return nil
}

// Admit считает прогресс недели, делит n отправлений по потолку и записывает результат.
func (g *Gate) Admit(ctx context.Context, week time.Time, n, ceiling int) (sent, excluded int, err error) {
	if n == 0 {
		return 0, 0, nil
	}

	progress, err := g.Progress(ctx, week)
	if err != nil {
		return 0, 0, err
	}

	sent, excluded = Split(ceiling, progress, n)
	if err := g.RecordProgress(ctx, week, sent, excluded, ceiling); err != nil {
		return 0, 0, err
	}
	return sent, excluded, nil
}

func (g *Gate) daily(ceiling int) int {
	if g.workingDays <= 0 {
		return ceiling
	}
	return ceiling / g.workingDays
}
