package entities

import "time"

// Cursor непрозрачная позиция пагинации. Пустой курсор означает начало.
type Cursor string

// Trigger внешний запуск обработки одной партиции.
type Trigger struct {
	Stage        Stage
	PartitionKey string
	Cursor       Cursor
	BatchStart   time.Time
	DeliveryWeek time.Time
	TraceID      string
}

// Page страница бэклога и курсор следующей страницы, пустой если страниц больше нет.
type Page[T any] struct {
	Items      []T
	NextCursor Cursor
}

func (p Page[T]) HasNext() bool {
	return p.NextCursor != ""
}

// Job разобранный триггер: этап, скоуп и неделя, с которых начинается обход.
type Job struct {
	Stage   Stage
	Scope   Scope
	Week    time.Time
	Cursor  Cursor
	TraceID string
}

// RunReport итог обхода одной партиции.
type RunReport struct {
	Pages    int
	Advanced int
	Deferred int
	Residual int
	Excluded int
}

func (r *RunReport) Add(other RunReport) {
	r.Pages += other.Pages
	r.Advanced += other.Advanced
	r.Deferred += other.Deferred
	r.Residual += other.Residual
	r.Excluded += other.Excluded
}
