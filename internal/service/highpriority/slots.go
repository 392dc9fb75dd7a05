package highpriority

import "time"

// slotPlan недельная мощность, разбитая на интервалы одинаковой длины.
type slotPlan struct {
	starts []time.Time
	room   []int
}

// newSlotPlan делит weekly на интервалы длины interval от start до end,
// по ceil(weekly / число интервалов) в каждом. Уже отправленные dispatched
// вычитаются из самых ранних интервалов.
func newSlotPlan(start, end time.Time, interval time.Duration, weekly, dispatched int) *slotPlan {
	n := 1
	if span := end.Sub(start); interval > 0 && span > interval {
		n = int((span + interval - 1) / interval)
	}
	perInterval := (max(weekly, 0) + n - 1) / n

	p := &slotPlan{
		starts: make([]time.Time, n),
		room:   make([]int, n),
	}
	for i := range n {
		p.starts[i] = start.Add(time.Duration(i) * interval)
		p.room[i] = perInterval
	}

	left := max(dispatched, 0)
	for i := 0; i < n && left > 0; i++ {
		taken := min(p.room[i], left)
		p.room[i] -= taken
		left -= taken
	}
	return p
}

// next занимает место в первом интервале, где оно есть. Если места нет нигде,
// возвращается самый поздний интервал.
func (p *slotPlan) next() time.Time {
	for i, room := range p.room {
		if room > 0 {
			p.room[i]--
			return p.starts[i]
		}
	}
	return p.starts[len(p.starts)-1]
}
