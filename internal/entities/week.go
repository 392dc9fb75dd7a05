package entities

import "time"

const week = 7 * 24 * time.Hour

// DeliveryWeek дата (UTC, полночь) ближайшего дня недели anchor, не позже t.
func DeliveryWeek(t time.Time, anchor time.Weekday) time.Time {
	day := truncateDay(t)
	diff := (int(day.Weekday()) - int(anchor) + 7) % 7
	return day.AddDate(0, 0, -diff)
}

// NextWeek неделя, в которую переносятся не принятые отправления.
func NextWeek(deliveryWeek time.Time) time.Time {
	return deliveryWeek.Add(week)
}

// ShipmentDate неделя отправки, на которую заведены лимиты отправителей.
func ShipmentDate(deliveryWeek time.Time) time.Time {
	return deliveryWeek.Add(-week)
}

// WeekdayFrom первый день недели day начиная с t включительно, в полночь UTC.
func WeekdayFrom(t time.Time, day time.Weekday) time.Time {
	start := truncateDay(t)
	return start.AddDate(0, 0, (int(day)-int(start.Weekday())+7)%7)
}

func truncateDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
