package entities

import (
	"strings"
	"time"
)

const (
	keySeparator    = "~"
	tenderSeparator = "##"

	// DateLayout формат недели доставки и дат в ключах.
	DateLayout = "2006-01-02"
	// timestampLayout фиксированной ширины, чтобы лексикографический порядок совпадал с хронологическим.
	timestampLayout = "2006-01-02T15:04:05.000000000Z"
)

// JoinKey склеивает части составного ключа через "~".
func JoinKey(parts ...string) string {
	return strings.Join(parts, keySeparator)
}

// SplitKey обратная операция к JoinKey.
func SplitKey(key string) []string {
	return strings.Split(key, keySeparator)
}

// TenderKey ключ справочника заявленных мощностей: tenderId##driverId##geoKey.
func TenderKey(tenderID, driverID, geoKey string) string {
	return strings.Join([]string{tenderID, driverID, geoKey}, tenderSeparator)
}

// DriverGeoKey ключ счетчиков использованной мощности: driverId~geoKey.
func DriverGeoKey(driverID, geoKey string) string {
	return JoinKey(driverID, geoKey)
}

// HighPriorityKey ключ очереди high priority: driverId##geoKey.
func HighPriorityKey(driverID, geoKey string) string {
	return strings.Join([]string{driverID, geoKey}, tenderSeparator)
}

func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

func ParseDate(raw string) (time.Time, error) {
	return time.Parse(DateLayout, raw)
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}
