package config

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"delayer/internal/entities"
)

// envReader запоминает первую ошибку разбора, чтобы не проверять err после каждой переменной.
type envReader struct {
	err error
}

func (r *envReader) intVal(key string, def int) int {
	v, err := osGetInt(key, def)
	r.keep(err)
	return v
}

func (r *envReader) durationVal(key string, def time.Duration) time.Duration {
	v, err := osGetEnvDuration(key, def)
	r.keep(err)
	return v
}

func (r *envReader) boolVal(key string, def bool) bool {
	v, err := osGetBool(key, def)
	r.keep(err)
	return v
}

func (r *envReader) weekdayVal(key string, def time.Weekday) time.Weekday {
	v, err := osGetWeekday(key, def)
	r.keep(err)
	return v
}

func (r *envReader) printCapacities(key string) []entities.PrintCapacity {
	v, err := ParsePrintCapacities(os.Getenv(key))
	if err != nil {
		r.keep(fmt.Errorf("invalid print capacity format for %s: %w", key, err))
	}
	return v
}

func (r *envReader) keep(err error) {
	if r.err == nil && err != nil {
		r.err = err
	}
}

// ParsePrintCapacities разбирает список "YYYY-MM-DD;capacity" через запятую.
// Результат отсортирован по дате начала по убыванию.
func ParsePrintCapacities(raw string) ([]entities.PrintCapacity, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var res []entities.PrintCapacity
	for _, item := range strings.Split(raw, ",") {
		parts := strings.Split(strings.TrimSpace(item), ";")
		if len(parts) != 2 {
			return nil, fmt.Errorf("item %q: expected date;capacity", item)
		}
		start, err := entities.ParseDate(parts[0])
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", item, err)
		}
		capacity, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", item, err)
		}
		res = append(res, entities.PrintCapacity{StartDate: start, DailyCapacity: capacity})
	}

	sort.Slice(res, func(i, j int) bool {
		return res[i].StartDate.After(res[j].StartDate)
	})
	return res, nil
}

func osGetString(s, def string) string {
	if val := os.Getenv(s); val != "" {
		return val
	}
	return def
}

func osGetInt(s string, def int) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return def, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string, def time.Duration) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return def, nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string, def bool) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return def, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetWeekday(s string, def time.Weekday) (time.Weekday, error) {
	val := os.Getenv(s)
	if val == "" {
		return def, nil
	}

	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(d.String(), val) {
			return d, nil
		}
	}
	return def, fmt.Errorf("invalid weekday format for %s=%q", s, val)
}
