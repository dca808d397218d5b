package calendar

import (
	"time"

	"github.com/goto/chrono/internal/lib/interval"
)

// Unit is a calendar granularity for enumeration over an interval.
type Unit string

const (
	UnitDay   Unit = "day"
	UnitMonth Unit = "month"
	UnitYear  Unit = "year"
)

// Days enumerates the day spans touched by iv, in order. A boundary day
// is included exactly when its span concurs with iv, so a day merely met
// by the interval's end is excluded.
func Days(iv interval.Interval) ([]interval.Interval, error) {
	return enumerate(iv, truncateDay, nextDay)
}

// Months enumerates the month spans touched by iv.
func Months(iv interval.Interval) ([]interval.Interval, error) {
	return enumerate(iv, truncateMonth, nextMonth)
}

// Years enumerates the year spans touched by iv.
func Years(iv interval.Interval) ([]interval.Interval, error) {
	return enumerate(iv, truncateYear, nextYear)
}

// Enumerate picks the enumeration for the given unit.
func Enumerate(unit Unit, iv interval.Interval) ([]interval.Interval, error) {
	switch unit {
	case UnitMonth:
		return Months(iv)
	case UnitYear:
		return Years(iv)
	default:
		return Days(iv)
	}
}

func enumerate(iv interval.Interval, truncate func(time.Time) time.Time, next func(time.Time) time.Time) ([]interval.Interval, error) {
	loc := iv.Start().Locality()
	start := truncate(iv.Start().Time())

	var units []interval.Interval
	for cursor := start; ; cursor = next(cursor) {
		unit, err := interval.New(
			interval.NewInstant(cursor, loc),
			interval.NewInstant(next(cursor), loc),
		)
		if err != nil {
			return nil, err
		}
		_, ok, err := interval.Concur(unit, iv)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		units = append(units, unit)
	}
	return units, nil
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func nextDay(t time.Time) time.Time {
	return t.AddDate(0, 0, 1)
}

func truncateMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func nextMonth(t time.Time) time.Time {
	return t.AddDate(0, 1, 0)
}

func truncateYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

func nextYear(t time.Time) time.Time {
	return t.AddDate(1, 0, 0)
}
