package model

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date with no time or timezone component.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return DateOf(t), nil
}

func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func Today() Date {
	return DateOf(time.Now())
}

// Now captures the current calendar date and wall clock as an Instant.
func Now() Instant {
	t := time.Now()
	return Instant{
		Date:  DateOf(t),
		Clock: ClockTime{Hour: t.Hour(), Minute: t.Minute()},
	}
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) String() string {
	return d.toTime().Format(dateLayout)
}

// Display renders the date the way the task list header shows it,
// e.g. "Wednesday, January 10, 2024".
func (d Date) Display() string {
	return d.toTime().Format("Monday, January 2, 2006")
}

// AddDays returns the date n days away, rolling over month and year
// boundaries.
func (d Date) AddDays(n int) Date {
	return DateOf(d.toTime().AddDate(0, 0, n))
}

func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

func (d Date) toTime() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}
