package caldate

import (
	"fmt"
	"time"
)

// Date is a civil calendar date: a (year, month, day) triple with no time of
// day and no zone. Every Date produced by this package refers to a real
// calendar day; invalid combinations are reported as absence, never as a
// normalized Date.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// Maybe is the outcome of a calendar-existence check: either a real Date
// (Exists=true) or absence (Exists=false). Composite recognizers succeed
// with an absent Maybe when the fields are in range but the day does not
// exist in that month, so callers must check Exists even on success.
type Maybe struct {
	Date   Date
	Exists bool
}

// Some wraps an already-validated Date as a present Maybe.
func Some(d Date) Maybe { return Maybe{Date: d, Exists: true} }

// None is the absent Maybe.
func None() Maybe { return Maybe{} }

// Make validates the (year, month, day) triple against month lengths and
// leap years. Returns the Date and true when the day exists, or a zero Date
// and false otherwise. Years are accepted verbatim, including year 0.
func Make(year int, month time.Month, day int) (Date, bool) {
	if month < time.January || month > time.December {
		return Date{}, false
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return Date{}, false
	}

	return Date{Year: year, Month: month, Day: day}, true
}

// FromTime truncates t to its calendar date in t's location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()

	return Date{Year: y, Month: m, Day: d}
}

// Time returns midnight of d in the local time zone. Useful for handing a
// Date back to the standard library.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
}

// AddDays returns the date n days after d (n may be negative). The result is
// always a real calendar date; month and year roll as needed.
func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

// Weekday reports the day of the week of d.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}

	return d.Day < other.Day
}

// String formats d as YYYY-MM-DD (ISO 8601 calendar date).
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// DaysInMonth reports the number of days in the given month of the given
// year, accounting for leap-year February.
func DaysInMonth(year int, month time.Month) int {
	switch month {
	case time.April, time.June, time.September, time.November:
		return 30
	case time.February:
		if IsLeap(year) {
			return 29
		}

		return 28
	default:
		return 31
	}
}

// IsLeap reports whether year is a leap year in the proleptic Gregorian
// calendar.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
