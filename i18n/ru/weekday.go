package ru

import (
	"time"

	"github.com/katalvlaran/whence/caldate"
	"github.com/katalvlaran/whence/i18n"
	"github.com/katalvlaran/whence/scan"
)

// ShortNamedWeekday recognizes a case-insensitive short Russian weekday
// name: пн, вт, ср, чт, пт, сб, вс.
func ShortNamedWeekday() scan.Parser[time.Weekday] {
	return i18n.WeekdayNames(vocab.Short)
}

// ShortNamedWeekdayDot recognizes a short weekday name followed by a dot,
// e.g. "пт.".
func ShortNamedWeekdayDot() scan.Parser[time.Weekday] {
	return scan.Terminated(ShortNamedWeekday(), scan.Tag("."))
}

// FullNamedWeekday recognizes a case-insensitive full Russian weekday name,
// понедельник through воскресенье.
func FullNamedWeekday() scan.Parser[time.Weekday] {
	return i18n.WeekdayNames(vocab.Full)
}

// NamedWeekday recognizes any accepted weekday spelling: full names first,
// then dotted short names, then bare short names. "вт" is a prefix of
// "вторник", so the full table must be tried before the short one.
func NamedWeekday() scan.Parser[time.Weekday] {
	return scan.Alt(FullNamedWeekday(), ShortNamedWeekdayDot(), ShortNamedWeekday())
}

// CurrentNamedWeekday recognizes a weekday name and resolves it to that
// weekday's date in the current Monday-based week of clock's today.
func CurrentNamedWeekday(clock caldate.Clock) scan.Parser[caldate.Date] {
	return scan.Map(NamedWeekday(), func(wd time.Weekday) caldate.Date {
		return i18n.DateForWeekday(clock, wd)
	})
}
