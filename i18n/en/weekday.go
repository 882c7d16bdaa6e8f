package en

import (
	"time"

	"github.com/katalvlaran/whence/caldate"
	"github.com/katalvlaran/whence/i18n"
	"github.com/katalvlaran/whence/scan"
)

// ShortNamedWeekday recognizes a case-insensitive short English weekday
// name: mon, tue, tues, wed, thu, thur, thurs, fri, sat, sun.
func ShortNamedWeekday() scan.Parser[time.Weekday] {
	return i18n.WeekdayNames(vocab.Short)
}

// ShortNamedWeekdayDot recognizes a short weekday name followed by a dot,
// e.g. "Wed.".
func ShortNamedWeekdayDot() scan.Parser[time.Weekday] {
	return scan.Terminated(ShortNamedWeekday(), scan.Tag("."))
}

// FullNamedWeekday recognizes a case-insensitive full English weekday name,
// "monday" through "sunday".
func FullNamedWeekday() scan.Parser[time.Weekday] {
	return i18n.WeekdayNames(vocab.Full)
}

// NamedWeekday recognizes any accepted weekday spelling, trying full names
// first, then dotted short names, then bare short names. The order matters:
// a bare short name is a prefix of both other forms.
func NamedWeekday() scan.Parser[time.Weekday] {
	return scan.Alt(FullNamedWeekday(), ShortNamedWeekdayDot(), ShortNamedWeekday())
}

// CurrentNamedWeekday recognizes a weekday name and resolves it to that
// weekday's date in the current Monday-based week of clock's today. The
// result may be earlier in the week than today; it never wraps forward.
func CurrentNamedWeekday(clock caldate.Clock) scan.Parser[caldate.Date] {
	return scan.Map(NamedWeekday(), func(wd time.Weekday) caldate.Date {
		return i18n.DateForWeekday(clock, wd)
	})
}
