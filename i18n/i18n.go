package i18n

import (
	"time"

	"github.com/katalvlaran/whence/caldate"
	"github.com/katalvlaran/whence/scan"
)

// mondayOrdinal converts the standard library's Sunday-based weekday to the
// Monday-based ordinal the week math runs on (Mon=0 … Sun=6).
func mondayOrdinal(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

// DateForWeekday returns the date of the given weekday within the current
// Monday-based week of clock's today. The shift is (target − today) days,
// so the result can lie earlier or later in the week but never wraps into
// an adjacent week: on Tuesday 2024-07-16, Monday is 2024-07-15 and
// Saturday is 2024-07-20.
func DateForWeekday(clock caldate.Clock, wd time.Weekday) caldate.Date {
	today := caldate.Today(clock)

	return today.AddDays(mondayOrdinal(wd) - mondayOrdinal(today.Weekday()))
}

// RelativeDay builds a recognizer for the given case-insensitive words, all
// resolving to today shifted by offset days. Matching a word always
// succeeds — there is no existence check on a date reached by day
// arithmetic.
func RelativeDay(clock caldate.Clock, words []string, offset int) scan.Parser[caldate.Date] {
	alts := make([]scan.Parser[caldate.Date], 0, len(words))
	for _, w := range words {
		word := w
		alts = append(alts, func(c scan.Cursor) (scan.Cursor, caldate.Date, error) {
			next, _, err := scan.TagNoCase(word)(c)
			if err != nil {
				return c, caldate.Date{}, err
			}

			return next, caldate.Today(clock).AddDays(offset), nil
		})
	}

	return scan.Alt(alts...)
}

// WeekdayNames builds a weekday recognizer from one vocabulary table,
// trying the entries case-insensitively in table order.
func WeekdayNames(entries []DayEntry) scan.Parser[time.Weekday] {
	alts := make([]scan.Parser[time.Weekday], 0, len(entries))
	for _, e := range entries {
		alts = append(alts, scan.Value(e.Weekday(), scan.TagNoCase(e.Word)))
	}

	return scan.Alt(alts...)
}

// Always lifts an always-existing date recognizer (relative words, named
// weekdays) into the Maybe result shape the numeric composites use, so a
// bundle can alternate across both families.
func Always(p scan.Parser[caldate.Date]) scan.Parser[caldate.Maybe] {
	return scan.Map(p, caldate.Some)
}
