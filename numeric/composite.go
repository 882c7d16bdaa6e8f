package numeric

import (
	"time"

	"github.com/katalvlaran/whence/caldate"
	"github.com/katalvlaran/whence/scan"
)

// DayMonthPair recognizes "day sep month" and yields the raw field pair
// without assembling a date. Useful when the caller supplies its own year.
func DayMonthPair() scan.Parser[scan.Pair[int, int]] {
	return scan.SeparatedPair[int, string, int](Day, Sep, Month)
}

// MonthDayPair recognizes "month sep day" and yields the raw field pair.
func MonthDayPair() scan.Parser[scan.Pair[int, int]] {
	return scan.SeparatedPair[int, string, int](Month, Sep, Day)
}

// DayOnly recognizes a lone day field and assembles it with the current
// month and year read from clock (wall clock when nil). Succeeds with an
// absent Maybe when that day does not exist in the current month.
func DayOnly(clock caldate.Clock) scan.Parser[caldate.Maybe] {
	return func(c scan.Cursor) (scan.Cursor, caldate.Maybe, error) {
		next, d, err := Day(c)
		if err != nil {
			return c, caldate.None(), err
		}
		today := caldate.Today(clock)
		dt, ok := caldate.Make(today.Year, today.Month, d)

		return next, caldate.Maybe{Date: dt, Exists: ok}, nil
	}
}

// DayMonth recognizes "day sep month" and assembles the date with the
// current year read from clock.
func DayMonth(clock caldate.Clock) scan.Parser[caldate.Maybe] {
	pair := DayMonthPair()

	return func(c scan.Cursor) (scan.Cursor, caldate.Maybe, error) {
		next, dm, err := pair(c)
		if err != nil {
			return c, caldate.None(), err
		}
		dt, ok := caldate.Make(caldate.Today(clock).Year, time.Month(dm.Second), dm.First)

		return next, caldate.Maybe{Date: dt, Exists: ok}, nil
	}
}

// MonthDay is DayMonth with the field order swapped: "month sep day" with
// the current year implied.
func MonthDay(clock caldate.Clock) scan.Parser[caldate.Maybe] {
	pair := MonthDayPair()

	return func(c scan.Cursor) (scan.Cursor, caldate.Maybe, error) {
		next, md, err := pair(c)
		if err != nil {
			return c, caldate.None(), err
		}
		dt, ok := caldate.Make(caldate.Today(clock).Year, time.Month(md.First), md.Second)

		return next, caldate.Maybe{Date: dt, Exists: ok}, nil
	}
}

// three runs the full three-field sequence with separators between, handing
// the fields to assemble in input order.
func three(first, second, third scan.Parser[int], assemble func(a, b, c int) caldate.Maybe) scan.Parser[caldate.Maybe] {
	return func(c scan.Cursor) (scan.Cursor, caldate.Maybe, error) {
		next, a, err := first(c)
		if err != nil {
			return c, caldate.None(), err
		}
		next, _, err = Sep(next)
		if err != nil {
			return c, caldate.None(), err
		}
		next, b, err := second(next)
		if err != nil {
			return c, caldate.None(), err
		}
		next, _, err = Sep(next)
		if err != nil {
			return c, caldate.None(), err
		}
		next, v, err := third(next)
		if err != nil {
			return c, caldate.None(), err
		}

		return next, assemble(a, b, v), nil
	}
}

// makeMaybe funnels every three-field composite through the one calendar
// constructor, always as (year, month, day) regardless of input order.
func makeMaybe(y, m, d int) caldate.Maybe {
	dt, ok := caldate.Make(y, time.Month(m), d)

	return caldate.Maybe{Date: dt, Exists: ok}
}

// YMD recognizes "year sep month sep day" (e.g. "2024-07-13"). Field-range
// violations fail hard; a non-existent date succeeds absent.
func YMD() scan.Parser[caldate.Maybe] {
	return three(Year4, Month, Day, func(y, m, d int) caldate.Maybe {
		return makeMaybe(y, m, d)
	})
}

// DMY recognizes "day sep month sep year" (e.g. "13/07/2024").
func DMY() scan.Parser[caldate.Maybe] {
	return three(Day, Month, Year4, func(d, m, y int) caldate.Maybe {
		return makeMaybe(y, m, d)
	})
}

// MDY recognizes "month sep day sep year" (e.g. "07-13-2024").
func MDY() scan.Parser[caldate.Maybe] {
	return three(Month, Day, Year4, func(m, d, y int) caldate.Maybe {
		return makeMaybe(y, m, d)
	})
}
