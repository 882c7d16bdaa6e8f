package numeric

import (
	"strconv"

	"github.com/katalvlaran/whence/scan"
)

// fixedDigits recognizes exactly width characters and converts them as an
// unsigned decimal integer. Conversion failures carry the strconv cause.
func fixedDigits(width int) scan.Parser[int] {
	take := scan.Take(width)

	return func(c scan.Cursor) (scan.Cursor, int, error) {
		next, s, err := take(c)
		if err != nil {
			return c, 0, err
		}
		v, convErr := strconv.ParseUint(s, 10, 32)
		if convErr != nil {
			return c, 0, scan.FailConv(c, convErr)
		}

		return next, int(v), nil
	}
}

// twoThenOne prefers a two-digit field and falls back to one digit, the
// greedy width rule shared by Day and Month.
var twoThenOne = scan.Alt(fixedDigits(2), fixedDigits(1))

// Day recognizes a day-of-month field: one or two digits, two preferred,
// value 1..31. Values outside the range fail hard with ErrDayOutOfRange.
// No month-awareness here — "31" is accepted even when the month turns out
// to have 30 days; existence is settled later during composite assembly.
func Day(c scan.Cursor) (scan.Cursor, int, error) {
	next, d, err := twoThenOne(c)
	if err != nil {
		return c, 0, err
	}
	if d == 0 || d > 31 {
		return c, 0, scan.Fail(scan.KindDayOutOfRange, c)
	}

	return next, d, nil
}

// Month recognizes a month field: one or two digits, two preferred, value
// 1..12. Values outside the range fail hard with ErrMonthOutOfRange.
func Month(c scan.Cursor) (scan.Cursor, int, error) {
	next, m, err := twoThenOne(c)
	if err != nil {
		return c, 0, err
	}
	if m == 0 || m > 12 {
		return c, 0, scan.Fail(scan.KindMonthOutOfRange, c)
	}

	return next, m, nil
}

// year4 is the 4-digit year recognizer behind Year4.
var year4 = fixedDigits(4)

// Year4 recognizes exactly four digits as a year, verbatim and unrestricted:
// "0042" is year 42. Fails with ErrNoMatch when fewer than four characters
// remain and with ErrParseInt when they are not digits.
func Year4(c scan.Cursor) (scan.Cursor, int, error) {
	return year4(c)
}

// sep is the shared separator alternation. Space1 is last, so an exhausted
// separator reports its generic no-match.
var sep = scan.Alt(scan.Tag("/"), scan.Tag("-"), scan.Tag("."), scan.Space1())

// Sep recognizes one separator between numeric date fields: "/", "-", "."
// or a run of spaces and tabs. All four are interchangeable in every
// composite, which is why "13/07/2024", "13.07.2024", "13-07-2024" and
// "13    07\t2024" parse identically.
func Sep(c scan.Cursor) (scan.Cursor, string, error) {
	return sep(c)
}
