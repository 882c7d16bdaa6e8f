package quick

import (
	"strconv"

	"github.com/katalvlaran/whence/caldate"
	"github.com/katalvlaran/whence/scan"
)

// offset recognizes sign, optional spaces, digits, and shifts today by the
// digit count in the sign's direction.
func offset(clock caldate.Clock, sign string, dir int) scan.Parser[caldate.Date] {
	tag := scan.Tag(sign)
	space := scan.Space0()
	digits := scan.Digits1()

	return func(c scan.Cursor) (scan.Cursor, caldate.Date, error) {
		next, _, err := tag(c)
		if err != nil {
			return c, caldate.Date{}, err
		}
		next, _, _ = space(next)
		next, ds, err := digits(next)
		if err != nil {
			return c, caldate.Date{}, err
		}
		n, convErr := strconv.Atoi(ds)
		if convErr != nil {
			return c, caldate.Date{}, scan.FailConv(c, convErr)
		}

		return next, caldate.Today(clock).AddDays(dir * n), nil
	}
}

// ForwardFromNow recognizes "+ N" (space optional) and returns today plus
// N days, today read from clock (wall clock when nil).
func ForwardFromNow(clock caldate.Clock) scan.Parser[caldate.Date] {
	return offset(clock, "+", 1)
}

// BackwardFromNow recognizes "- N" (space optional) and returns today
// minus N days.
func BackwardFromNow(clock caldate.Clock) scan.Parser[caldate.Date] {
	return offset(clock, "-", -1)
}

// Bundle tries ForwardFromNow then BackwardFromNow.
func Bundle(clock caldate.Clock) scan.Parser[caldate.Date] {
	return scan.Alt(ForwardFromNow(clock), BackwardFromNow(clock))
}
