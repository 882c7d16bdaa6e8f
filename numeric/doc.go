// Package numeric recognizes purely numeric calendar dates: single fields
// (day, month, 4-digit year), the separator between them, and the composite
// field orders built from both.
//
// 🚀 What is numeric?
//
//	The date-field engine of whence:
//	  • Day / Month — one or two digits, two preferred, range-checked at
//	    recognition time (1..31 and 1..12)
//	  • Year4 — exactly four digits, taken verbatim (leading zeros kept)
//	  • Sep — "/", "-", "." or a run of spaces/tabs, fully interchangeable
//	  • Composites — DayOnly, DayMonth, MonthDay, YMD, DMY, MDY
//
// ✨ The range/existence asymmetry (load-bearing):
//
//   - A day or month outside its range is a HARD failure: the composite
//     stops immediately with ErrDayOutOfRange / ErrMonthOutOfRange
//   - A syntactically valid date that does not exist on the calendar
//     (February 30, day 31 of a 30-day month) is NOT an error: the
//     composite succeeds with an absent caldate.Maybe
//
//     So "32-02-2024" fails while "31-02-2024" succeeds absent. Callers
//     must check Maybe.Exists even on success.
//
// ⚙️ Usage:
//
//	p := numeric.DMY()
//	rest, got, err := p(scan.New("13/07/2024"))
//	// got.Exists == true, got.Date == 2024-07-13, rest empty
//
//	dayOnly := numeric.DayOnly(nil) // nil clock = wall clock
//	_, got, _ = dayOnly(scan.New("09"))
//	// day 9 of the current month and year, if it exists
//
// Composites that imply the current year or month take a caldate.Clock so
// tests can freeze "today". See example_test.go.
package numeric
