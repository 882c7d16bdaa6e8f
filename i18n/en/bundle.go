package en

import (
	"github.com/katalvlaran/whence/caldate"
	"github.com/katalvlaran/whence/i18n"
	"github.com/katalvlaran/whence/numeric"
	"github.com/katalvlaran/whence/scan"
)

// BundleDMY recognizes English dates under the day-first convention, trying
// in this exact order:
//
//	numeric.DMY, numeric.DayMonth, numeric.DayOnly,
//	Yesterday, Tomorrow, CurrentNamedWeekday
//
// Numeric alternatives go most-specific-first so a short pattern cannot
// steal the prefix of a longer one ("13/07/2024" must not stop at "13").
// If everything fails, the reported error is whatever the last alternative
// produced — per-alternative detail is intentionally not preserved.
func BundleDMY(clock caldate.Clock) scan.Parser[caldate.Maybe] {
	return scan.Alt(
		numeric.DMY(),
		numeric.DayMonth(clock),
		numeric.DayOnly(clock),
		i18n.Always(Yesterday(clock)),
		i18n.Always(Tomorrow(clock)),
		i18n.Always(CurrentNamedWeekday(clock)),
	)
}

// BundleMDY is BundleDMY under the month-first convention:
//
//	numeric.MDY, numeric.MonthDay, numeric.DayOnly,
//	Yesterday, Tomorrow, CurrentNamedWeekday
func BundleMDY(clock caldate.Clock) scan.Parser[caldate.Maybe] {
	return scan.Alt(
		numeric.MDY(),
		numeric.MonthDay(clock),
		numeric.DayOnly(clock),
		i18n.Always(Yesterday(clock)),
		i18n.Always(Tomorrow(clock)),
		i18n.Always(CurrentNamedWeekday(clock)),
	)
}
