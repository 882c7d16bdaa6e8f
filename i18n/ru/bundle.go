package ru

import (
	"github.com/katalvlaran/whence/caldate"
	"github.com/katalvlaran/whence/i18n"
	"github.com/katalvlaran/whence/numeric"
	"github.com/katalvlaran/whence/scan"
)

// Bundle recognizes Russian dates (day-first), trying in this exact order:
//
//	numeric.DMY, numeric.DayMonth, numeric.DayOnly,
//	DayBeforeYesterday, Yesterday, Tomorrow, DayAfterTomorrow,
//	CurrentNamedWeekday
//
// Numeric alternatives go most-specific-first. On total failure the LAST
// alternative's error is reported; call individual recognizers for
// field-level failure detail.
func Bundle(clock caldate.Clock) scan.Parser[caldate.Maybe] {
	return scan.Alt(
		numeric.DMY(),
		numeric.DayMonth(clock),
		numeric.DayOnly(clock),
		i18n.Always(DayBeforeYesterday(clock)),
		i18n.Always(Yesterday(clock)),
		i18n.Always(Tomorrow(clock)),
		i18n.Always(DayAfterTomorrow(clock)),
		i18n.Always(CurrentNamedWeekday(clock)),
	)
}
