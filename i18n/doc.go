// Package i18n holds what every locale shares: the weekday-in-current-week
// date math, the embedded-YAML vocabulary schema locale packages load their
// word tables from, and the helpers that turn those tables into recognizers.
//
// 🚀 What is i18n?
//
//	The common floor under i18n/en and i18n/ru:
//	  • DateForWeekday — the date of a weekday within the CURRENT
//	    Monday-based week (never wraps into the next or previous week)
//	  • Vocab — relative words (word → day offset) and short/full weekday
//	    names, parsed once from an embedded YAML file and never mutated
//	  • RelativeDay / WeekdayNames / Always — table-to-recognizer glue
//
// ✨ Week math, precisely:
//
//	Weekday ordinals are Monday-based (Mon=0 … Sun=6). If today's ordinal
//	is w and the requested one is t, the result is today shifted by (t−w)
//	days — negative earlier in the week, positive later, locale-independent.
//	If today is Thursday, "Monday" is three days AGO, not four days ahead.
//
// Locale selection lives in the root whence package; this package stays
// import-cycle-free below the locale packages.
package i18n
