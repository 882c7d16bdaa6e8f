package whence

import (
	"errors"

	"golang.org/x/text/language"

	"github.com/katalvlaran/whence/caldate"
	"github.com/katalvlaran/whence/i18n"
	"github.com/katalvlaran/whence/i18n/en"
	"github.com/katalvlaran/whence/i18n/ru"
	"github.com/katalvlaran/whence/quick"
	"github.com/katalvlaran/whence/scan"
)

// FieldOrder selects the numeric convention of a bundle: day before month
// or month before day. The year position never varies (always the 4-digit
// field).
type FieldOrder int

const (
	// DayFirst reads "03/12" as the 3rd of December.
	DayFirst FieldOrder = iota

	// MonthFirst reads "03/12" as the 12th of March.
	MonthFirst
)

var (
	// ErrUnsupportedLocale reports a language tag with no registered bundle.
	ErrUnsupportedLocale = errors.New("whence: unsupported locale")

	// ErrUnsupportedOrder reports a field order the locale has no convention
	// for (Russian numeric dates are written day-first only).
	ErrUnsupportedOrder = errors.New("whence: unsupported field order for locale")
)

// matcher resolves caller tags against the supported locales, so regional
// variants ("en-GB", "ru-UA") land on their base language.
var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Russian,
})

// Bundle returns the ordered-alternation entry point for the given locale
// and field-order convention. The clock feeds every current-date-dependent
// alternative (wall clock when nil).
//
// English supports both orders; Russian only DayFirst. Tags are matched
// loosely ("en-GB" resolves to English), but a tag with no plausible match
// reports ErrUnsupportedLocale.
func Bundle(tag language.Tag, order FieldOrder, clock caldate.Clock) (scan.Parser[caldate.Maybe], error) {
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return nil, ErrUnsupportedLocale
	}
	switch idx {
	case 0:
		if order == MonthFirst {
			return en.BundleMDY(clock), nil
		}

		return en.BundleDMY(clock), nil
	case 1:
		if order == MonthFirst {
			return nil, ErrUnsupportedOrder
		}

		return ru.Bundle(clock), nil
	default:
		return nil, ErrUnsupportedLocale
	}
}

// Versatile combines the day-offset shorthand with a locale bundle, in
// that order: "+10" must reach quick before a day-only recognizer can eat
// its digits, while a bare "10" falls through to the bundle. This is the
// parser cmd/whence runs per input line.
func Versatile(tag language.Tag, order FieldOrder, clock caldate.Clock) (scan.Parser[caldate.Maybe], error) {
	bundle, err := Bundle(tag, order, clock)
	if err != nil {
		return nil, err
	}

	return scan.Alt(i18n.Always(quick.Bundle(clock)), bundle), nil
}
