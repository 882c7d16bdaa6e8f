package ru

import (
	_ "embed"

	"github.com/katalvlaran/whence/caldate"
	"github.com/katalvlaran/whence/i18n"
	"github.com/katalvlaran/whence/scan"
)

//go:embed vocab.yaml
var vocabYAML []byte

// vocab is the Russian word table, loaded once and never mutated.
var vocab = i18n.MustVocab(vocabYAML)

// DayBeforeYesterday recognizes "позавчера" (case-insensitive) and returns
// the date two days before clock's today.
func DayBeforeYesterday(clock caldate.Clock) scan.Parser[caldate.Date] {
	return i18n.RelativeDay(clock, vocab.WordsAt(-2), -2)
}

// Yesterday recognizes "вчера" and returns the date one day before today.
func Yesterday(clock caldate.Clock) scan.Parser[caldate.Date] {
	return i18n.RelativeDay(clock, vocab.WordsAt(-1), -1)
}

// Today recognizes "сегодня" and returns the current date.
func Today(clock caldate.Clock) scan.Parser[caldate.Date] {
	return i18n.RelativeDay(clock, vocab.WordsAt(0), 0)
}

// Tomorrow recognizes "завтра" and returns the date one day after today.
//
// Alternation note: "завтра" is NOT a prefix of "послезавтра" (they differ
// at the first rune), so Tomorrow and DayAfterTomorrow never shadow each
// other regardless of order.
func Tomorrow(clock caldate.Clock) scan.Parser[caldate.Date] {
	return i18n.RelativeDay(clock, vocab.WordsAt(1), 1)
}

// DayAfterTomorrow recognizes "послезавтра" and returns the date two days
// after today.
func DayAfterTomorrow(clock caldate.Clock) scan.Parser[caldate.Date] {
	return i18n.RelativeDay(clock, vocab.WordsAt(2), 2)
}
