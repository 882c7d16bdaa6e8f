package en

import (
	_ "embed"

	"github.com/katalvlaran/whence/caldate"
	"github.com/katalvlaran/whence/i18n"
	"github.com/katalvlaran/whence/scan"
)

//go:embed vocab.yaml
var vocabYAML []byte

// vocab is the English word table, loaded once and never mutated.
var vocab = i18n.MustVocab(vocabYAML)

// Yesterday recognizes the case-insensitive word "yesterday" and returns
// yesterday's date read from clock (wall clock when nil). Always succeeds
// on a match; no existence check applies to day arithmetic.
func Yesterday(clock caldate.Clock) scan.Parser[caldate.Date] {
	return i18n.RelativeDay(clock, vocab.WordsAt(-1), -1)
}

// Today recognizes the case-insensitive word "today" and returns the
// current date read from clock.
func Today(clock caldate.Clock) scan.Parser[caldate.Date] {
	return i18n.RelativeDay(clock, vocab.WordsAt(0), 0)
}

// Tomorrow recognizes the case-insensitive word "tomorrow" and returns
// tomorrow's date read from clock.
func Tomorrow(clock caldate.Clock) scan.Parser[caldate.Date] {
	return i18n.RelativeDay(clock, vocab.WordsAt(1), 1)
}
