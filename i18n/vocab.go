package i18n

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// RelEntry maps one literal word to its offset in days from today.
type RelEntry struct {
	Word string `yaml:"word"`
	Days int    `yaml:"days"`
}

// DayEntry maps one literal word to an ISO weekday number (1=Monday …
// 7=Sunday). Entries keep their file order: when one word is a prefix of
// another, the earlier entry wins in alternation.
type DayEntry struct {
	Word string `yaml:"word"`
	ISO  int    `yaml:"iso"`
}

// Weekday converts the ISO number to the standard library's weekday.
func (e DayEntry) Weekday() time.Weekday {
	return time.Weekday(e.ISO % 7)
}

// Vocab is one locale's fixed word tables. Loaded once from an embedded
// YAML file at package init and treated as immutable afterwards; lookups
// are case-insensitive (the recognizers fold case, the tables stay
// lower-cased).
type Vocab struct {
	Relative []RelEntry `yaml:"relative"`
	Short    []DayEntry `yaml:"short"`
	Full     []DayEntry `yaml:"full"`
}

// ParseVocab decodes and validates a locale vocabulary. Words are
// normalized to lower case; ISO weekday numbers must be 1..7.
func ParseVocab(data []byte) (*Vocab, error) {
	var v Vocab
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("i18n: decode vocab: %w", err)
	}
	for i := range v.Relative {
		if v.Relative[i].Word == "" {
			return nil, fmt.Errorf("i18n: relative entry %d: empty word", i)
		}
		v.Relative[i].Word = strings.ToLower(v.Relative[i].Word)
	}
	for _, tbl := range [][]DayEntry{v.Short, v.Full} {
		for i := range tbl {
			if tbl[i].Word == "" {
				return nil, fmt.Errorf("i18n: weekday entry %d: empty word", i)
			}
			if tbl[i].ISO < 1 || tbl[i].ISO > 7 {
				return nil, fmt.Errorf("i18n: weekday entry %q: iso %d outside 1..7", tbl[i].Word, tbl[i].ISO)
			}
			tbl[i].Word = strings.ToLower(tbl[i].Word)
		}
	}

	return &v, nil
}

// MustVocab is ParseVocab for embedded files: a malformed table is a build
// defect, so it panics.
func MustVocab(data []byte) *Vocab {
	v, err := ParseVocab(data)
	if err != nil {
		panic(err)
	}

	return v
}

// WordsAt lists the relative words carrying the given day offset, in table
// order.
func (v *Vocab) WordsAt(days int) []string {
	var words []string
	for _, e := range v.Relative {
		if e.Days == days {
			words = append(words, e.Word)
		}
	}

	return words
}
