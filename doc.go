// Package whence recognizes calendar dates in short text fragments —
// "13/07/2024", "завтра", "+ 10", "Wednesday" — and turns them into
// validated calendar dates, in the style of a composable parser toolkit:
// slice in, parsed value plus unconsumed remainder out.
//
// 🚀 What is whence?
//
//	A small, pure, locale-aware date-recognition library:
//		• Field recognizers: day (1..31), month (1..12), 4-digit year
//		• Flexible separators: "/", "-", "." or runs of spaces and tabs
//		• Composites: dd-mm-yyyy, mm-dd-yyyy, yyyy-mm-dd, dd-mm, mm-dd, dd
//		• Word recognizers: yesterday/tomorrow, weekday names (en, ru)
//		• Day-offset shorthand: "+ 10", "- 3"
//		• Per-locale bundles: one ordered try-everything entry point each
//
// ✨ Why choose whence?
//
//   - Deterministic – ordered alternation, first success wins, no backtracking
//     beyond the fixed lists
//   - Honest about existence – "31-02-2024" parses but reports an absent
//     date; only out-of-range fields are errors
//   - Testable – "today" is an injected clock, never a hidden global
//   - Pure Go – no cgo, no state between calls, safe for concurrent use
//
// Under the hood, everything is organized under these subpackages:
//
//	caldate/ — validated Date, absent-date Maybe, injectable Clock
//	scan/    — input cursor, tagged failures, ordered-alternation combinators
//	numeric/ — day/month/year field recognizers & composite numeric parsers
//	i18n/    — weekday-in-week math, vocabulary tables, locale registry glue
//	i18n/en/, i18n/ru/ — per-locale word recognizers and bundles
//	quick/   — "+ N" / "- N" day-offset recognizers
//
// Quick example:
//
//	p, _ := whence.Bundle(language.English, whence.DayFirst, nil)
//	_, got, err := p(scan.New("13/07/2024"))
//	// got.Exists == true, got.Date.String() == "2024-07-13"
//
// Dive into README-style doc.go files of each subpackage for the full
// contracts, and cmd/whence for an interactive recognizer.
package whence
