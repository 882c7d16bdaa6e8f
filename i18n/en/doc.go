// Package en recognizes English date words — "yesterday", "tomorrow",
// weekday names short and full — and composes them with the numeric
// recognizers into the English bundles.
//
// Entry points:
//
//	BundleDMY — day-first convention (13/07/2024, 13/07, 13, yesterday, Wed)
//	BundleMDY — month-first convention (07/13/2024, 07/13, 13, ...)
//
// Both try numeric patterns most-specific-first, then the word
// recognizers. On total failure they surface the LAST alternative's error,
// so call the individual recognizers directly when you need to tell a
// day-out-of-range from a plain mismatch.
//
// The vocabulary lives in vocab.yaml, embedded at build time and loaded
// once at init.
package en
