// Package scan is the combinator core of whence: an immutable input cursor,
// a tagged recognition failure, and the small set of generic combinators
// every date recognizer is assembled from.
//
// 🚀 What is scan?
//
//	A deliberately minimal parser toolkit in the "slice in, value plus
//	remainder out" style:
//	  • Cursor — read-only view over the input, advanced by byte offset
//	  • Parser[T] — func(Cursor) (Cursor, T, error)
//	  • Alt — ordered alternation: first success wins, LAST failure reported
//	  • Tag / TagNoCase / Take / Digits1 / Space0 / Space1 — leaf recognizers
//	  • Value / Map / Terminated / SeparatedPair — glue
//
// ✨ Design rules:
//
//   - A Parser never mutates its Cursor; on failure the caller still holds
//     the original position and may try the next alternative
//   - Failures are *Fault values with a closed Kind set, matchable with
//     errors.Is against the Err... sentinels
//   - Alt evaluates its list strictly in order and short-circuits; ordering
//     is semantics, not style — callers rely on it
//
// ⚙️ Usage:
//
//	sep := scan.Alt(scan.Tag("/"), scan.Tag("-"), scan.Tag("."), scan.Space1())
//	rest, _, err := sep(scan.New("-07"))
//	// rest.Rest() == "07"
//
// See numeric and i18n for the recognizers built on top.
package scan
