// Package quick recognizes day-offset shorthand: "+ N" for N days from
// today and "- N" for N days ago. The space after the sign is optional.
//
// These patterns share a digit prefix with numeric.DayOnly, so when both
// live in one alternation the quick recognizers must come first — "+10"
// starts with a sign only quick understands, while "10" falls through to
// day-only. See the root whence package and cmd/whence for that wiring.
package quick
