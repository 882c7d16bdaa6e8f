package caldate

import "time"

// Clock supplies the current local time to recognizers that imply "today"
// (day-only dates, relative words, weekday-in-week math). It is a read-only
// dependency: recognizers call it at most once per invocation and never
// cache the result across calls.
//
// A nil Clock means WallClock everywhere in whence.
type Clock func() time.Time

// WallClock reads the real local time.
var WallClock Clock = time.Now

// Fixed returns a Clock frozen at t. Intended for tests and reproducible
// example programs.
func Fixed(t time.Time) Clock {
	return func() time.Time { return t }
}

// Today resolves the current date through clock (WallClock when nil).
func Today(clock Clock) Date {
	if clock == nil {
		clock = WallClock
	}

	return FromTime(clock())
}
