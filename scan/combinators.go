package scan

import (
	"strings"
	"unicode/utf8"
)

// Parser consumes input from a Cursor and produces a T plus the cursor past
// what it consumed. On failure it returns the zero T and a *Fault; the input
// cursor remains usable for retrying another alternative.
type Parser[T any] func(Cursor) (Cursor, T, error)

// Pair holds the two values recognized by SeparatedPair, in input order.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Alt tries each alternative strictly in the given order and returns the
// first success. If every alternative fails, the failure of the LAST one is
// returned; earlier failures are discarded, not merged or ranked. The order
// of alternatives is therefore part of the contract, not a presentation
// detail: a less specific recognizer listed too early can consume a prefix
// meant for a more specific one.
func Alt[T any](alts ...Parser[T]) Parser[T] {
	return func(c Cursor) (Cursor, T, error) {
		var zero T
		err := Fail(KindNoMatch, c)
		for _, p := range alts {
			next, v, altErr := p(c)
			if altErr == nil {
				return next, v, nil
			}
			err = altErr
		}

		return c, zero, err
	}
}

// Tag recognizes the exact literal at the cursor.
func Tag(lit string) Parser[string] {
	return func(c Cursor) (Cursor, string, error) {
		if !strings.HasPrefix(c.Rest(), lit) {
			return c, "", Fail(KindNoMatch, c)
		}

		return c.Advance(len(lit)), lit, nil
	}
}

// TagNoCase recognizes the literal at the cursor under Unicode simple case
// folding, so it matches Cyrillic words as well as ASCII ("Вчера" matches
// the tag "вчера"). Returns the matched input slice.
func TagNoCase(lit string) Parser[string] {
	return func(c Cursor) (Cursor, string, error) {
		rest := c.Rest()
		n := 0
		for _, want := range lit {
			got, size := utf8.DecodeRuneInString(rest[n:])
			if size == 0 || !strings.EqualFold(string(want), string(got)) {
				return c, "", Fail(KindNoMatch, c)
			}
			n += size
		}

		return c.Advance(n), rest[:n], nil
	}
}

// Take consumes exactly n characters (runes), failing when fewer remain.
func Take(n int) Parser[string] {
	return func(c Cursor) (Cursor, string, error) {
		rest := c.Rest()
		bytes := 0
		for i := 0; i < n; i++ {
			_, size := utf8.DecodeRuneInString(rest[bytes:])
			if size == 0 {
				return c, "", Fail(KindNoMatch, c)
			}
			bytes += size
		}

		return c.Advance(bytes), rest[:bytes], nil
	}
}

// Digits1 consumes one or more ASCII decimal digits.
func Digits1() Parser[string] {
	return func(c Cursor) (Cursor, string, error) {
		rest := c.Rest()
		n := 0
		for n < len(rest) && rest[n] >= '0' && rest[n] <= '9' {
			n++
		}
		if n == 0 {
			return c, "", Fail(KindNoMatch, c)
		}

		return c.Advance(n), rest[:n], nil
	}
}

// Space0 consumes zero or more spaces and tabs. It never fails.
func Space0() Parser[string] {
	return func(c Cursor) (Cursor, string, error) {
		rest := c.Rest()
		n := 0
		for n < len(rest) && (rest[n] == ' ' || rest[n] == '\t') {
			n++
		}

		return c.Advance(n), rest[:n], nil
	}
}

// Space1 consumes one or more spaces and tabs, failing on none.
func Space1() Parser[string] {
	return func(c Cursor) (Cursor, string, error) {
		next, s, _ := Space0()(c)
		if s == "" {
			return c, "", Fail(KindNoMatch, c)
		}

		return next, s, nil
	}
}

// Value runs p and, on success, substitutes the fixed value v.
func Value[T, U any](v T, p Parser[U]) Parser[T] {
	return func(c Cursor) (Cursor, T, error) {
		var zero T
		next, _, err := p(c)
		if err != nil {
			return c, zero, err
		}

		return next, v, nil
	}
}

// Map runs p and transforms its result with f.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(c Cursor) (Cursor, U, error) {
		var zero U
		next, v, err := p(c)
		if err != nil {
			return c, zero, err
		}

		return next, f(v), nil
	}
}

// Terminated runs p, then suffix, and yields p's value. Both must succeed.
func Terminated[T, U any](p Parser[T], suffix Parser[U]) Parser[T] {
	return func(c Cursor) (Cursor, T, error) {
		var zero T
		next, v, err := p(c)
		if err != nil {
			return c, zero, err
		}
		next, _, err = suffix(next)
		if err != nil {
			return c, zero, err
		}

		return next, v, nil
	}
}

// SeparatedPair recognizes first, then sep, then second, yielding both
// outer values. Any failure aborts the whole pair at the original cursor.
func SeparatedPair[A, S, B any](first Parser[A], sep Parser[S], second Parser[B]) Parser[Pair[A, B]] {
	return func(c Cursor) (Cursor, Pair[A, B], error) {
		var zero Pair[A, B]
		next, a, err := first(c)
		if err != nil {
			return c, zero, err
		}
		next, _, err = sep(next)
		if err != nil {
			return c, zero, err
		}
		next, b, err := second(next)
		if err != nil {
			return c, zero, err
		}

		return next, Pair[A, B]{First: a, Second: b}, nil
	}
}
