package scan_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/katalvlaran/whence/scan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCursor_AdvanceAndRest verifies basic cursor movement and clamping.
func TestCursor_AdvanceAndRest(t *testing.T) {
	c := scan.New("abcdef")
	assert.Equal(t, "abcdef", c.Rest())
	assert.Equal(t, 0, c.Offset())
	assert.False(t, c.Done())

	c2 := c.Advance(2)
	assert.Equal(t, "cdef", c2.Rest())
	assert.Equal(t, "abcdef", c.Rest(), "original cursor must be untouched")

	assert.True(t, c2.Advance(100).Done(), "over-advance clamps to the end")
	assert.Equal(t, c2.Rest(), c2.Advance(-1).Rest(), "negative advance is a no-op")
}

// TestTag matches exact literals only.
func TestTag(t *testing.T) {
	next, v, err := scan.Tag("/")(scan.New("/07"))
	require.NoError(t, err)
	assert.Equal(t, "/", v)
	assert.Equal(t, "07", next.Rest())

	_, _, err = scan.Tag("/")(scan.New("-07"))
	assert.ErrorIs(t, err, scan.ErrNoMatch)
}

// TestTagNoCase folds case for ASCII and Cyrillic alike and returns the
// input's own spelling.
func TestTagNoCase(t *testing.T) {
	next, v, err := scan.TagNoCase("yesterday")(scan.New("YeStErDaY!"))
	require.NoError(t, err)
	assert.Equal(t, "YeStErDaY", v, "matched slice keeps the input spelling")
	assert.Equal(t, "!", next.Rest())

	next, v, err = scan.TagNoCase("вчера")(scan.New("ВЧЕРА"))
	require.NoError(t, err)
	assert.Equal(t, "ВЧЕРА", v)
	assert.True(t, next.Done())

	_, _, err = scan.TagNoCase("вчера")(scan.New("вчер"))
	assert.ErrorIs(t, err, scan.ErrNoMatch, "truncated literal must not match")
}

// TestTake counts runes, not bytes, and fails when too few remain.
func TestTake(t *testing.T) {
	next, v, err := scan.Take(2)(scan.New("пн."))
	require.NoError(t, err)
	assert.Equal(t, "пн", v)
	assert.Equal(t, ".", next.Rest())

	_, _, err = scan.Take(4)(scan.New("202"))
	assert.ErrorIs(t, err, scan.ErrNoMatch)
}

// TestDigits1 consumes a maximal digit run and rejects an empty one.
func TestDigits1(t *testing.T) {
	next, v, err := scan.Digits1()(scan.New("0123x"))
	require.NoError(t, err)
	assert.Equal(t, "0123", v)
	assert.Equal(t, "x", next.Rest())

	_, _, err = scan.Digits1()(scan.New("x1"))
	assert.ErrorIs(t, err, scan.ErrNoMatch)
}

// TestSpaces verifies Space0 never fails while Space1 needs at least one
// space or tab.
func TestSpaces(t *testing.T) {
	next, v, err := scan.Space0()(scan.New("abc"))
	require.NoError(t, err)
	assert.Empty(t, v)
	assert.Equal(t, "abc", next.Rest())

	next, v, err = scan.Space1()(scan.New(" \t 13"))
	require.NoError(t, err)
	assert.Equal(t, " \t ", v)
	assert.Equal(t, "13", next.Rest())

	_, _, err = scan.Space1()(scan.New("13"))
	assert.ErrorIs(t, err, scan.ErrNoMatch)
}

// TestAlt_OrderAndShortCircuit verifies that the first matching alternative
// wins and later ones are never consulted.
func TestAlt_OrderAndShortCircuit(t *testing.T) {
	p := scan.Alt(scan.Tag("ab"), scan.Tag("a"))
	next, v, err := p(scan.New("abc"))
	require.NoError(t, err)
	assert.Equal(t, "ab", v, "earlier alternative wins even though both match")
	assert.Equal(t, "c", next.Rest())

	// Reversed order: the shorter tag now steals the prefix.
	p = scan.Alt(scan.Tag("a"), scan.Tag("ab"))
	_, v, err = p(scan.New("abc"))
	require.NoError(t, err)
	assert.Equal(t, "a", v, "ordering decides which interpretation wins")
}

// TestAlt_LastErrorWins verifies the alternation failure contract: when all
// alternatives fail, only the last one's error surfaces.
func TestAlt_LastErrorWins(t *testing.T) {
	dayish := func(c scan.Cursor) (scan.Cursor, string, error) {
		return c, "", scan.Fail(scan.KindDayOutOfRange, c)
	}
	p := scan.Alt(dayish, scan.Tag("z"))

	_, _, err := p(scan.New("q"))
	assert.ErrorIs(t, err, scan.ErrNoMatch, "last alternative failed with NoMatch")
	assert.NotErrorIs(t, err, scan.ErrDayOutOfRange, "earlier failure is discarded")

	// Same alternatives, opposite order.
	p = scan.Alt(scan.Tag("z"), dayish)
	_, _, err = p(scan.New("q"))
	assert.ErrorIs(t, err, scan.ErrDayOutOfRange)
}

// TestAlt_Empty fails with NoMatch rather than panicking.
func TestAlt_Empty(t *testing.T) {
	_, _, err := scan.Alt[string]()(scan.New("x"))
	assert.ErrorIs(t, err, scan.ErrNoMatch)
}

// TestValueAndMap verifies result substitution and transformation.
func TestValueAndMap(t *testing.T) {
	p := scan.Value(7, scan.Tag("seven"))
	_, v, err := p(scan.New("seven"))
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	doubled := scan.Map(p, func(n int) int { return n * 2 })
	_, d, err := doubled(scan.New("seven"))
	require.NoError(t, err)
	assert.Equal(t, 14, d)
}

// TestTerminated requires both the inner parser and the suffix, rewinding
// fully on a suffix miss.
func TestTerminated(t *testing.T) {
	p := scan.Terminated(scan.Tag("wed"), scan.Tag("."))

	next, v, err := p(scan.New("wed. "))
	require.NoError(t, err)
	assert.Equal(t, "wed", v)
	assert.Equal(t, " ", next.Rest())

	next2, _, err := p(scan.New("wednesday"))
	assert.ErrorIs(t, err, scan.ErrNoMatch)
	assert.Equal(t, "wednesday", next2.Rest(), "failure returns the original position")
}

// TestSeparatedPair yields both outer values and aborts atomically.
func TestSeparatedPair(t *testing.T) {
	p := scan.SeparatedPair(scan.Digits1(), scan.Tag("/"), scan.Digits1())

	next, v, err := p(scan.New("13/07rest"))
	require.NoError(t, err)
	assert.Equal(t, scan.Pair[string, string]{First: "13", Second: "07"}, v)
	assert.Equal(t, "rest", next.Rest())

	next2, _, err := p(scan.New("13-07"))
	assert.ErrorIs(t, err, scan.ErrNoMatch)
	assert.Equal(t, "13-07", next2.Rest(), "failure must not consume the first field")
}

// TestFault_ErrorsIsAndAs verifies sentinel matching and cause unwrapping.
func TestFault_ErrorsIsAndAs(t *testing.T) {
	_, convErr := strconv.ParseUint("ab", 10, 32)
	require.Error(t, convErr)

	err := scan.FailConv(scan.New("ab"), convErr)
	assert.ErrorIs(t, err, scan.ErrParseInt)

	var numErr *strconv.NumError
	assert.True(t, errors.As(err, &numErr), "conversion cause must be reachable")

	var fault *scan.Fault
	require.True(t, errors.As(err, &fault))
	assert.Equal(t, scan.KindParseInt, fault.Kind)
	assert.Equal(t, "ab", fault.Input)
	assert.Contains(t, fault.Error(), "ParseInt")
}

// TestKindString names every kind for diagnostics.
func TestKindString(t *testing.T) {
	assert.Equal(t, "NoMatch", scan.KindNoMatch.String())
	assert.Equal(t, "DayOutOfRange", scan.KindDayOutOfRange.String())
	assert.Equal(t, "MonthOutOfRange", scan.KindMonthOutOfRange.String())
	assert.Equal(t, "NonExistentDate", scan.KindNonExistentDate.String())
	assert.Equal(t, "ParseInt", scan.KindParseInt.String())
}
