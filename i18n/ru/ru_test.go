package ru_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/whence/caldate"
	"github.com/katalvlaran/whence/i18n/ru"
	"github.com/katalvlaran/whence/scan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tuesday freezes "today" at Tuesday 2024-07-16.
var tuesday = caldate.Fixed(time.Date(2024, time.July, 16, 8, 0, 0, 0, time.Local))

// TestRelativeWords resolves the five Russian relative-day words,
// case-insensitively under Unicode folding.
func TestRelativeWords(t *testing.T) {
	cases := []struct {
		name  string
		p     scan.Parser[caldate.Date]
		input string
		want  string
	}{
		{name: "day before yesterday", p: ru.DayBeforeYesterday(tuesday), input: "позавчера", want: "2024-07-14"},
		{name: "day before yesterday capitalized", p: ru.DayBeforeYesterday(tuesday), input: "Позавчера", want: "2024-07-14"},
		{name: "yesterday", p: ru.Yesterday(tuesday), input: "Вчера", want: "2024-07-15"},
		{name: "today", p: ru.Today(tuesday), input: "СЕГОДНЯ", want: "2024-07-16"},
		{name: "tomorrow", p: ru.Tomorrow(tuesday), input: "завтра", want: "2024-07-17"},
		{name: "day after tomorrow", p: ru.DayAfterTomorrow(tuesday), input: "послезавтра", want: "2024-07-18"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			next, d, err := tc.p(scan.New(tc.input))
			require.NoError(t, err)
			assert.Equal(t, tc.want, d.String())
			assert.True(t, next.Done())
		})
	}
}

// TestTomorrow_NotFooledByCompound verifies "завтра" does not fire inside
// "послезавтра" when the right recognizer is asked: the words differ at
// their first rune, so each matches only its own literal.
func TestTomorrow_NotFooledByCompound(t *testing.T) {
	_, _, err := ru.Tomorrow(tuesday)(scan.New("послезавтра"))
	assert.ErrorIs(t, err, scan.ErrNoMatch)
}

// TestShortNamedWeekday accepts the two-letter forms in any case.
func TestShortNamedWeekday(t *testing.T) {
	p := ru.ShortNamedWeekday()

	cases := map[string]time.Weekday{
		"пн": time.Monday,
		"ВТ": time.Tuesday,
		"Ср": time.Wednesday,
		"чт": time.Thursday,
		"пт": time.Friday,
		"сб": time.Saturday,
		"вс": time.Sunday,
	}
	for input, want := range cases {
		_, wd, err := p(scan.New(input))
		require.NoErrorf(t, err, "input %q", input)
		assert.Equalf(t, want, wd, "input %q", input)
	}
}

// TestShortNamedWeekdayDot requires the trailing dot.
func TestShortNamedWeekdayDot(t *testing.T) {
	_, wd, err := ru.ShortNamedWeekdayDot()(scan.New("ПТ."))
	require.NoError(t, err)
	assert.Equal(t, time.Friday, wd)

	_, _, err = ru.ShortNamedWeekdayDot()(scan.New("пт"))
	assert.ErrorIs(t, err, scan.ErrNoMatch)
}

// TestFullNamedWeekday accepts the full names.
func TestFullNamedWeekday(t *testing.T) {
	p := ru.FullNamedWeekday()

	_, wd, err := p(scan.New("среда"))
	require.NoError(t, err)
	assert.Equal(t, time.Wednesday, wd)

	_, wd, err = p(scan.New("ВОСКРЕСЕНЬЕ"))
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, wd)
}

// TestNamedWeekday tries full before short: "вторник" must resolve as
// Tuesday's full name, not stop at the short form "вт".
func TestNamedWeekday(t *testing.T) {
	p := ru.NamedWeekday()

	next, wd, err := p(scan.New("вторник"))
	require.NoError(t, err)
	assert.Equal(t, time.Tuesday, wd)
	assert.True(t, next.Done(), "full name wins over its short prefix")

	_, wd, err = p(scan.New("пн"))
	require.NoError(t, err)
	assert.Equal(t, time.Monday, wd)
}

// TestCurrentNamedWeekday resolves weekday words within the current
// Monday-based week.
func TestCurrentNamedWeekday(t *testing.T) {
	p := ru.CurrentNamedWeekday(tuesday)

	_, d, err := p(scan.New("понедельник"))
	require.NoError(t, err)
	assert.Equal(t, "2024-07-15", d.String())

	_, d, err = p(scan.New("Среда"))
	require.NoError(t, err)
	assert.Equal(t, "2024-07-17", d.String())
}

// TestBundle walks the Russian bundle across numeric and word families.
func TestBundle(t *testing.T) {
	p := ru.Bundle(tuesday)

	cases := []struct {
		input string
		want  string
	}{
		{input: "1", want: "2024-07-01"},
		{input: "09", want: "2024-07-09"},
		{input: "03/12", want: "2024-12-03"},
		{input: "13    06\t2024", want: "2024-06-13"},
		{input: "позавчера", want: "2024-07-14"},
		{input: "Вчера", want: "2024-07-15"},
		{input: "Завтра", want: "2024-07-17"},
		{input: "послезавтра", want: "2024-07-18"},
		{input: "пятница", want: "2024-07-19"},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			next, got, err := p(scan.New(tc.input))
			require.NoError(t, err)
			require.True(t, got.Exists)
			assert.Equal(t, tc.want, got.Date.String())
			assert.True(t, next.Done())
		})
	}
}

// TestBundle_AbsentDatePassesThrough keeps the numeric existence semantics
// inside the bundle.
func TestBundle_AbsentDatePassesThrough(t *testing.T) {
	_, got, err := ru.Bundle(tuesday)(scan.New("31-02-2024"))
	require.NoError(t, err)
	assert.False(t, got.Exists)
}
