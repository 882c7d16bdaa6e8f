// Package caldate provides the validated calendar-date value used by every
// recognizer in whence, plus the injectable clock the recognizers read
// "today" from.
//
// 🚀 What is caldate?
//
//	A tiny civil-date model with one rule: a Date that exists was checked.
//	  • Make(y, m, d) is the only gate — month lengths and leap years included
//	  • Maybe carries "checked but absent" as a first-class success value
//	  • Clock makes "today" an explicit dependency instead of a hidden global
//
// ✨ Why not time.Time?
//
//   - Recognizers deal in whole days; carrying hours/zones invites bugs
//   - An invalid (y, m, d) must be representable as absence, never as a
//     normalized different date
//   - Tests need a frozen "today" — Fixed(t) gives one in a single line
//
// ⚙️ Usage:
//
//	d, ok := caldate.Make(2024, time.February, 29) // ok: 2024 is a leap year
//	_, ok = caldate.Make(2023, time.February, 29)  // !ok: no such date
//
//	clock := caldate.Fixed(time.Date(2024, 7, 16, 0, 0, 0, 0, time.Local))
//	today := caldate.Today(clock) // 2024-07-16
//
// See example_test.go for more.
package caldate
