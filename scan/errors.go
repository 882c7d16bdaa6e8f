package scan

import (
	"errors"
	"fmt"
)

// Kind is the closed set of recognition-failure categories. Every failure
// produced anywhere in whence is a *Fault carrying exactly one Kind.
type Kind int

const (
	// KindNoMatch is the generic "this pattern does not apply here" failure,
	// used by separators, literal tags and exhausted alternations.
	KindNoMatch Kind = iota

	// KindDayOutOfRange marks a day field outside 1..31.
	KindDayOutOfRange

	// KindMonthOutOfRange marks a month field outside 1..12.
	KindMonthOutOfRange

	// KindNonExistentDate is reserved for a stricter mode in which a failed
	// calendar-existence check is an error rather than an absent date. No
	// shipped recognizer raises it.
	KindNonExistentDate

	// KindParseInt marks a field whose characters did not convert to an
	// unsigned integer; the strconv cause is attached.
	KindParseInt
)

// Sentinel failure values, one per Kind. Match with errors.Is.
var (
	// ErrNoMatch indicates no recognizer pattern applied at this position.
	ErrNoMatch = errors.New("scan: no alternative matched")

	// ErrDayOutOfRange indicates a day field outside 1..31.
	ErrDayOutOfRange = errors.New("scan: day out of range 1..31")

	// ErrMonthOutOfRange indicates a month field outside 1..12.
	ErrMonthOutOfRange = errors.New("scan: month out of range 1..12")

	// ErrNonExistentDate is reserved; see KindNonExistentDate.
	ErrNonExistentDate = errors.New("scan: non-existent calendar date")

	// ErrParseInt indicates a field failed integer conversion.
	ErrParseInt = errors.New("scan: field is not an unsigned integer")
)

// sentinel maps each Kind to its errors.Is target.
func (k Kind) sentinel() error {
	switch k {
	case KindDayOutOfRange:
		return ErrDayOutOfRange
	case KindMonthOutOfRange:
		return ErrMonthOutOfRange
	case KindNonExistentDate:
		return ErrNonExistentDate
	case KindParseInt:
		return ErrParseInt
	default:
		return ErrNoMatch
	}
}

// String names the Kind for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindDayOutOfRange:
		return "DayOutOfRange"
	case KindMonthOutOfRange:
		return "MonthOutOfRange"
	case KindNonExistentDate:
		return "NonExistentDate"
	case KindParseInt:
		return "ParseInt"
	default:
		return "NoMatch"
	}
}

// Fault is the unified recognition failure: the Kind, the unconsumed input
// at the point of failure, and (for KindParseInt) the conversion cause.
//
// Fault supports errors.Is against the Err... sentinels and errors.As /
// Unwrap for the wrapped cause.
type Fault struct {
	Kind  Kind
	Input string
	Cause error
}

// Fail builds a *Fault of the given Kind at the cursor's position.
func Fail(kind Kind, c Cursor) error {
	return &Fault{Kind: kind, Input: c.Rest()}
}

// FailConv builds a KindParseInt *Fault wrapping the conversion error.
func FailConv(c Cursor, cause error) error {
	return &Fault{Kind: KindParseInt, Input: c.Rest(), Cause: cause}
}

// Error formats the failure with its kind and the offending input.
func (f *Fault) Error() string {
	if f.Cause != nil {
		return fmt.Sprintf("%s at %q: %v", f.Kind, f.Input, f.Cause)
	}

	return fmt.Sprintf("%s at %q", f.Kind, f.Input)
}

// Is matches f against the sentinel of its Kind.
func (f *Fault) Is(target error) bool {
	return target == f.Kind.sentinel()
}

// Unwrap exposes the conversion cause, if any.
func (f *Fault) Unwrap() error {
	return f.Cause
}
