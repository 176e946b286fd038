package astro

import "fmt"

// Warning classifies non-fatal conditions. A function that can degrade
// accuracy returns a Warning next to its result; the result is always valid
// and usable. Warnings combine as a bit set, mirroring the additive status
// codes of the reference conventions.
type Warning uint8

const (
	// WarnNone reports no degradation.
	WarnNone Warning = 0

	// WarnDubiousYear marks a date before the leap-second table begins or
	// beyond the year the table is known to be complete for. The nearest
	// defined behavior is extrapolated.
	WarnDubiousYear Warning = 1 << iota

	// WarnSmallParallax marks a catalog parallax below the working minimum;
	// the minimum was substituted.
	WarnSmallParallax

	// WarnExcessSpeed marks a catalog space velocity above half the speed of
	// light; the velocity was set to zero.
	WarnExcessSpeed
)

func (w Warning) String() string {
	if w == WarnNone {
		return "none"
	}
	s := ""
	add := func(name string) {
		if s != "" {
			s += "+"
		}
		s += name
	}
	if w&WarnDubiousYear != 0 {
		add("dubious year")
	}
	if w&WarnSmallParallax != 0 {
		add("small parallax")
	}
	if w&WarnExcessSpeed != 0 {
		add("excess speed")
	}
	return s
}

// ErrorKind enumerates the fatal failure causes. Callers branch on the kind,
// not on message text.
type ErrorKind int

const (
	// ErrBadYear means the calendar year precedes the supported range.
	ErrBadYear ErrorKind = iota + 1
	// ErrBadMonth means the calendar month is outside 1-12.
	ErrBadMonth
	// ErrBadDay means the day is invalid for the given year and month.
	ErrBadDay
	// ErrBadFraction means a day fraction is outside [0,1].
	ErrBadFraction
	// ErrJDRange means a Julian Date is outside the representable domain.
	ErrJDRange
	// ErrZeroVector means normalization of a zero-length vector was requested.
	ErrZeroVector
	// ErrSingularMatrix means a matrix determinant is below the inversion
	// threshold.
	ErrSingularMatrix
	// ErrUnsupportedModel means the precession-nutation model selector is not
	// one of the supported flavors.
	ErrUnsupportedModel
	// ErrUnrealistic means inputs would lead to arithmetic exceptions.
	ErrUnrealistic
	// ErrNaNInput means an input was NaN.
	ErrNaNInput
)

func (k ErrorKind) String() string {
	switch k {
	case ErrBadYear:
		return "bad year"
	case ErrBadMonth:
		return "bad month"
	case ErrBadDay:
		return "bad day"
	case ErrBadFraction:
		return "bad day fraction"
	case ErrJDRange:
		return "julian date out of range"
	case ErrZeroVector:
		return "zero-length vector"
	case ErrSingularMatrix:
		return "singular matrix"
	case ErrUnsupportedModel:
		return "unsupported model"
	case ErrUnrealistic:
		return "unrealistic inputs"
	case ErrNaNInput:
		return "NaN input"
	default:
		return "unknown"
	}
}

// Error is a fatal, per-call failure carrying an enumerated cause and the
// name of the routine that rejected the input.
type Error struct {
	Kind ErrorKind
	Func string
}

func (e *Error) Error() string {
	return fmt.Sprintf("astro: %s: %s", e.Func, e.Kind)
}

func errOf(fn string, kind ErrorKind) *Error {
	return &Error{Kind: kind, Func: fn}
}
