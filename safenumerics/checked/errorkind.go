package checked

// ErrorKind classifies why a checked operation could not produce a
// representable result.
//
// The zero value is UninitializedValue so that a zero Result decodes as
// the uninitialized-value failure rather than as a fake success.
type ErrorKind uint8

const (
	// UninitializedValue marks use of a value that was never constructed.
	UninitializedValue ErrorKind = iota
	// Success marks an operation that produced a valid result.
	Success
	// PositiveOverflow marks a result above the representable maximum.
	PositiveOverflow
	// NegativeOverflow marks a result below the representable minimum.
	NegativeOverflow
	// Underflow marks a nonzero result too small in magnitude to represent.
	Underflow
	// RangeError marks a conversion whose operand does not fit the target.
	RangeError
	// DomainError marks an operand outside the operation's domain, such as
	// a zero divisor.
	DomainError
	// PrecisionOverflow marks a value that cannot be held without losing
	// precision, such as a fractional decimal.
	PrecisionOverflow
	// NegativeShift marks a shift by a negative amount.
	NegativeShift
	// NegativeValueShift marks a shift of a negative value.
	NegativeValueShift
	// ShiftTooLarge marks a shift amount at or beyond the operand width.
	ShiftTooLarge
)

func (k ErrorKind) String() string {
	switch k {
	case UninitializedValue:
		return "uninitialized_value"
	case Success:
		return "success"
	case PositiveOverflow:
		return "positive_overflow"
	case NegativeOverflow:
		return "negative_overflow"
	case Underflow:
		return "underflow"
	case RangeError:
		return "range_error"
	case DomainError:
		return "domain_error"
	case PrecisionOverflow:
		return "precision_overflow"
	case NegativeShift:
		return "negative_shift"
	case NegativeValueShift:
		return "negative_value_shift"
	case ShiftTooLarge:
		return "shift_too_large"
	}

	return "unknown"
}

// Action is the failure category an exception policy configures
// independently. Every ErrorKind maps to exactly one Action.
type Action uint8

const (
	// NoAction is the category of Success.
	NoAction Action = iota
	// ArithmeticError covers failures ordinary arithmetic can produce:
	// overflow, underflow, domain errors, and lossy conversions.
	ArithmeticError
	// ImplementationDefined covers operations whose native outcome varies
	// between implementations, such as shifting a negative value.
	ImplementationDefined
	// UndefinedBehavior covers operations with no defined native outcome.
	UndefinedBehavior
	// Uninitialized covers use of a never-constructed value.
	Uninitialized
)

func (a Action) String() string {
	switch a {
	case NoAction:
		return "no_action"
	case ArithmeticError:
		return "arithmetic_error"
	case ImplementationDefined:
		return "implementation_defined_behavior"
	case UndefinedBehavior:
		return "undefined_behavior"
	case Uninitialized:
		return "uninitialized_value"
	}

	return "unknown"
}

// Action returns the failure category k belongs to.
func (k ErrorKind) Action() Action {
	switch k {
	case Success:
		return NoAction
	case PositiveOverflow, NegativeOverflow, Underflow, RangeError, DomainError, PrecisionOverflow:
		return ArithmeticError
	case NegativeShift, NegativeValueShift, ShiftTooLarge:
		return ImplementationDefined
	case UninitializedValue:
		return Uninitialized
	}

	return UndefinedBehavior
}

// Error is the structured error surfaced when a checked failure is
// reported. Match it with errors.As, or with errors.Is against a
// kind-only template built by NewError(kind, "").
type Error struct {
	Kind ErrorKind
	Msg  string
}

// NewError builds a structured checked-arithmetic error.
func NewError(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}

	return e.Kind.String() + ": " + e.Msg
}

// Is matches any *Error with the same kind, so sentinel-style checks
// against NewError(kind, "") work regardless of message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.Kind == e.Kind && (t.Msg == "" || t.Msg == e.Msg)
}
