package checked

// Result holds either a valid value of type T or a classified failure,
// never both and never neither. The zero value is the
// uninitialized-value failure; build valid results with Ok and failures
// with Fail.
//
// A failed Result is an ordinary value: it can be stored, copied and
// passed through further checked operations, which propagate the failure
// instead of computing. Only Value refuses to touch a failure.
type Result[T Integer] struct {
	kind ErrorKind
	val  T
	msg  string
}

// Ok wraps a valid value.
func Ok[T Integer](v T) Result[T] {
	return Result[T]{kind: Success, val: v}
}

// Fail builds a failed Result. Passing Success is a programming error
// and panics: a failure must carry a failure kind.
func Fail[T Integer](kind ErrorKind, msg string) Result[T] {
	if kind == Success {
		panic("checked: Fail requires a failure kind")
	}

	return Result[T]{kind: kind, msg: msg}
}

// Failed reports whether r holds a failure instead of a value.
func (r Result[T]) Failed() bool {
	return r.kind != Success
}

// Kind returns the classification of r: Success, or the failure kind.
func (r Result[T]) Kind() ErrorKind {
	return r.kind
}

// Message returns the failure detail, empty for a valid result.
func (r Result[T]) Message() string {
	return r.msg
}

// Value returns the contained value. Calling Value on a failed Result is
// a programming error and panics; callers that may see failures use Get.
func (r Result[T]) Value() T {
	if r.kind != Success {
		panic("checked: Value called on failed result: " + r.kind.String())
	}

	return r.val
}

// Get returns the value, or the zero of T and the structured error when
// r holds a failure.
func (r Result[T]) Get() (T, error) {
	if r.kind != Success {
		var zero T

		return zero, NewError(r.kind, r.msg)
	}

	return r.val, nil
}

// Err returns nil for a valid result and the structured error otherwise.
func (r Result[T]) Err() error {
	if r.kind == Success {
		return nil
	}

	return NewError(r.kind, r.msg)
}

func (r Result[T]) String() string {
	if r.kind != Success {
		return "<" + NewError(r.kind, r.msg).Error() + ">"
	}

	return formatInteger(r.val)
}

// ResultCast converts a checked result to another underlying type. A
// failure propagates unchanged; a value that does not fit R becomes a
// range error.
func ResultCast[R, T Integer](r Result[T]) Result[R] {
	if r.kind != Success {
		return Fail[R](r.kind, r.msg)
	}

	return Cast[R](r.val)
}
