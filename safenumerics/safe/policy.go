package safe

import (
	"errors"
	"fmt"

	"github.com/LerianStudio/lib-safenumerics/safenumerics/checked"
)

// ErrTrap is wrapped by errors returned when an operation is rejected
// because its exception policy traps a failure category that is
// statically possible for this operand combination. A trapped operation
// never executes; absence of ErrTrap is the proof it cannot fail.
var ErrTrap = errors.New("operation trapped by exception policy")

// Action is the response an exception policy assigns to a failure
// category.
type Action uint8

const (
	// Report routes the failure through the policy handler and returns
	// the handler's error.
	Report Action = iota
	// Ignore suppresses the failure and yields a best-effort, possibly
	// incorrect value. Opt-in only.
	Ignore
	// Trap rejects, before execution, any operation for which the
	// category is statically possible.
	Trap
)

func (a Action) String() string {
	switch a {
	case Report:
		return "report"
	case Ignore:
		return "ignore"
	}

	return "trap"
}

// Handler turns a reported failure into the error surfaced to the
// caller. Returning nil downgrades the report to an ignore.
type Handler func(kind checked.ErrorKind, msg string) error

// ExceptionPolicy maps the four failure categories to response actions.
// Policies are shared immutable values; a nil policy on a Type means
// "unspecified" and defers to the other operand of a binary operation,
// falling back to Strict.
type ExceptionPolicy struct {
	name           string
	arithmetic     Action
	implementation Action
	undefined      Action
	uninitialized  Action
	handler        Handler
}

// NewPolicy builds an exception policy from one action per failure
// category.
func NewPolicy(name string, arithmetic, implementationDefined, undefinedBehavior, uninitializedValue Action) *ExceptionPolicy {
	return &ExceptionPolicy{
		name:           name,
		arithmetic:     arithmetic,
		implementation: implementationDefined,
		undefined:      undefinedBehavior,
		uninitialized:  uninitializedValue,
	}
}

// WithHandler returns a copy of p whose reported failures go through h
// instead of the default structured-error handler.
func (p *ExceptionPolicy) WithHandler(h Handler) *ExceptionPolicy {
	cp := *p
	cp.handler = h

	return &cp
}

// Name returns the policy's declaration name.
func (p *ExceptionPolicy) Name() string {
	return p.name
}

// ActionFor returns the configured response for a failure category.
func (p *ExceptionPolicy) ActionFor(category checked.Action) Action {
	switch category {
	case checked.ArithmeticError:
		return p.arithmetic
	case checked.ImplementationDefined:
		return p.implementation
	case checked.UndefinedBehavior:
		return p.undefined
	case checked.Uninitialized:
		return p.uninitialized
	}

	return Ignore
}

// dispatch routes a detected runtime failure through the policy.
// Trapped categories never reach here: the dispatcher rejects those
// operations before executing them.
func (p *ExceptionPolicy) dispatch(kind checked.ErrorKind, msg string) error {
	switch p.ActionFor(kind.Action()) {
	case Ignore:
		return nil
	case Trap:
		panic("safe: trapped failure reached runtime: " + kind.String())
	}

	h := p.handler
	if h == nil {
		h = defaultHandler
	}

	return h(kind, msg)
}

// trapped returns the rejection error when p traps category for the
// named operation, nil otherwise.
func (p *ExceptionPolicy) trapped(category checked.Action, op string) error {
	if p.ActionFor(category) != Trap {
		return nil
	}

	return fmt.Errorf("%w: %s may raise %s", ErrTrap, op, category)
}

func defaultHandler(kind checked.ErrorKind, msg string) error {
	return checked.NewError(kind, msg)
}

// Prebuilt policies covering the useful corners of the category/action
// grid. Strict is the default.
var (
	// Strict reports arithmetic, implementation-defined and undefined
	// failures and ignores use of uninitialized values.
	Strict = NewPolicy("strict", Report, Report, Report, Ignore)
	// Loose reports arithmetic failures and ignores every category whose
	// native outcome, while possibly wrong, is at least defined.
	Loose = NewPolicy("loose", Report, Ignore, Ignore, Ignore)
	// LooseTrap statically rejects operations that could fail
	// arithmetically and ignores the other categories.
	LooseTrap = NewPolicy("loose-trap", Trap, Ignore, Ignore, Ignore)
	// StrictTrap statically rejects any operation that could fail at
	// all. An operation accepted under StrictTrap is proven safe.
	StrictTrap = NewPolicy("strict-trap", Trap, Trap, Trap, Trap)
)
