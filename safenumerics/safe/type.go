package safe

import (
	"errors"
	"fmt"

	"github.com/LerianStudio/lib-safenumerics/safenumerics/checked"
	"github.com/LerianStudio/lib-safenumerics/safenumerics/interval"
)

// ErrInvalidRange is returned when a declared minimum exceeds the
// declared maximum.
var ErrInvalidRange = errors.New("declared minimum exceeds maximum")

// Type describes a ranged value type: a storage type S, a declared
// inclusive range within S, and the policies bound at the declaration
// site. Types are immutable and safe for concurrent use; declare them
// once at package level and share them.
//
// A nil promotion or exception policy means "unspecified": a binary
// operation uses the other operand's policy, falling back to Native and
// Strict.
type Type[S checked.Integer] struct {
	min, max S
	promote  PromotionPolicy
	policy   *ExceptionPolicy
	name     string
}

// TypeOption configures optional Type parameters.
type TypeOption func(*typeConfig)

type typeConfig struct {
	promote PromotionPolicy
	policy  *ExceptionPolicy
	name    string
}

// WithPromotion binds a promotion policy at the declaration site.
func WithPromotion(p PromotionPolicy) TypeOption {
	return func(cfg *typeConfig) {
		cfg.promote = p
	}
}

// WithPolicy binds an exception policy at the declaration site.
func WithPolicy(p *ExceptionPolicy) TypeOption {
	return func(cfg *typeConfig) {
		cfg.policy = p
	}
}

// WithName labels the type for String output and error messages.
func WithName(name string) TypeOption {
	return func(cfg *typeConfig) {
		cfg.name = name
	}
}

// NewType declares a ranged type over the inclusive range [min, max].
// Returns ErrInvalidRange when min exceeds max.
func NewType[S checked.Integer](min, max S, opts ...TypeOption) (*Type[S], error) {
	if min > max {
		return nil, fmt.Errorf("%w: [%v, %v]", ErrInvalidRange, min, max)
	}

	var cfg typeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Type[S]{
		min:     min,
		max:     max,
		promote: cfg.promote,
		policy:  cfg.policy,
		name:    cfg.name,
	}, nil
}

// MustType is NewType for package-level declarations; it panics on an
// invalid range.
//
// Example:
//
//	var Percent = safe.MustType[int8](0, 100)
func MustType[S checked.Integer](min, max S, opts ...TypeOption) *Type[S] {
	t, err := NewType(min, max, opts...)
	if err != nil {
		panic("safe: " + err.Error())
	}

	return t
}

// TypeOf declares the convenience type spanning S's full native range.
func TypeOf[S checked.Integer](opts ...TypeOption) *Type[S] {
	t, _ := NewType(checked.MinOf[S](), checked.MaxOf[S](), opts...)

	return t
}

// Min returns the declared inclusive minimum.
func (t *Type[S]) Min() S {
	return t.min
}

// Max returns the declared inclusive maximum.
func (t *Type[S]) Max() S {
	return t.max
}

// Name returns the declaration label, empty if unnamed.
func (t *Type[S]) Name() string {
	return t.name
}

// Promotion returns the bound promotion policy, nil when unspecified.
func (t *Type[S]) Promotion() PromotionPolicy {
	return t.promote
}

// Policy returns the bound exception policy, nil when unspecified.
func (t *Type[S]) Policy() *ExceptionPolicy {
	return t.policy
}

// Interval returns the declared range as a closed interval.
func (t *Type[S]) Interval() interval.Interval[S] {
	return interval.New(t.min, t.max)
}

// Contains reports whether v lies within the declared range.
func (t *Type[S]) Contains(v S) bool {
	return t.min <= v && v <= t.max
}

func (t *Type[S]) String() string {
	if t.name != "" {
		return t.name
	}

	return "safe" + t.Interval().String()
}

// fullRange reports whether the declared range covers all of S, making
// construction from a raw S value infallible.
func (t *Type[S]) fullRange() bool {
	return t.min == checked.MinOf[S]() && t.max == checked.MaxOf[S]()
}

// resolvedPolicy returns the exception policy construction paths use.
func (t *Type[S]) resolvedPolicy() *ExceptionPolicy {
	if t == nil || t.policy == nil {
		return Strict
	}

	return t.policy
}

// nativeType is the implicit full-range type substituted for values that
// were never constructed.
func nativeType[S checked.Integer]() *Type[S] {
	t, _ := NewType(checked.MinOf[S](), checked.MaxOf[S]())

	return t
}
