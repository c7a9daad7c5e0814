package radix

import (
	"errors"
	"fmt"
)

// Sentinel errors for radix sorting.
var (
	// ErrNegativeValue is returned when the input holds a negative integer
	// and the RejectNegatives policy is active.
	ErrNegativeValue = errors.New("radix: negative value")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("radix: invalid option supplied")
)

// Radix bounds.
const (
	// DefaultBase is the decimal radix used when no WithBase option is given.
	DefaultBase = 10

	// MaxBase is the largest accepted radix; Sort allocates one bucket per digit value.
	MaxBase = 1 << 16
)

// NegativePolicy selects how Sort treats negative integers.
//
//   - RejectNegatives — fail with ErrNegativeValue and leave the input untouched.
//   - SignSplit       — sort negatives by magnitude in a separate partition
//     placed before the non-negative values.
type NegativePolicy int

const (
	// RejectNegatives refuses any negative input (default).
	RejectNegatives NegativePolicy = iota

	// SignSplit sorts negatives and non-negatives as two partitions.
	SignSplit
)

// String returns the policy name used by configuration files.
func (p NegativePolicy) String() string {
	switch p {
	case RejectNegatives:
		return "reject"
	case SignSplit:
		return "split"
	default:
		return fmt.Sprintf("NegativePolicy(%d)", int(p))
	}
}

// Option configures Sort via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when Sort is invoked.
type Option func(*Options)

// Options holds the parameters and hooks of one Sort call.
type Options struct {
	// Base is the radix; every pass buckets by one base-Base digit.
	Base int

	// Negatives selects the negative-number policy.
	Negatives NegativePolicy

	// OnPass is called after each distribute/collect pass with the 1-based
	// pass number, the place value exp of the processed digit and a view
	// of the working slice. The view aliases the slice being sorted: it is
	// valid only during the call and must not be modified.
	OnPass func(pass, exp int, view []int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Base = DefaultBase (10)
//   - Negatives = RejectNegatives
//   - no-op OnPass.
func DefaultOptions() Options {
	return Options{
		Base:      DefaultBase,
		Negatives: RejectNegatives,
		OnPass:    func(int, int, []int) {},
	}
}

// WithBase sets the radix.
//
//	2 <= b <= MaxBase: bucket by base-b digits
//	otherwise:         invalid option → ErrOptionViolation
func WithBase(b int) Option {
	return func(o *Options) {
		if b < 2 || b > MaxBase {
			o.err = fmt.Errorf("%w: base must be in [2, %d] (%d)", ErrOptionViolation, MaxBase, b)
			return
		}
		o.Base = b
	}
}

// WithNegatives selects the negative-number policy.
func WithNegatives(p NegativePolicy) Option {
	return func(o *Options) {
		switch p {
		case RejectNegatives, SignSplit:
			o.Negatives = p
		default:
			o.err = fmt.Errorf("%w: unknown negative policy %v", ErrOptionViolation, p)
		}
	}
}

// WithOnPass registers a hook called after every pass.
func WithOnPass(fn func(pass, exp int, view []int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPass = fn
		}
	}
}

// buildOptions folds opts over DefaultOptions and reports the first violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
		if o.err != nil {
			return o, o.err
		}
	}

	return o, nil
}
