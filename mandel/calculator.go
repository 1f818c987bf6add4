// SPDX-License-Identifier: MIT

package mandel

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mandelcalc/matrix"
)

// Calculator is the contract every strategy satisfies.
//
// Compute returns a freshly allocated Height×Width matrix whose entries are the
// iteration index at which each pixel escaped, or Limit() if it never did.
// The caller owns the result. Repeated calls are independent and return equal
// matrices.
type Calculator interface {
	Compute() *matrix.Dense
	Geometry() Geometry
	Limit() int
	Kind() Kind
}

// Kind identifies a calculation strategy.
type Kind int

const (
	// KindReference evaluates pixels one at a time with a scalar loop.
	KindReference Kind = iota
	// KindLine evaluates a whole row per iteration step with row-sized temporaries.
	KindLine
	// KindBatch evaluates fixed-size chunks of a row with chunk-sized temporaries.
	KindBatch
)

var kindNames = [...]string{
	KindReference: "reference",
	KindLine:      "line",
	KindBatch:     "batch",
}

// String returns the lower-case strategy name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// Kinds lists every registered strategy in declaration order.
func Kinds() []Kind {
	return []Kind{KindReference, KindLine, KindBatch}
}

// ParseKind maps a case-insensitive strategy name to its Kind.
// "row" is accepted as an alias of "line".
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "row" {
		return KindLine, nil
	}
	for k, s := range kindNames {
		if s == n {
			return Kind(k), nil
		}
	}

	return 0, mandelErrorf(fmt.Sprintf("ParseKind(%q)", name), ErrUnknownStrategy)
}

// New constructs the calculator selected by kind.
// Errors: ErrUnknownStrategy plus the constructor errors of the strategy.
func New(kind Kind, g Geometry, limit int, opts ...Option) (Calculator, error) {
	switch kind {
	case KindReference:
		return NewReference(g, limit, opts...)
	case KindLine:
		return NewLine(g, limit, opts...)
	case KindBatch:
		return NewBatch(g, limit, opts...)
	default:
		return nil, mandelErrorf("New", fmt.Errorf("%v: %w", kind, ErrUnknownStrategy))
	}
}
