// SPDX-License-Identifier: MIT
package kernel

import (
	"fmt"

	"github.com/colkit/rangeselect/column"
	"github.com/colkit/rangeselect/predicate"
	"github.com/colkit/rangeselect/result"
)

// ThetaSelect adapts a single-value comparison into a Select call, per the
// specification's operator mapping:
//
//	"=" | "=="        equi(v)
//	"<>" | "!="       equi(v), anti
//	"<"               (−∞, v), exclusive high
//	"<="              (−∞, v], inclusive high
//	">"               (v, +∞), exclusive low
//	">="              [v, +∞), inclusive low
//
// If v is the NIL sentinel for T, the result is always empty — NIL never
// participates in a theta comparison — and ThetaSelect never returns a NIL
// row regardless of operator.
func ThetaSelect[T column.Numeric](col *column.Column[T], cands *column.Candidates, v T, op string, opts ...Option) (*result.Result, error) {
	if col == nil {
		return nil, fmt.Errorf("%w: column is nil", ErrInvalidArgument)
	}
	if column.IsNil(v) {
		res := result.NewDense(0, 0)
		result.Finalize(res)
		return res, nil
	}

	p, err := thetaPredicate(v, op)
	if err != nil {
		return nil, err
	}
	return selectNormalized(col, cands, p, opts...)
}

func thetaPredicate[T column.Numeric](v T, op string) (predicate.Predicate[T], error) {
	switch op {
	case "=", "==":
		return predicate.Predicate[T]{TL: &v, LI: true, HI: true, Equi: true}, nil
	case "<>", "!=":
		return predicate.Predicate[T]{TL: &v, LI: true, HI: true, Equi: true, Anti: true}, nil
	case "<":
		return predicate.Predicate[T]{TH: &v, LI: false, HI: false}, nil
	case "<=":
		return predicate.Predicate[T]{TH: &v, LI: false, HI: true}, nil
	case ">":
		return predicate.Predicate[T]{TL: &v, LI: false, HI: false}, nil
	case ">=":
		return predicate.Predicate[T]{TL: &v, LI: true, HI: false}, nil
	default:
		return predicate.Predicate[T]{}, fmt.Errorf("%w: %q", ErrUnsupported, op)
	}
}
