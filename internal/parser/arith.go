package parser

import (
	"fmt"
	"math/big"

	"github.com/over-lang/over/internal/numeric"
	"github.com/over-lang/over/internal/over"
	"github.com/over-lang/over/internal/overerr"
	"github.com/over-lang/over/internal/token"
)

func isNumeric(v over.Value) bool {
	return v.Kind() == over.KindInt || v.Kind() == over.KindFrac
}

func toFrac(v over.Value) *big.Rat {
	if v.Kind() == over.KindFrac {
		return v.FracVal()
	}
	return numeric.FracFromInt(v.IntVal())
}

// evalBinary applies an arithmetic operator during parsing, promoting
// Int to Frac wherever either side is already a Frac. Two Int operands
// stay Int except under '/', which always performs true (rational)
// division; '%' is defined only between two Int operands (spec §4.1,
// Open Question: Int/Frac interaction).
func evalBinary(op token.Type, left, right over.Value, pos token.Position) (over.Value, error) {
	if !isNumeric(left) || !isNumeric(right) {
		return over.Value{}, overerr.New(overerr.ArithmeticError,
			fmt.Sprintf("incompatible variant: cannot apply %s to %s and %s", op, left.Kind(), right.Kind()),
			"", pos)
	}

	bothInt := left.Kind() == over.KindInt && right.Kind() == over.KindInt

	if op == token.PERCENT {
		if !bothInt {
			return over.Value{}, overerr.New(overerr.ArithmeticError, "'%' requires two Int operands", "", pos)
		}
		r, err := numeric.ModInt(left.IntVal(), right.IntVal())
		if err != nil {
			return over.Value{}, overerr.New(overerr.ArithmeticError, err.Error(), "", pos)
		}
		return over.Int(r), nil
	}

	if bothInt && op != token.SLASH {
		var r *big.Int
		switch op {
		case token.PLUS:
			r = numeric.AddInt(left.IntVal(), right.IntVal())
		case token.MINUS:
			r = numeric.SubInt(left.IntVal(), right.IntVal())
		case token.STAR:
			r = numeric.MulInt(left.IntVal(), right.IntVal())
		}
		return over.Int(r), nil
	}

	lf, rf := toFrac(left), toFrac(right)
	switch op {
	case token.PLUS:
		return over.Frac(numeric.AddFrac(lf, rf)), nil
	case token.MINUS:
		return over.Frac(numeric.SubFrac(lf, rf)), nil
	case token.STAR:
		return over.Frac(numeric.MulFrac(lf, rf)), nil
	case token.SLASH:
		r, err := numeric.DivFrac(lf, rf)
		if err != nil {
			return over.Value{}, overerr.New(overerr.ArithmeticError, err.Error(), "", pos)
		}
		return over.Frac(r), nil
	}
	return over.Value{}, overerr.New(overerr.ArithmeticError, fmt.Sprintf("unknown operator %s", op), "", pos)
}
