package parser

import (
	"fmt"
	"strings"

	"github.com/over-lang/over/internal/numeric"
	"github.com/over-lang/over/internal/over"
	"github.com/over-lang/over/internal/overerr"
	"github.com/over-lang/over/internal/token"
)

// splitSign peels an optional leading '+'/'-' off a numeric literal's raw
// text, returning +1/-1 and the remainder.
func splitSign(s string) (int, string) {
	if strings.HasPrefix(s, "+") {
		return 1, s[1:]
	}
	if strings.HasPrefix(s, "-") {
		return -1, s[1:]
	}
	return 1, s
}

// evalNumber builds the Int or Frac value a NUMBER token denotes, per its
// recorded surface form (spec §4.1, §6.2). The surface form, not the
// reduced value, decides the resulting Kind: a fraction literal that
// happens to reduce to a whole number ("10/2") still produces a Frac.
func (p *Parser) evalNumber(tok token.Token) (over.Value, error) {
	lit := tok.Literal
	switch tok.NumberForm {
	case token.FormInt:
		n, ok := numeric.NewInt(lit)
		if !ok {
			return over.Value{}, p.errorAt(overerr.ParseError, fmt.Sprintf("invalid integer literal %q", lit), tok.Pos)
		}
		return over.Int(n), nil

	case token.FormFraction:
		sign, rest := splitSign(lit)
		idx := strings.IndexByte(rest, '/')
		numPart, denPart := rest[:idx], rest[idx+1:]
		if sign < 0 {
			numPart = "-" + numPart
		}
		r, err := numeric.ParseFraction(numPart, denPart)
		if err != nil {
			return over.Value{}, p.errorAt(overerr.ArithmeticError, err.Error(), tok.Pos)
		}
		return over.Frac(r), nil

	case token.FormDecimal:
		sign, rest := splitSign(lit)
		idx := strings.IndexAny(rest, ".,")
		intPart, fracPart := rest[:idx], rest[idx+1:]
		r, err := numeric.ParseDecimal(sign, intPart, fracPart)
		if err != nil {
			return over.Value{}, p.errorAt(overerr.ArithmeticError, err.Error(), tok.Pos)
		}
		return over.Frac(r), nil

	case token.FormMixed:
		sign, rest := splitSign(lit)
		i := 0
		for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
			i++
		}
		whole := rest[:i]
		sepRest := rest[i+1:]
		slash := strings.IndexByte(sepRest, '/')
		num, den := sepRest[:slash], sepRest[slash+1:]
		r, err := numeric.ParseMixed(sign, whole, num, den)
		if err != nil {
			return over.Value{}, p.errorAt(overerr.ArithmeticError, err.Error(), tok.Pos)
		}
		return over.Frac(r), nil
	}
	return over.Value{}, p.errorAt(overerr.ParseError, "unknown numeric form", tok.Pos)
}
