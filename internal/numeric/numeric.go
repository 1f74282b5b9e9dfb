// Package numeric implements the arbitrary-precision integer and exact
// rational core described in spec §4.1. It is the one component built
// directly on the standard library rather than a corpus dependency — no
// repo in the reference corpus imports or vendors a third-party bignum
// library, and math/big is the idiomatic Go answer to this concern.
package numeric

import (
	"fmt"
	"math/big"
	"strings"
)

// ErrDivByZero is returned by Div/Mod when the divisor is zero.
var ErrDivByZero = fmt.Errorf("division by zero")

// NewInt parses a base-10 integer string (with optional leading sign) into
// a big.Int. The lexer guarantees the string is already digit-only.
func NewInt(digits string) (*big.Int, bool) {
	n := new(big.Int)
	_, ok := n.SetString(digits, 10)
	return n, ok
}

// AddInt, SubInt, MulInt perform exact bigint arithmetic. They never fail.
func AddInt(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) }
func SubInt(a, b *big.Int) *big.Int { return new(big.Int).Sub(a, b) }
func MulInt(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) }

// DivInt performs truncating integer division, erroring on a zero divisor
// instead of panicking the way big.Int.Quo does (spec §4.1).
func DivInt(a, b *big.Int) (*big.Int, error) {
	if b.Sign() == 0 {
		return nil, ErrDivByZero
	}
	return new(big.Int).Quo(a, b), nil
}

// ModInt performs truncating integer remainder, erroring on a zero divisor.
func ModInt(a, b *big.Int) (*big.Int, error) {
	if b.Sign() == 0 {
		return nil, ErrDivByZero
	}
	return new(big.Int).Rem(a, b), nil
}

// CmpInt compares two bigints, returning -1, 0, or 1.
func CmpInt(a, b *big.Int) int { return a.Cmp(b) }

// NewFrac builds a canonical rational from a numerator and denominator.
// big.Rat keeps the fraction reduced to lowest terms with a positive
// denominator internally, which is exactly invariant §3.1's "Frac is
// canonical: denominator > 0; gcd(|num|, den) = 1".
func NewFrac(num, den *big.Int) (*big.Rat, error) {
	if den.Sign() == 0 {
		return nil, ErrDivByZero
	}
	return new(big.Rat).SetFrac(num, den), nil
}

// FracFromInt lifts a bigint into the rational field as n/1.
func FracFromInt(n *big.Int) *big.Rat {
	return new(big.Rat).SetInt(n)
}

func AddFrac(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }
func SubFrac(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }
func MulFrac(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }

// DivFrac divides two rationals, erroring on division by zero.
func DivFrac(a, b *big.Rat) (*big.Rat, error) {
	if b.Sign() == 0 {
		return nil, ErrDivByZero
	}
	return new(big.Rat).Quo(a, b), nil
}

// IsIntegral reports whether a rational's reduced denominator is 1, i.e.
// it equals some bigint exactly.
func IsIntegral(r *big.Rat) bool {
	return r.IsInt()
}

// ParseDecimal converts a decimal literal "[sign]D[.,]F" into a rational,
// per spec §4.1: sign * (D * 10^|F| + F) / 10^|F|, reduced. Either D or F
// may be empty but not both (the lexer already rejects the all-empty case
// by never emitting such a token).
func ParseDecimal(sign int, intPart, fracPart string) (*big.Rat, error) {
	if intPart == "" && fracPart == "" {
		return nil, fmt.Errorf("decimal literal has no digits")
	}

	digits := intPart + fracPart
	if digits == "" {
		digits = "0"
	}
	magnitude := new(big.Int)
	if _, ok := magnitude.SetString(digits, 10); !ok {
		return nil, fmt.Errorf("invalid decimal literal %q.%q", intPart, fracPart)
	}

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(len(fracPart))), nil)
	r := new(big.Rat).SetFrac(magnitude, scale)
	if sign < 0 {
		r.Neg(r)
	}
	return r, nil
}

// ParseFraction converts "I/J" into a rational, rejecting J == 0.
func ParseFraction(numDigits, denDigits string) (*big.Rat, error) {
	num, ok1 := NewInt(numDigits)
	den, ok2 := NewInt(denDigits)
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("invalid fraction literal %q/%q", numDigits, denDigits)
	}
	return NewFrac(num, den)
}

// ParseMixed converts a mixed literal "A,B/C" / "A+B/C" / "A-B/C" into a
// rational: sign(A) * (|A| + B/C), using the displayed sign of A (spec
// §4.1). wholeSign is -1 if A was written with a leading '-', else +1.
func ParseMixed(wholeSign int, wholeDigits, numDigits, denDigits string) (*big.Rat, error) {
	whole, ok1 := NewInt(wholeDigits)
	num, ok2 := NewInt(numDigits)
	den, ok3 := NewInt(denDigits)
	if !ok1 || !ok2 || !ok3 {
		return nil, fmt.Errorf("invalid mixed literal %q %q/%q", wholeDigits, numDigits, denDigits)
	}
	frac, err := NewFrac(num, den)
	if err != nil {
		return nil, err
	}
	r := new(big.Rat).Add(FracFromInt(whole), frac)
	if wholeSign < 0 {
		r.Neg(r)
	}
	return r, nil
}

// FormatFrac renders a rational in the writer's canonical N/D form
// (spec §4.6): integer rationals still write as N/1.
func FormatFrac(r *big.Rat) string {
	var sb strings.Builder
	sb.WriteString(r.Num().String())
	sb.WriteByte('/')
	sb.WriteString(r.Denom().String())
	return sb.String()
}
