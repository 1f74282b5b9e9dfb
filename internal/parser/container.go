package parser

import (
	"fmt"

	"github.com/over-lang/over/internal/over"
	"github.com/over-lang/over/internal/overerr"
	"github.com/over-lang/over/internal/token"
)

func (p *Parser) parseArray(sc *scope) (over.Value, error) {
	p.advance() // consume '['
	elems, ty, err := p.parseElemList(sc, token.RBRACK, true)
	if err != nil {
		return over.Value{}, err
	}
	if _, err := p.expect(token.RBRACK, "']'"); err != nil {
		return over.Value{}, err
	}
	return over.Arr(elems, ty), nil
}

func (p *Parser) parseTuple(sc *scope) (over.Value, error) {
	p.advance() // consume '('
	elems, _, err := p.parseElemList(sc, token.RPAREN, false)
	if err != nil {
		return over.Value{}, err
	}
	if _, err := p.expect(token.RPAREN, "')'"); err != nil {
		return over.Value{}, err
	}
	return over.Tup(elems), nil
}

// parseElemList scans whitespace-separated elements up to terminator.
// When homogeneous, every element after the first must join with the
// type accumulated from the elements before it (so an empty Arr(Any)
// element can be followed by an Arr(Int) one), or parsing fails
// immediately at the offending index
// (spec §3 "Arr is homogeneous", spec §8 "heterogeneous array rejection").
func (p *Parser) parseElemList(sc *scope, terminator token.Type, homogeneous bool) ([]over.Value, over.Type, error) {
	var elems []over.Value
	var ty over.Type

	for p.cur.Type != terminator && p.cur.Type != token.EOF {
		pos := p.cur.Pos
		v, err := p.parseAdditive(sc)
		if err != nil {
			return nil, over.Type{}, err
		}
		v = v.WithSource(pos)

		if homogeneous {
			vt := over.TypeOf(v)
			if len(elems) == 0 {
				ty = vt
			} else if joined, ok := over.Join(ty, vt); ok {
				ty = joined
			} else {
				return nil, over.Type{}, p.errorAt(overerr.TypeError,
					fmt.Sprintf("array element %d has type %s, incompatible with %s", len(elems), vt, ty), pos)
			}
		}
		elems = append(elems, v)
	}

	if homogeneous && len(elems) == 0 {
		ty = over.Any
	}
	return elems, ty, nil
}
