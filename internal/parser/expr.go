package parser

import (
	"github.com/over-lang/over/internal/over"
	"github.com/over-lang/over/internal/overerr"
	"github.com/over-lang/over/internal/token"
)

// parseExpr is the entry point for a value position: a field's value, an
// array/tuple element, a parent binding's target.
func (p *Parser) parseExpr(sc *scope) (over.Value, error) {
	return p.parseAdditive(sc)
}

// leftAdjacent reports whether tok immediately follows the end of the
// previously consumed token, with no intervening whitespace — the left
// half of spec §4.2's "Operator adjacency rule" for +, -, *, /, %. The
// right half is checked inline in parseAdditive and parseMultiplicative.
func (p *Parser) leftAdjacent(tok token.Token) bool {
	return tok.Pos.Offset == p.prevEnd
}

func (p *Parser) parseAdditive(sc *scope) (over.Value, error) {
	left, err := p.parseMultiplicative(sc)
	if err != nil {
		return over.Value{}, err
	}

	for p.cur.Type == token.PLUS || p.cur.Type == token.MINUS {
		opTok := p.cur
		if !p.leftAdjacent(opTok) {
			break
		}
		opEnd := opTok.Pos.Offset + len(opTok.Literal)
		p.advance()
		if p.cur.Pos.Offset != opEnd {
			return over.Value{}, p.errorAt(overerr.ParseError, "operator must not be separated from its operand by whitespace", opTok.Pos)
		}
		right, err := p.parseMultiplicative(sc)
		if err != nil {
			return over.Value{}, err
		}
		left, err = evalBinary(opTok.Type, left, right, opTok.Pos)
		if err != nil {
			return over.Value{}, err
		}
	}
	return left, nil
}

func (p *Parser) parseMultiplicative(sc *scope) (over.Value, error) {
	left, err := p.parsePrimary(sc)
	if err != nil {
		return over.Value{}, err
	}

	for p.cur.Type == token.STAR || p.cur.Type == token.SLASH || p.cur.Type == token.PERCENT {
		opTok := p.cur
		if !p.leftAdjacent(opTok) {
			break
		}
		opEnd := opTok.Pos.Offset + len(opTok.Literal)
		p.advance()
		if p.cur.Pos.Offset != opEnd {
			return over.Value{}, p.errorAt(overerr.ParseError, "operator must not be separated from its operand by whitespace", opTok.Pos)
		}
		right, err := p.parsePrimary(sc)
		if err != nil {
			return over.Value{}, err
		}
		left, err = evalBinary(opTok.Type, left, right, opTok.Pos)
		if err != nil {
			return over.Value{}, err
		}
	}
	return left, nil
}
