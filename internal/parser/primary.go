package parser

import (
	"fmt"
	"strconv"

	"github.com/over-lang/over/internal/over"
	"github.com/over-lang/over/internal/overerr"
	"github.com/over-lang/over/internal/token"
)

func (p *Parser) parsePrimary(sc *scope) (over.Value, error) {
	tok := p.cur
	switch tok.Type {
	case token.NULL:
		p.advance()
		return over.Null(), nil

	case token.TRUE:
		p.advance()
		return over.Bool(true), nil

	case token.FALSE:
		p.advance()
		return over.Bool(false), nil

	case token.NUMBER:
		p.advance()
		return p.evalNumber(tok)

	case token.STRING:
		p.advance()
		return over.Str(tok.Literal), nil

	case token.CHAR:
		p.advance()
		r := []rune(tok.Literal)
		if len(r) != 1 {
			return over.Value{}, p.errorAt(overerr.ParseError, "character literal must contain exactly one scalar", tok.Pos)
		}
		return over.Char(r[0]), nil

	case token.IDENT:
		p.advance()
		v, ok := sc.resolve(tok.Literal)
		if !ok {
			return over.Value{}, p.errorAt(overerr.NameError, fmt.Sprintf("undefined reference %q", tok.Literal), tok.Pos)
		}
		return p.parsePostfix(v, sc)

	case token.AT:
		p.advance()
		nameTok, err := p.expect(token.IDENT, "identifier after '@'")
		if err != nil {
			return over.Value{}, err
		}
		v, ok := p.globals[nameTok.Literal]
		if !ok {
			return over.Value{}, p.errorAt(overerr.NameError, fmt.Sprintf("undefined global \"@%s\"", nameTok.Literal), nameTok.Pos)
		}
		return p.parsePostfix(v, sc)

	case token.LBRACK:
		return p.parseArray(sc)

	case token.LPAREN:
		return p.parseTuple(sc)

	case token.LBRACE:
		return p.parseObject(sc)

	case token.LT:
		return p.parseInclude(sc)

	default:
		return over.Value{}, p.errorAt(overerr.ParseError, fmt.Sprintf("unexpected token %s", tok.Type), tok.Pos)
	}
}

// parsePostfix chases a dotted path from an already-resolved base value:
// ".name" indexes an Obj field (falling back through its parent chain),
// ".N" indexes an Arr/Tup element (spec §3 "dotted access").
func (p *Parser) parsePostfix(base over.Value, sc *scope) (over.Value, error) {
	for p.cur.Type == token.DOT {
		p.advance()
		switch p.cur.Type {
		case token.IDENT:
			seg := p.cur
			p.advance()
			if base.Kind() != over.KindObj {
				return over.Value{}, p.errorAt(overerr.TypeError, fmt.Sprintf("cannot access field %q on a %s", seg.Literal, base.Kind()), seg.Pos)
			}
			v, ok := base.ObjVal().Get(seg.Literal)
			if !ok {
				return over.Value{}, p.errorAt(overerr.NameError, fmt.Sprintf("undefined field %q", seg.Literal), seg.Pos)
			}
			base = v

		case token.NUMBER:
			seg := p.cur
			p.advance()
			if seg.NumberForm != token.FormInt {
				return over.Value{}, p.errorAt(overerr.ParseError, "index must be a plain non-negative integer", seg.Pos)
			}
			idx, err := strconv.Atoi(seg.Literal)
			if err != nil || idx < 0 {
				return over.Value{}, p.errorAt(overerr.IndexError, "index must be a non-negative integer", seg.Pos)
			}
			switch base.Kind() {
			case over.KindArr, over.KindTup:
				elems := base.Elems()
				if idx >= len(elems) {
					return over.Value{}, p.errorAt(overerr.IndexError, fmt.Sprintf("index %d out of range (length %d)", idx, len(elems)), seg.Pos)
				}
				base = elems[idx]
			default:
				return over.Value{}, p.errorAt(overerr.TypeError, fmt.Sprintf("cannot index a %s", base.Kind()), seg.Pos)
			}

		default:
			return over.Value{}, p.errorAt(overerr.ParseError, "expected a field name or index after '.'", p.cur.Pos)
		}
	}
	return base, nil
}
