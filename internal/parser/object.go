package parser

import (
	"fmt"

	"github.com/over-lang/over/internal/over"
	"github.com/over-lang/over/internal/overerr"
	"github.com/over-lang/over/internal/token"
)

func (p *Parser) parseObject(sc *scope) (over.Value, error) {
	p.advance() // consume '{'
	obj := over.NewObject(nil)
	childScope := sc.child(obj)
	if err := p.parseObjectBody(obj, childScope, token.RBRACE); err != nil {
		return over.Value{}, err
	}
	if _, err := p.expect(token.RBRACE, "'}'"); err != nil {
		return over.Value{}, err
	}
	return over.ObjVal(obj), nil
}

// parseObjectBody parses the bindings inside an object literal (or the
// implicit root object) up to terminator: at most one "^:" parent
// binding, any number of "@name:" global bindings, and any number of
// "name:" field bindings (spec §3 "Object", §4.4).
func (p *Parser) parseObjectBody(obj *over.Object, sc *scope, terminator token.Type) error {
	parentSet := false

	for p.cur.Type != terminator && p.cur.Type != token.EOF {
		switch p.cur.Type {
		case token.CARET:
			if parentSet {
				return p.errorAt(overerr.ParseError, "object may have at most one parent binding", p.cur.Pos)
			}
			p.advance()
			if _, err := p.expect(token.COLON, "':' after '^'"); err != nil {
				return err
			}
			val, err := p.parseExpr(sc)
			if err != nil {
				return err
			}
			if val.Kind() != over.KindObj {
				return p.errorAt(overerr.TypeError, fmt.Sprintf("parent binding must be an Obj, got %s", val.Kind()), p.cur.Pos)
			}
			obj.SetParent(val.ObjVal())
			parentSet = true

		case token.AT:
			p.advance()
			nameTok, err := p.expect(token.IDENT, "identifier after '@'")
			if err != nil {
				return err
			}
			if _, err := p.expect(token.COLON, "':' after global name"); err != nil {
				return err
			}
			val, err := p.parseExpr(sc)
			if err != nil {
				return err
			}
			if _, exists := p.globals[nameTok.Literal]; exists {
				return p.errorAt(overerr.NameError, fmt.Sprintf("global \"@%s\" already defined", nameTok.Literal), nameTok.Pos)
			}
			p.globals[nameTok.Literal] = val.WithSource(nameTok.Pos)

		case token.IDENT:
			nameTok := p.cur
			p.advance()
			if _, err := p.expect(token.COLON, "':' after field name"); err != nil {
				return err
			}
			if obj.Has(nameTok.Literal) {
				return p.errorAt(overerr.NameError, fmt.Sprintf("field %q already defined", nameTok.Literal), nameTok.Pos)
			}
			val, err := p.parseExpr(sc)
			if err != nil {
				return err
			}
			val = val.WithSource(nameTok.Pos)
			if val.Kind() == over.KindObj {
				val.ObjVal().Path = append(append([]string{}, obj.Path...), nameTok.Literal)
			}
			obj.Set(nameTok.Literal, val)

		default:
			return p.errorAt(overerr.ParseError, "expected a field name, '@', or '^'", p.cur.Pos)
		}
	}
	return nil
}
