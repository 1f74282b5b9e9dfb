package parser

import (
	"fmt"
	"path/filepath"

	"github.com/over-lang/over/internal/include"
	"github.com/over-lang/over/internal/over"
	"github.com/over-lang/over/internal/overerr"
	"github.com/over-lang/over/internal/token"
)

// parseInclude handles "< [Kind] \"path\" >" (spec §4.5): Obj (the
// default) parses the target as a nested object, Str takes its raw
// contents verbatim, and Arr/Tup parse it as a whitespace-separated
// element sequence.
func (p *Parser) parseInclude(sc *scope) (over.Value, error) {
	startPos := p.cur.Pos
	p.advance() // consume '<'

	kind := "Obj"
	if p.cur.Type == token.KIND {
		kind = p.cur.Literal
		p.advance()
	}

	pathTok, err := p.expect(token.STRING, "include path string")
	if err != nil {
		return over.Value{}, err
	}
	if _, err := p.expect(token.GT, "'>' to close include"); err != nil {
		return over.Value{}, err
	}

	canonical, err := p.mgr.Enter(p.dir, pathTok.Literal)
	if err != nil {
		return over.Value{}, overerr.New(overerr.IncludeError, err.Error(), p.file, startPos)
	}
	defer p.mgr.Leave()

	if cached, ok := p.mgr.Cached(canonical); ok {
		return cached.Value, nil
	}

	content, err := p.mgr.Load(p.dir, canonical)
	if err != nil {
		return over.Value{}, overerr.New(overerr.IncludeError, err.Error(), p.file, startPos)
	}

	var val over.Value
	switch kind {
	case "Str":
		val = over.Str(content)
	case "Obj":
		val, err = ParseWithIncludes(content, canonical, p.mgr)
	case "Arr":
		val, err = parseSequence(content, canonical, p.mgr, true)
	case "Tup":
		val, err = parseSequence(content, canonical, p.mgr, false)
	default:
		err = overerr.New(overerr.IncludeError, fmt.Sprintf("unknown include kind %q", kind), p.file, startPos)
	}
	if err != nil {
		return over.Value{}, err
	}

	p.mgr.Cache(canonical, include.Result{Path: canonical, Value: val})
	return val, nil
}

// parseSequence parses an included file's content as a bare sequence of
// whitespace-separated values, for "< Arr "path" >" / "< Tup "path" >".
func parseSequence(source, file string, mgr *include.Manager, homogeneous bool) (over.Value, error) {
	p := newParser(source, file, filepath.Dir(file), mgr)
	root := over.NewObject(nil)
	sc := &scope{obj: root}

	elems, ty, err := p.parseElemList(sc, token.EOF, homogeneous)
	if err != nil {
		return over.Value{}, err
	}
	if p.cur.Type != token.EOF {
		return over.Value{}, p.errorAt(overerr.ParseError, "unexpected trailing input", p.cur.Pos)
	}

	if homogeneous {
		return over.Arr(elems, ty), nil
	}
	return over.Tup(elems), nil
}
