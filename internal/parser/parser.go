// Package parser implements OVER's recursive-descent parser/evaluator.
// Unlike a conventional two-phase parser-then-interpreter split, this
// parser evaluates directly into over.Value as it descends: a single
// top-down pass resolves variables, parent chains, and arithmetic, and
// produces a finished, immutable value tree with no separate AST stage
// (spec §2 "single top-down pass; forward references are errors").
package parser

import (
	"os"
	"path/filepath"

	"github.com/over-lang/over/internal/include"
	"github.com/over-lang/over/internal/lexer"
	"github.com/over-lang/over/internal/over"
	"github.com/over-lang/over/internal/overerr"
	"github.com/over-lang/over/internal/token"
)

// Parser holds the state for one file's single-pass parse. Nested
// include bodies get their own Parser (and their own globals table,
// since globals are a per-file namespace — spec §3 "Object"), but share
// the include.Manager so cycle detection and the parse cache span the
// whole include DAG.
type Parser struct {
	lex     *lexer.Lexer
	source  string
	file    string
	dir     string
	cur     token.Token
	prevEnd int

	globals map[string]over.Value
	mgr     *include.Manager
}

func newParser(source, file, dir string, mgr *include.Manager) *Parser {
	p := &Parser{
		lex:     lexer.New(source),
		source:  source,
		file:    file,
		dir:     dir,
		globals: make(map[string]over.Value),
		mgr:     mgr,
	}
	p.cur = p.lex.NextToken()
	p.prevEnd = p.cur.Pos.Offset
	return p
}

func (p *Parser) advance() {
	p.prevEnd = p.cur.Pos.Offset + len(p.cur.Literal)
	p.cur = p.lex.NextToken()
}

func (p *Parser) errorAt(kind overerr.Kind, msg string, pos token.Position) *overerr.Error {
	return overerr.New(kind, msg, p.file, pos)
}

func (p *Parser) expect(t token.Type, what string) (token.Token, error) {
	if p.cur.Type != t {
		return token.Token{}, p.errorAt(overerr.ParseError, "expected "+what, p.cur.Pos)
	}
	tok := p.cur
	p.advance()
	return tok, nil
}

// Parse parses OVER source text with no associated file path; includes
// are resolved relative to the current working directory.
func Parse(source string) (over.Value, error) {
	return ParseWithIncludes(source, "", include.NewManager(nil))
}

// ParseWithIncludes parses source, using mgr for include-cycle tracking
// and caching. file names the source for diagnostics and anchors
// relative include paths.
func ParseWithIncludes(source, file string, mgr *include.Manager) (over.Value, error) {
	if mgr == nil {
		mgr = include.NewManager(nil)
	}
	dir := "."
	if file != "" {
		dir = filepath.Dir(file)
	}

	p := newParser(source, file, dir, mgr)
	root := over.NewObject(nil)
	sc := &scope{obj: root}

	if err := p.parseObjectBody(root, sc, token.EOF); err != nil {
		return over.Value{}, err
	}
	if p.cur.Type != token.EOF {
		return over.Value{}, p.errorAt(overerr.ParseError, "unexpected trailing input", p.cur.Pos)
	}
	return over.ObjVal(root), nil
}

// ParseFile reads path from disk and parses it, anchoring include
// resolution at its directory. The top-level file is itself pushed onto
// the manager's active stack so that a self-including file is caught the
// same way a longer include cycle is (spec §8 "include cycle rejection").
func ParseFile(path string, mgr *include.Manager) (over.Value, error) {
	if mgr == nil {
		mgr = include.NewManager(nil)
	}
	canonical, err := mgr.Enter(".", path)
	if err != nil {
		return over.Value{}, err
	}
	defer mgr.Leave()

	data, err := os.ReadFile(canonical)
	if err != nil {
		return over.Value{}, err
	}
	return ParseWithIncludes(string(data), canonical, mgr)
}
