package lexer

import (
	"testing"

	"github.com/over-lang/over/internal/token"
)

func collect(t *testing.T, src string) []token.Token {
	t.Helper()
	l := New(src)
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return toks
}

func assertTypes(t *testing.T, src string, want ...token.Type) {
	t.Helper()
	toks := collect(t, src)
	if len(toks) != len(want) {
		var got []token.Type
		for _, tk := range toks {
			got = append(got, tk.Type)
		}
		t.Fatalf("source %q: got %d tokens %v, want %d %v", src, len(toks), got, len(want), want)
	}
	for i, w := range want {
		if toks[i].Type != w {
			t.Errorf("source %q: token %d = %s, want %s", src, i, toks[i].Type, w)
		}
	}
}

func TestPunctuation(t *testing.T) {
	assertTypes(t, "{}[]():^@.<>",
		token.LBRACE, token.RBRACE, token.LBRACK, token.RBRACK,
		token.LPAREN, token.RPAREN, token.COLON, token.CARET,
		token.AT, token.DOT, token.LT, token.GT, token.EOF)
}

func TestKeywordsAndIdents(t *testing.T) {
	toks := collect(t, "null true false foo Obj Str Arr Tup")
	wantTypes := []token.Type{token.NULL, token.TRUE, token.FALSE, token.IDENT, token.KIND, token.KIND, token.KIND, token.KIND, token.EOF}
	for i, w := range wantTypes {
		if toks[i].Type != w {
			t.Errorf("token %d = %s, want %s", i, toks[i].Type, w)
		}
	}
}

func TestWhitespaceIncludesCommas(t *testing.T) {
	assertTypes(t, "1, 2,3   4", token.NUMBER, token.NUMBER, token.NUMBER, token.NUMBER, token.EOF)
}

func TestLineComment(t *testing.T) {
	toks := collect(t, "1 # trailing comment\n2")
	if len(toks) != 3 || toks[0].Type != token.NUMBER || toks[1].Type != token.NUMBER || toks[2].Type != token.EOF {
		t.Fatalf("unexpected tokens: %+v", toks)
	}
	if toks[1].Literal != "2" {
		t.Errorf("expected second number to be 2, got %s", toks[1].Literal)
	}
}

func TestStringEscapes(t *testing.T) {
	toks := collect(t, `"a\nb\tc\"d\\e"`)
	want := "a\nb\tc\"d\\e"
	if toks[0].Type != token.STRING || toks[0].Literal != want {
		t.Fatalf("got %q, want %q", toks[0].Literal, want)
	}
}

func TestCharLiteral(t *testing.T) {
	toks := collect(t, `'x' '\n' '\''`)
	want := []string{"x", "\n", "'"}
	for i, w := range want {
		if toks[i].Type != token.CHAR || toks[i].Literal != w {
			t.Errorf("char %d = %q, want %q", i, toks[i].Literal, w)
		}
	}
}

func TestIntegerLiteral(t *testing.T) {
	toks := collect(t, "42")
	if toks[0].Type != token.NUMBER || toks[0].NumberForm != token.FormInt || toks[0].Literal != "42" {
		t.Fatalf("got %+v", toks[0])
	}
}

func TestFractionLiteral(t *testing.T) {
	toks := collect(t, "1/2")
	if toks[0].Type != token.NUMBER || toks[0].NumberForm != token.FormFraction || toks[0].Literal != "1/2" {
		t.Fatalf("got %+v", toks[0])
	}
}

func TestDecimalLiteralForms(t *testing.T) {
	cases := []string{"5.", ".5", "133.70", "133,70"}
	for _, src := range cases {
		toks := collect(t, src)
		if toks[0].Type != token.NUMBER || toks[0].NumberForm != token.FormDecimal {
			t.Errorf("source %q: got %+v, want decimal", src, toks[0])
		}
	}
}

func TestMixedLiteral(t *testing.T) {
	cases := []string{"5,1/4", "5+1/4", "5-1/4", "-5,1/4"}
	for _, src := range cases {
		toks := collect(t, src)
		if toks[0].Type != token.NUMBER || toks[0].NumberForm != token.FormMixed || toks[0].Literal != src {
			t.Errorf("source %q: got %+v, want mixed literal covering the whole source", src, toks[0])
		}
	}
}

func TestLeadingSignOnBareDecimal(t *testing.T) {
	toks := collect(t, "+4 -.0")
	if toks[0].Type != token.NUMBER || toks[0].NumberForm != token.FormInt || toks[0].Literal != "+4" {
		t.Fatalf("got %+v", toks[0])
	}
	if toks[1].Type != token.NUMBER || toks[1].NumberForm != token.FormDecimal || toks[1].Literal != "-.0" {
		t.Fatalf("got %+v", toks[1])
	}
}

func TestArithmeticAdjacency(t *testing.T) {
	// Glued: binary operator.
	assertTypes(t, "x-y", token.IDENT, token.MINUS, token.IDENT, token.EOF)
	assertTypes(t, "x+y", token.IDENT, token.PLUS, token.IDENT, token.EOF)
	assertTypes(t, "x*y", token.IDENT, token.STAR, token.IDENT, token.EOF)

	// Space before: the sign starts a fresh, separately-lexed number.
	toks := collect(t, "x -5")
	if toks[0].Type != token.IDENT {
		t.Fatalf("got %+v", toks[0])
	}
	if toks[1].Type != token.NUMBER || toks[1].Literal != "-5" {
		t.Fatalf("expected a signed number token, got %+v", toks[1])
	}
}

func TestDotPathDoesNotMergeWithDigits(t *testing.T) {
	// "tup.0.name" must lex as IDENT DOT NUMBER DOT IDENT, never folding
	// the ".0." into a decimal literal.
	assertTypes(t, "tup.0.name",
		token.IDENT, token.DOT, token.NUMBER, token.DOT, token.IDENT, token.EOF)
}

func TestBOMIsStripped(t *testing.T) {
	src := "\xEF\xBB\xBFnull"
	toks := collect(t, src)
	if toks[0].Type != token.NULL {
		t.Fatalf("expected BOM to be stripped and null recognized, got %+v", toks[0])
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	l := New("1 2 3")
	first := l.Peek(0)
	second := l.Peek(1)
	if first.Literal != "1" || second.Literal != "2" {
		t.Fatalf("Peek(0)=%q Peek(1)=%q, want 1, 2", first.Literal, second.Literal)
	}
	if got := l.NextToken(); got.Literal != "1" {
		t.Fatalf("NextToken after Peek = %q, want 1", got.Literal)
	}
	if got := l.NextToken(); got.Literal != "2" {
		t.Fatalf("NextToken after Peek = %q, want 2", got.Literal)
	}
}

func TestIllegalCharacterReported(t *testing.T) {
	l := New("$")
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("got %+v, want ILLEGAL", tok)
	}
	if len(l.Errors()) == 0 {
		t.Fatal("expected a lexical error to be recorded")
	}
}
