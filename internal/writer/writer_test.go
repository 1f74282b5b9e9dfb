package writer

import (
	"math/big"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/over-lang/over/internal/over"
)

func TestWriteTextScalars(t *testing.T) {
	obj := over.NewObject(nil)
	obj.Set("n", over.Null())
	obj.Set("ok", over.Bool(true))
	obj.Set("count", over.Int(big.NewInt(42)))
	obj.Set("half", over.Frac(big.NewRat(1, 2)))
	obj.Set("letter", over.Char('x'))
	obj.Set("greeting", over.Str("hi\tthere\n"))

	out, err := WriteText(over.ObjVal(obj))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"n: null", "ok: true", "count: 42", "half: 1/2",
		"letter: 'x'", `greeting: "hi\tthere\n"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q, got:\n%s", want, out)
		}
	}
}

func TestWriteTextFractionIsCanonicalized(t *testing.T) {
	obj := over.NewObject(nil)
	obj.Set("a", over.Frac(big.NewRat(2674, 20)))

	out, err := WriteText(over.ObjVal(obj))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "a: 1337/10") {
		t.Errorf("expected canonical 1337/10, got:\n%s", out)
	}
}

func TestWriteTextArrAndTupDelimiters(t *testing.T) {
	obj := over.NewObject(nil)
	obj.Set("arr", over.Arr([]over.Value{over.Int(big.NewInt(1)), over.Int(big.NewInt(2))}, over.Type{}))
	obj.Set("tup", over.Tup([]over.Value{over.Int(big.NewInt(1)), over.Str("x")}))

	out, err := WriteText(over.ObjVal(obj))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "arr: [1 2]") {
		t.Errorf("expected bracketed array, got:\n%s", out)
	}
	if !strings.Contains(out, `tup: (1 "x")`) {
		t.Errorf("expected parenthesized tuple, got:\n%s", out)
	}
}

func TestWriteTextParentBindingComesFirst(t *testing.T) {
	parent := over.NewObject(nil)
	parent.Set("a", over.Int(big.NewInt(1)))

	child := over.NewObject(parent)
	child.Set("b", over.Int(big.NewInt(2)))

	out, err := WriteText(over.ObjVal(child))
	if err != nil {
		t.Fatal(err)
	}
	parentIdx := strings.Index(out, "^:")
	fieldIdx := strings.Index(out, "b:")
	if parentIdx == -1 || fieldIdx == -1 || parentIdx > fieldIdx {
		t.Errorf("expected ^: binding before fields, got:\n%s", out)
	}
}

func TestWriteTextOmitsInheritedFields(t *testing.T) {
	parent := over.NewObject(nil)
	parent.Set("a", over.Int(big.NewInt(1)))
	child := over.NewObject(parent)
	child.Set("b", over.Int(big.NewInt(2)))

	out, err := WriteText(over.ObjVal(child))
	if err != nil {
		t.Fatal(err)
	}
	// "a" should appear only inside the inlined parent, not as a direct field
	// of the child (OwnField excludes inherited fields from the field loop).
	if strings.Count(out, "a: 1") != 1 {
		t.Errorf("expected inherited field to appear exactly once (in the parent), got:\n%s", out)
	}
}

func TestWriteTextRejectsNonObjRoot(t *testing.T) {
	_, err := WriteText(over.Int(big.NewInt(1)))
	if err == nil {
		t.Fatal("expected an error when the root value isn't an Obj")
	}
}

func TestWriteTextNestedObjectSnapshot(t *testing.T) {
	rect := over.NewObject(nil)
	rect.Set("width", over.Int(big.NewInt(4)))
	rect.Set("height", over.Int(big.NewInt(3)))
	rect.Set("area", over.Int(big.NewInt(12)))

	root := over.NewObject(nil)
	root.Set("rect", over.ObjVal(rect))

	out, err := WriteText(over.ObjVal(root))
	if err != nil {
		t.Fatal(err)
	}
	snaps.MatchSnapshot(t, out)
}

func TestEscapeStringNormalizesAndEscapes(t *testing.T) {
	obj := over.NewObject(nil)
	obj.Set("s", over.Str("a\"b\\c"))
	obj.Set("d", over.Str("é"))

	out, err := WriteText(over.ObjVal(obj))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `s: "a\"b\\c"`) {
		t.Errorf("expected escaped quote and backslash, got:\n%s", out)
	}
	if !strings.Contains(out, "d: \"é\"") {
		t.Errorf("expected decomposed e + acute to be written in NFC form, got:\n%s", out)
	}
}
