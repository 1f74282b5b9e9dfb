package over

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestParseTextAndWriteTextRoundTrip(t *testing.T) {
	v, err := ParseText(`width: 4 height: 3 area: width*height`)
	if err != nil {
		t.Fatal(err)
	}
	out, err := WriteText(v)
	if err != nil {
		t.Fatal(err)
	}

	reparsed, err := ParseText(out)
	if err != nil {
		t.Fatalf("re-parsing writer output failed: %v\noutput was:\n%s", err, out)
	}
	area, ok := reparsed.ObjVal().Get("area")
	if !ok || area.IntVal().Int64() != 12 {
		t.Fatalf("area = %v ok=%v after round-trip, want 12", area, ok)
	}
}

func TestParseFileReadsFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shape.over")
	if err := os.WriteFile(path, []byte(`width: 2 height: 5 area: width*height`), 0644); err != nil {
		t.Fatal(err)
	}

	v, err := ParseFile(path)
	if err != nil {
		t.Fatal(err)
	}
	area, ok := v.ObjVal().Get("area")
	if !ok || area.IntVal().Int64() != 10 {
		t.Fatalf("area = %v ok=%v, want 10", area, ok)
	}
}

type stubLoader map[string]string

func (m stubLoader) Load(path string) (string, error) {
	s, ok := m[path]
	if !ok {
		return "", fmt.Errorf("no such file: %s", path)
	}
	return s, nil
}

func (m stubLoader) Canonicalize(fromDir, path string) string { return path }

func TestParseFileWithLoaderUsesCustomLoaderForIncludes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "root.over")
	if err := os.WriteFile(path, []byte(`greeting: < Str "greeting.txt" >`), 0644); err != nil {
		t.Fatal(err)
	}

	loader := stubLoader{"greeting.txt": "hello from the loader"}
	v, err := ParseFileWithLoader(path, loader)
	if err != nil {
		t.Fatal(err)
	}
	greeting, ok := v.ObjVal().Get("greeting")
	if !ok || greeting.StrVal() != "hello from the loader" {
		t.Fatalf("greeting = %v ok=%v, want the stub loader's content", greeting, ok)
	}
}

func TestWriteFileWritesReparseableText(t *testing.T) {
	v, err := ParseText(`a: 1 b: "x"`)
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "out.over")
	if err := WriteFile(path, v); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	reparsed, err := ParseText(string(data))
	if err != nil {
		t.Fatalf("re-parsing the written file failed: %v", err)
	}
	a, ok := reparsed.ObjVal().Get("a")
	if !ok || a.IntVal().Int64() != 1 {
		t.Fatalf("a = %v ok=%v, want 1", a, ok)
	}
}
