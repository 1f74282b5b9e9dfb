// Package writer serializes an over.Value tree back to canonical OVER
// text (spec §4.6), and provides an atomic on-disk write so a crash or a
// concurrent reader never observes a half-written file.
package writer

import (
	"fmt"
	"strings"

	"github.com/google/renameio/v2"
	"golang.org/x/text/unicode/norm"

	"github.com/over-lang/over/internal/over"
)

const indentUnit = "  "

// WriteText renders v, which must be an Obj (the root of a parse), as
// canonical OVER source text.
func WriteText(v over.Value) (string, error) {
	if v.Kind() != over.KindObj {
		return "", fmt.Errorf("writer: root value must be an Obj, got %s", v.Kind())
	}
	var sb strings.Builder
	writeObjectBody(&sb, v.ObjVal(), 0)
	return sb.String(), nil
}

func writeIndent(sb *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		sb.WriteString(indentUnit)
	}
}

// writeObjectBody emits a parent binding (if any) before fields, in
// their original insertion order (spec §4.6 "parent-first ^: binding").
// The parent is inlined rather than referenced by name: a Value tree
// retains the shared *Object pointer, not the surface path that produced
// it, so re-serialization necessarily flattens aliasing into a literal
// copy (recorded as an open decision in DESIGN.md).
func writeObjectBody(sb *strings.Builder, obj *over.Object, depth int) {
	if parent := obj.Parent(); parent != nil {
		writeIndent(sb, depth)
		sb.WriteString("^: ")
		writeObjectInline(sb, parent, depth)
		sb.WriteByte('\n')
	}
	for _, key := range obj.Keys() {
		v, _ := obj.OwnField(key)
		writeIndent(sb, depth)
		sb.WriteString(key)
		sb.WriteString(": ")
		writeValue(sb, v, depth)
		sb.WriteByte('\n')
	}
}

func writeObjectInline(sb *strings.Builder, obj *over.Object, depth int) {
	sb.WriteString("{\n")
	writeObjectBody(sb, obj, depth+1)
	writeIndent(sb, depth)
	sb.WriteByte('}')
}

func writeValue(sb *strings.Builder, v over.Value, depth int) {
	switch v.Kind() {
	case over.KindNull:
		sb.WriteString("null")
	case over.KindBool:
		if v.Bool() {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case over.KindInt:
		sb.WriteString(v.IntVal().String())
	case over.KindFrac:
		r := v.FracVal()
		sb.WriteString(r.Num().String())
		sb.WriteByte('/')
		sb.WriteString(r.Denom().String())
	case over.KindChar:
		sb.WriteByte('\'')
		sb.WriteString(escapeRune(v.CharVal(), '\''))
		sb.WriteByte('\'')
	case over.KindStr:
		sb.WriteByte('"')
		sb.WriteString(escapeString(v.StrVal()))
		sb.WriteByte('"')
	case over.KindArr, over.KindTup:
		open, close := '[', ']'
		if v.Kind() == over.KindTup {
			open, close = '(', ')'
		}
		sb.WriteRune(open)
		for i, e := range v.Elems() {
			if i > 0 {
				sb.WriteByte(' ')
			}
			writeValue(sb, e, depth)
		}
		sb.WriteRune(close)
	case over.KindObj:
		writeObjectInline(sb, v.ObjVal(), depth)
	}
}

// escapeString normalizes s to NFC and escapes the characters spec §4.2
// reserves in a string literal.
func escapeString(s string) string {
	s = norm.NFC.String(s)
	var sb strings.Builder
	for _, r := range s {
		sb.WriteString(escapeRune(r, '"'))
	}
	return sb.String()
}

func escapeRune(r rune, quote rune) string {
	switch r {
	case quote:
		return "\\" + string(quote)
	case '\\':
		return `\\`
	case '\n':
		return `\n`
	case '\r':
		return `\r`
	case '\t':
		return `\t`
	case 0:
		return `\0`
	default:
		return string(r)
	}
}

// WriteFile renders v and writes it to path atomically: the new content
// lands in a temp file in the same directory, then gets renamed into
// place, so a concurrent reader or a crash mid-write never observes a
// partial file.
func WriteFile(path string, v over.Value) error {
	text, err := WriteText(v)
	if err != nil {
		return err
	}
	return renameio.WriteFile(path, []byte(text), 0644)
}
