// Package overerr defines OVER's diagnostic error types and their
// gutter-and-caret rendering, adapted from a compiler-style error
// formatter: a header line naming the file and position, a numbered
// source line, and a caret pointing at the offending column.
package overerr

import (
	"fmt"
	"strings"

	"github.com/over-lang/over/internal/token"
)

// Kind classifies an Error by the subsystem that raised it (spec §7
// "Error categories").
type Kind int

const (
	LexError Kind = iota
	ParseError
	NameError
	TypeError
	IndexError
	ArithmeticError
	IncludeError
)

func (k Kind) String() string {
	switch k {
	case LexError:
		return "LexError"
	case ParseError:
		return "ParseError"
	case NameError:
		return "NameError"
	case TypeError:
		return "TypeError"
	case IndexError:
		return "IndexError"
	case ArithmeticError:
		return "ArithmeticError"
	case IncludeError:
		return "IncludeError"
	}
	return "Error"
}

// Error is a single OVER diagnostic. The library never logs or panics
// across package boundaries (spec §7 "Error handling design"). The
// parser reports its lexing, parsing and evaluation failures as one of
// these; parser.ParseFile returns a failed read of the top-level file
// as the plain os error, and the writer returns plain errors.
type Error struct {
	Kind    Kind
	Message string
	File    string
	Pos     token.Position
	Path    []string // field path breadcrumb, e.g. ["foo", "bar"]
}

func (e *Error) Error() string {
	loc := e.File
	if loc == "" {
		loc = "<input>"
	}
	msg := fmt.Sprintf("%s: %s at %s:%s", e.Kind, e.Message, loc, e.Pos)
	if len(e.Path) > 0 {
		msg += fmt.Sprintf(" (at %s)", strings.Join(e.Path, "."))
	}
	return msg
}

// New constructs an Error.
func New(kind Kind, msg string, file string, pos token.Position) *Error {
	return &Error{Kind: kind, Message: msg, File: file, Pos: pos}
}

// WithPath attaches a field-path breadcrumb, returning the same error for
// chaining at the call site that discovered the path.
func (e *Error) WithPath(path []string) *Error {
	e.Path = path
	return e
}

// Format renders a single-line header, a gutter-numbered source line, and
// a caret under the offending column — the same three-part layout a
// compiler frontend uses to point at a diagnosis without an IDE.
func (e *Error) Format(source string) string {
	var sb strings.Builder

	file := e.File
	if file == "" {
		file = "<input>"
	}
	fmt.Fprintf(&sb, "%s in %s:%d:%d\n", e.Kind, file, e.Pos.Line, e.Pos.Column)

	lines := strings.Split(source, "\n")
	if e.Pos.Line >= 1 && e.Pos.Line <= len(lines) {
		srcLine := lines[e.Pos.Line-1]
		gutter := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(gutter)
		sb.WriteString(srcLine)
		sb.WriteByte('\n')

		caretCol := e.Pos.Column
		if caretCol < 1 {
			caretCol = 1
		}
		sb.WriteString(strings.Repeat(" ", len(gutter)+caretCol-1))
		sb.WriteString("^\n")
	}

	sb.WriteString(e.Message)
	if len(e.Path) > 0 {
		fmt.Fprintf(&sb, " (at %s)", strings.Join(e.Path, "."))
	}
	return sb.String()
}

// FormatWithContext is Format with contextLines of surrounding source
// printed above and below the offending line, for longer diagnostics
// shown by the CLI.
func (e *Error) FormatWithContext(source string, contextLines int) string {
	lines := strings.Split(source, "\n")
	if e.Pos.Line < 1 || e.Pos.Line > len(lines) {
		return e.Format(source)
	}

	var sb strings.Builder
	file := e.File
	if file == "" {
		file = "<input>"
	}
	fmt.Fprintf(&sb, "%s in %s:%d:%d\n", e.Kind, file, e.Pos.Line, e.Pos.Column)

	start := e.Pos.Line - contextLines
	if start < 1 {
		start = 1
	}
	end := e.Pos.Line + contextLines
	if end > len(lines) {
		end = len(lines)
	}

	for ln := start; ln <= end; ln++ {
		gutter := fmt.Sprintf("%4d | ", ln)
		sb.WriteString(gutter)
		sb.WriteString(lines[ln-1])
		sb.WriteByte('\n')
		if ln == e.Pos.Line {
			caretCol := e.Pos.Column
			if caretCol < 1 {
				caretCol = 1
			}
			sb.WriteString(strings.Repeat(" ", len(gutter)+caretCol-1))
			sb.WriteString("^\n")
		}
	}

	sb.WriteString(e.Message)
	if len(e.Path) > 0 {
		fmt.Fprintf(&sb, " (at %s)", strings.Join(e.Path, "."))
	}
	return sb.String()
}
