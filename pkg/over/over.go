// Package over is the public facade over OVER's parser and writer: the
// four entry points a host application uses to read and write .over
// documents (spec §6.1).
package over

import (
	"github.com/over-lang/over/internal/include"
	"github.com/over-lang/over/internal/over"
	"github.com/over-lang/over/internal/parser"
	"github.com/over-lang/over/internal/writer"
)

// Value is the immutable, typed tree a parse produces.
type Value = over.Value

// Object is an OVER object: an ordered field map with an optional parent.
type Object = over.Object

// Type is a value's shallow shape, used for array-homogeneity checks.
type Type = over.Type

// ContentLoader abstracts the raw byte access behind "< "path" >"
// includes; OSLoader is the filesystem-backed default.
type ContentLoader = include.ContentLoader

// ParseText parses OVER source text with no associated file, so any
// include directives resolve relative to the current working directory.
func ParseText(source string) (Value, error) {
	return parser.Parse(source)
}

// ParseFile reads and parses path, resolving includes relative to its
// directory and rejecting include cycles across the whole file.
func ParseFile(path string) (Value, error) {
	return parser.ParseFile(path, nil)
}

// ParseFileWithLoader is ParseFile but with includes read through a
// custom ContentLoader instead of the filesystem.
func ParseFileWithLoader(path string, loader ContentLoader) (Value, error) {
	return parser.ParseFile(path, include.NewManager(loader))
}

// WriteText renders v (which must be an Obj) as canonical OVER text.
func WriteText(v Value) (string, error) {
	return writer.WriteText(v)
}

// WriteFile renders v and writes it to path atomically.
func WriteFile(path string, v Value) error {
	return writer.WriteFile(path, v)
}
