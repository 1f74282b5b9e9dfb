// Package include implements the file-inclusion engine described in
// spec §4.5: a ContentLoader abstraction over raw byte access, and a
// Manager that tracks the active include stack to reject cycles and
// caches already-parsed results by canonical path.
package include

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/over-lang/over/internal/over"
)

// ContentLoader reads raw bytes for an include path. OSLoader is the
// default, backed by the filesystem; tests substitute an in-memory
// loader so cycle and caching behavior can be exercised without touching
// disk.
type ContentLoader interface {
	Load(path string) (string, error)
	// Canonicalize resolves path relative to the including file's
	// directory into a form suitable for cycle detection and caching.
	Canonicalize(fromDir, path string) string
}

// OSLoader reads files from the local filesystem.
type OSLoader struct{}

func (OSLoader) Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (OSLoader) Canonicalize(fromDir, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Clean(filepath.Join(fromDir, path))
}

// CycleError reports an include cycle, naming both the path being
// re-entered and the chain of paths already active (spec §8 "include
// cycle rejection").
type CycleError struct {
	Path  string
	Chain []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("include cycle: %s is already being included (chain: %v)", e.Path, e.Chain)
}

// Result is one file's parsed contribution, cached by canonical path so
// that two sibling includes of the same file only pay the parse cost
// once.
type Result struct {
	Path  string
	Value over.Value
}

// Manager tracks the active include stack and a per-parse cache.
type Manager struct {
	loader ContentLoader
	active []string
	cache  map[string]Result
}

// NewManager constructs a Manager backed by loader, or OSLoader{} if nil.
func NewManager(loader ContentLoader) *Manager {
	if loader == nil {
		loader = OSLoader{}
	}
	return &Manager{loader: loader, cache: make(map[string]Result)}
}

// Enter pushes path onto the active stack, failing with a CycleError if
// it's already active. Callers must pair a successful Enter with Leave.
func (m *Manager) Enter(fromDir, path string) (canonical string, err error) {
	canonical = m.loader.Canonicalize(fromDir, path)
	for _, p := range m.active {
		if p == canonical {
			return canonical, &CycleError{Path: canonical, Chain: append([]string(nil), m.active...)}
		}
	}
	m.active = append(m.active, canonical)
	return canonical, nil
}

// Leave pops the most recently entered path.
func (m *Manager) Leave() {
	if len(m.active) > 0 {
		m.active = m.active[:len(m.active)-1]
	}
}

// Load reads the raw content at canonical, a path already resolved by
// Enter; fromDir is not used.
func (m *Manager) Load(fromDir, canonical string) (string, error) {
	return m.loader.Load(canonical)
}

// Cached returns a previously cached parse result for canonical, if any.
func (m *Manager) Cached(canonical string) (Result, bool) {
	r, ok := m.cache[canonical]
	return r, ok
}

// Cache stores a parse result for canonical.
func (m *Manager) Cache(canonical string, r Result) {
	m.cache[canonical] = r
}

// ActiveDir returns the directory of the file currently being parsed,
// i.e. the top of the active stack, or "" if nothing is active.
func (m *Manager) ActiveDir() string {
	if len(m.active) == 0 {
		return ""
	}
	return filepath.Dir(m.active[len(m.active)-1])
}
