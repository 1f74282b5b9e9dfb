package over

import "github.com/over-lang/over/internal/token"

// Object is an ordered field map with an optional parent, mirroring the
// spec's data model (spec §3 "Object"). Its stable identity is simply its
// pointer identity: the parser allocates exactly one *Object per literal
// and every alias to it shares the same pointer, which is what lets
// Same distinguish a shared reference from a merely-equal copy.
//
// Global bindings (@name) are deliberately absent here: they live in the
// parser's per-file scope, never in an Object's field set (spec §3
// "globals ... never in the field set").
type Object struct {
	keys   []string
	fields map[string]Value
	parent *Object

	// Path is a diagnostic-only breadcrumb ("foo.bar") recorded at
	// construction time; it plays no role in equality.
	Path []string
}

// NewObject creates an empty object with the given optional parent.
func NewObject(parent *Object) *Object {
	return &Object{fields: make(map[string]Value), parent: parent}
}

// Set inserts or overwrites a field, recording insertion order on first
// write. The parser rejects duplicate field names before calling Set
// twice for the same key (spec §3 "Field name rules").
func (o *Object) Set(name string, v Value) {
	if _, exists := o.fields[name]; !exists {
		o.keys = append(o.keys, name)
	}
	o.fields[name] = v
}

// Keys returns field names in insertion order.
func (o *Object) Keys() []string { return o.keys }

// Parent returns the object's parent, or nil.
func (o *Object) Parent() *Object { return o.parent }

// SetParent installs o's parent, implementing the "^:" binding (spec §3
// "Object"). The parser enforces that this is called at most once per
// object.
func (o *Object) SetParent(parent *Object) { o.parent = parent }

// OwnField returns a field set directly on o, without walking the parent
// chain — the writer uses this to emit exactly what was written, leaving
// inherited fields to resolve through "^:" instead of being duplicated.
func (o *Object) OwnField(name string) (Value, bool) {
	v, ok := o.fields[name]
	return v, ok
}

// Has reports whether name is set directly on o (not inherited).
func (o *Object) Has(name string) bool {
	_, ok := o.fields[name]
	return ok
}

// Get resolves a field by walking the parent chain, as required by
// "dotted access through a parent falls back ... exactly like direct
// field access" (spec §3 "Object").
func (o *Object) Get(name string) (Value, bool) {
	for cur := o; cur != nil; cur = cur.parent {
		if v, ok := cur.fields[name]; ok {
			return v, true
		}
	}
	return Value{}, false
}

// GetWithSource behaves like Get but also reports the position the
// resolved value was written at, for diagnostics.
func (o *Object) GetWithSource(name string) (Value, token.Position, bool) {
	for cur := o; cur != nil; cur = cur.parent {
		if v, ok := cur.fields[name]; ok {
			return v, v.src, true
		}
	}
	return Value{}, token.Position{}, false
}

// Same reports whether a and b are the same object by identity, as
// opposed to merely structurally Equal (spec §8 "ship-to alias").
func Same(a, b *Object) bool { return a == b }
