// Package over implements the OVER value model: the tagged-union Value
// type, the ordered Object representation, and the small type lattice
// used for array homogeneity checks (spec §3).
//
// The ordered-map-plus-keys-slice technique Object uses to preserve field
// insertion order follows the same shape as a JSON shadow value elsewhere
// in this codebase's ancestry, generalized here to carry typed OVER
// values, a parent link, and optional source positions instead of JSON's
// float64/string/bool primitives.
package over

import (
	"math/big"
	"strings"

	"github.com/over-lang/over/internal/token"
)

// Kind identifies a Value's variant.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFrac
	KindChar
	KindStr
	KindArr
	KindTup
	KindObj
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBool:
		return "Bool"
	case KindInt:
		return "Int"
	case KindFrac:
		return "Frac"
	case KindChar:
		return "Char"
	case KindStr:
		return "Str"
	case KindArr:
		return "Arr"
	case KindTup:
		return "Tup"
	case KindObj:
		return "Obj"
	}
	return "Unknown"
}

// Value is an immutable OVER value. Exactly one of the typed fields is
// meaningful, selected by Kind; the rest are zero. Once constructed, a
// Value is never mutated — containers are rebuilt, not edited in place
// (spec §5 "Immutability").
type Value struct {
	kind Kind

	boolVal bool
	intVal  *big.Int
	fracVal *big.Rat
	charVal rune
	strVal  string
	elems   []Value  // Arr, Tup
	elemTy  Type     // Arr only: the element type every member was joined into
	obj     *Object  // Obj

	// src is a diagnostic breadcrumb for Obj.GetWithSource; it plays no
	// part in equality or in the writer's output (spec §3 "Value").
	src token.Position
}

// Type describes the shape of a Value for array-homogeneity and
// tuple-membership checks (spec §3 "Type lattice").
type Type struct {
	kind Kind     // the variant; ignored when any is set
	elem *Type    // set when kind == KindArr
	tup  []Type   // set when kind == KindTup
	any  bool     // true for Any, the lattice bottom
}

// Any is the bottom of the type lattice: Any joined with any type T is T.
var Any = Type{any: true}

// TypeOf returns a Value's most specific shallow type.
func TypeOf(v Value) Type {
	switch v.kind {
	case KindArr:
		return Type{kind: KindArr, elem: &v.elemTy}
	case KindTup:
		elemTypes := make([]Type, len(v.elems))
		for i, e := range v.elems {
			elemTypes[i] = TypeOf(e)
		}
		return Type{kind: KindTup, tup: elemTypes}
	default:
		return Type{kind: v.kind}
	}
}

// Equal reports structural type equality.
func (t Type) Equal(o Type) bool {
	if t.any || o.any {
		return t.any == o.any
	}
	if t.kind != o.kind {
		return false
	}
	switch t.kind {
	case KindArr:
		return t.elem.Equal(*o.elem)
	case KindTup:
		if len(t.tup) != len(o.tup) {
			return false
		}
		for i := range t.tup {
			if !t.tup[i].Equal(o.tup[i]) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// String renders a type for diagnostics, e.g. "Arr(Int)" or "Any".
func (t Type) String() string {
	if t.any {
		return "Any"
	}
	switch t.kind {
	case KindArr:
		return "Arr(" + t.elem.String() + ")"
	case KindTup:
		parts := make([]string, len(t.tup))
		for i, e := range t.tup {
			parts[i] = e.String()
		}
		return "Tup(" + strings.Join(parts, ", ") + ")"
	default:
		return t.kind.String()
	}
}

// Join computes the least upper bound of two types (spec §4.3). Any
// absorbs unconditionally: join(Any, T) = T. Compound types join
// element-wise — Arr(A) ⊔ Arr(B) = Arr(A ⊔ B), and Tup([A…]) ⊔ Tup([B…])
// requires equal arity plus an element-wise join — and ok is false when no
// join exists, which callers surface as a type error at the join site.
func Join(a, b Type) (Type, bool) {
	if a.any {
		return b, true
	}
	if b.any {
		return a, true
	}
	if a.kind != b.kind {
		return Type{}, false
	}
	switch a.kind {
	case KindArr:
		inner, ok := Join(*a.elem, *b.elem)
		if !ok {
			return Type{}, false
		}
		return Type{kind: KindArr, elem: &inner}, true
	case KindTup:
		if len(a.tup) != len(b.tup) {
			return Type{}, false
		}
		joined := make([]Type, len(a.tup))
		for i := range a.tup {
			j, ok := Join(a.tup[i], b.tup[i])
			if !ok {
				return Type{}, false
			}
			joined[i] = j
		}
		return Type{kind: KindTup, tup: joined}, true
	default:
		return a, true
	}
}

// MostSpecific returns the more specific of two types: Any defers to a
// concrete type, and compound types recurse structurally (spec §4.3
// "most_specific"). The parser does not call it: array element types
// are combined with Join.
func (t Type) MostSpecific(o Type) Type {
	if t.any {
		return o
	}
	if o.any {
		return t
	}
	if t.kind != o.kind {
		return t
	}
	switch t.kind {
	case KindArr:
		inner := t.elem.MostSpecific(*o.elem)
		return Type{kind: KindArr, elem: &inner}
	case KindTup:
		if len(t.tup) != len(o.tup) {
			return t
		}
		out := make([]Type, len(t.tup))
		for i := range t.tup {
			out[i] = t.tup[i].MostSpecific(o.tup[i])
		}
		return Type{kind: KindTup, tup: out}
	default:
		return t
	}
}

// HasAny reports whether t is Any or contains Any anywhere in its
// structure (an empty nested Arr, for instance).
func (t Type) HasAny() bool {
	if t.any {
		return true
	}
	switch t.kind {
	case KindArr:
		return t.elem.HasAny()
	case KindTup:
		for _, e := range t.tup {
			if e.HasAny() {
				return true
			}
		}
	}
	return false
}

// Constructors.

func Null() Value { return Value{kind: KindNull} }

func Bool(b bool) Value { return Value{kind: KindBool, boolVal: b} }

func Int(n *big.Int) Value { return Value{kind: KindInt, intVal: n} }

func Frac(r *big.Rat) Value { return Value{kind: KindFrac, fracVal: r} }

func Char(r rune) Value { return Value{kind: KindChar, charVal: r} }

func Str(s string) Value { return Value{kind: KindStr, strVal: s} }

// Arr builds a homogeneous array. Callers must have already verified (via
// Join across elems) that the elements share a type; elemTy is recorded
// for TypeOf/Equal rather than recomputed.
func Arr(elems []Value, elemTy Type) Value {
	return Value{kind: KindArr, elems: elems, elemTy: elemTy}
}

// Tup builds a heterogeneous, fixed-arity tuple.
func Tup(elems []Value) Value {
	return Value{kind: KindTup, elems: elems}
}

// ObjVal wraps an *Object as a Value.
func ObjVal(o *Object) Value { return Value{kind: KindObj, obj: o} }

// WithSource attaches a diagnostic position to a value, used by the
// parser when it wants Obj.GetWithSource to report where a field came
// from.
func (v Value) WithSource(pos token.Position) Value {
	v.src = pos
	return v
}

// Accessors.

func (v Value) Kind() Kind           { return v.kind }
func (v Value) Bool() bool           { return v.boolVal }
func (v Value) IntVal() *big.Int     { return v.intVal }
func (v Value) FracVal() *big.Rat    { return v.fracVal }
func (v Value) CharVal() rune        { return v.charVal }
func (v Value) StrVal() string       { return v.strVal }
func (v Value) Elems() []Value       { return v.elems }
func (v Value) ElemType() Type       { return v.elemTy }
func (v Value) ObjVal() *Object      { return v.obj }
func (v Value) Source() token.Position { return v.src }

// InnerType is an Arr's element type (spec §6.1 "Arr.inner_type()").
func (v Value) InnerType() Type { return v.elemTy }

// InnerTypeVec is a Tup's per-component type vector, in element order
// (spec §6.1 "Tup.inner_type_vec()").
func (v Value) InnerTypeVec() []Type {
	vec := make([]Type, len(v.elems))
	for i, e := range v.elems {
		vec[i] = TypeOf(e)
	}
	return vec
}

// Iter yields a Value's children in a uniform way for Arr, Tup, and Obj;
// it returns nil for scalar kinds (spec §3 "containers").
func (v Value) Iter() []Value {
	switch v.kind {
	case KindArr, KindTup:
		return v.elems
	case KindObj:
		out := make([]Value, 0, len(v.obj.keys))
		for _, k := range v.obj.keys {
			out = append(out, v.obj.fields[k])
		}
		return out
	default:
		return nil
	}
}

// Equal implements spec §3's structural equality: variant-tagged, with
// Int/Frac cross-comparable when the Frac side is integral, and Obj
// equality ignoring field order but requiring structurally equal parent
// chains.
func Equal(a, b Value) bool {
	switch {
	case a.kind == KindInt && b.kind == KindFrac:
		return equalIntFrac(a.intVal, b.fracVal)
	case a.kind == KindFrac && b.kind == KindInt:
		return equalIntFrac(b.intVal, a.fracVal)
	}

	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.boolVal == b.boolVal
	case KindInt:
		return a.intVal.Cmp(b.intVal) == 0
	case KindFrac:
		return a.fracVal.Cmp(b.fracVal) == 0
	case KindChar:
		return a.charVal == b.charVal
	case KindStr:
		return a.strVal == b.strVal
	case KindArr, KindTup:
		if len(a.elems) != len(b.elems) {
			return false
		}
		for i := range a.elems {
			if !Equal(a.elems[i], b.elems[i]) {
				return false
			}
		}
		return true
	case KindObj:
		return objectsEqual(a.obj, b.obj)
	}
	return false
}

func equalIntFrac(n *big.Int, r *big.Rat) bool {
	if !r.IsInt() {
		return false
	}
	return r.Num().Cmp(n) == 0
}

func objectsEqual(a, b *Object) bool {
	if a == b {
		return true
	}
	if (a.parent == nil) != (b.parent == nil) {
		return false
	}
	if a.parent != nil && !objectsEqual(a.parent, b.parent) {
		return false
	}
	if len(a.keys) != len(b.keys) {
		return false
	}
	for _, k := range a.keys {
		bv, ok := b.fields[k]
		if !ok {
			return false
		}
		if !Equal(a.fields[k], bv) {
			return false
		}
	}
	return true
}
