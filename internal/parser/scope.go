package parser

import "github.com/over-lang/over/internal/over"

// scope wraps the object a bare identifier resolves against: the object
// currently being built. A plain name only ever looks at fields already
// bound on that same object (via Object.Get, which still walks the "^"
// parent chain on its own) — it never climbs into a textually enclosing
// object. Only "@globals" cross object boundaries (spec §4.4, §9 "any
// looser behavior observed in a prototype implementation should be
// treated as a bug").
type scope struct {
	obj *over.Object
}

func (s *scope) resolve(name string) (over.Value, bool) {
	return s.obj.Get(name)
}

func (s *scope) child(obj *over.Object) *scope {
	return &scope{obj: obj}
}
