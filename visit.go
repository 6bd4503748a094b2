package yves

import (
	"reflect"
	"strings"
)

// identity distinguishes containers by address. The type is part of the
// identity because a struct and its first field share an address.
type identity struct {
	typ reflect.Type
	ptr uintptr
	len int
}

// identityOf reports the identity of a container reached through v. Values
// without an address (structs and arrays held by value) have none.
func identityOf(v reflect.Value) (identity, bool) {
	for v.IsValid() && v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	if !v.IsValid() {
		return identity{}, false
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Map:
		if v.IsNil() {
			return identity{}, false
		}
		return identity{typ: v.Type(), ptr: v.Pointer()}, true
	case reflect.Slice:
		if v.Len() == 0 {
			return identity{}, false
		}
		return identity{typ: v.Type(), ptr: v.Pointer(), len: v.Len()}, true
	}
	return identity{}, false
}

// visitPath holds the containers on the active recursion path of one
// render call. Each call owns its own path.
type visitPath struct {
	ids []identity
}

// enter pushes id. It returns false, leaving the path unchanged, when id is
// already on the path.
func (p *visitPath) enter(id identity) bool {
	if p.index(id) >= 0 {
		return false
	}
	p.ids = append(p.ids, id)
	return true
}

func (p *visitPath) leave() {
	p.ids = p.ids[:len(p.ids)-1]
}

func (p *visitPath) index(id identity) int {
	for i, seen := range p.ids {
		if seen == id {
			return i
		}
	}
	return -1
}

// backref returns the dot run marking a re-encounter of id; the run grows
// with the distance to the ancestor.
func (p *visitPath) backref(id identity) string {
	return strings.Repeat(".", len(p.ids)-p.index(id)+1)
}
