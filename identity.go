package structdump

import (
	"fmt"
	"reflect"
)

// Identity labels a walked value and detects revisits within one traversal.
// Hash collisions are possible and accepted.
type Identity struct {
	TypeName string
	Hash     uint64
}

// String returns identity signature
func (i Identity) String() string {
	if i.TypeName == "" && i.Hash == 0 {
		return ""
	}
	return fmt.Sprintf("%s;@%x", i.TypeName, i.Hash)
}

// IsZero returns true if identity was not computed
func (i Identity) IsZero() bool {
	return i.TypeName == "" && i.Hash == 0
}

// traversal holds state of one top level walk
type traversal struct {
	visited map[Identity]bool
	ordinal uint64
}

func newTraversal() *traversal {
	return &traversal{visited: make(map[Identity]bool)}
}

// visit registers identity, it returns false if identity has already been visited
func (t *traversal) visit(id Identity) bool {
	if t.visited[id] {
		return false
	}
	t.visited[id] = true
	return true
}

func (t *traversal) nextOrdinal() uint64 {
	t.ordinal++
	return t.ordinal
}

const lenMix = 0x9e3779b97f4a7c15

// identityOf computes value identity; reference values are keyed by address,
// value kinds by traversal ordinal as they have no identity in Go.
func (t *traversal) identityOf(value reflect.Value) (id Identity, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to compute identity of %v: %v", id.TypeName, r)
		}
	}()
	target, address := derefPointer(value)
	id.TypeName = typeName(target.Type())
	if address != 0 {
		id.Hash = uint64(address)
		return id, nil
	}
	switch target.Kind() {
	case reflect.Map, reflect.Chan, reflect.UnsafePointer:
		id.Hash = uint64(target.Pointer())
		return id, nil
	case reflect.Slice:
		if target.Len() > 0 {
			id.Hash = uint64(target.Pointer()) ^ uint64(target.Len())*lenMix
			return id, nil
		}
	}
	id.Hash = t.nextOrdinal()
	return id, nil
}
