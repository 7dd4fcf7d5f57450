package structdump

import (
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/viant/structdump/visitor"
	"github.com/viant/tagly/format/text"
)

// Walker dumps value graphs into node trees. Owned struct types are expanded field by field,
// slices, arrays and maps are walked element by element, anything else becomes a scalar.
// Walker holds configuration only, each Walk call uses its own traversal, so Walker is safe for concurrent use.
//
// Recursion depth is not bounded: a very deep graph exhausts the stack.
type Walker struct {
	ownedPrefixes []string
	logger        *slog.Logger
	caseFormat    text.CaseFormat
}

// New creates a walker
func New(opts ...Option) *Walker {
	ret := &Walker{logger: slog.Default()}
	Options(opts).Apply(ret)
	return ret
}

// Walk walks supplied value graph
func (w *Walker) Walk(value interface{}) *Node {
	return w.walk(value, 0, newTraversal())
}

func (w *Walker) walk(value interface{}, depth int, t *traversal) (node *Node) {
	var id Identity
	defer func() {
		if r := recover(); r != nil {
			w.logger.Debug("walk recovered", "depth", depth, "signature", id.String(), "error", fmt.Sprintf("%v", r))
			if node == nil {
				node = &Node{Kind: KindScalar, Identity: id, Text: id.String()}
			}
		}
	}()
	if isNil(value) {
		w.logger.Debug("walk", "depth", depth, "nil", true)
		return newNullNode()
	}
	rValue := reflect.ValueOf(value)
	var err error
	if id, err = t.identityOf(rValue); err != nil {
		w.logger.Debug("identity", "depth", depth, "signature", id.String(), "error", err)
	}
	w.logger.Debug("walk", "depth", depth, "nil", false, "type", rValue.Type().String(), "signature", id.String())
	if !t.visit(id) {
		return &Node{Kind: KindCycle, Identity: id}
	}
	node = &Node{Kind: KindScalar, Identity: id}
	target, _ := derefPointer(rValue)
	switch {
	case w.isOwned(target):
		w.composite(node, target, depth, t)
	case target.Kind() == reflect.Slice || target.Kind() == reflect.Array:
		w.sequence(node, target, depth, t)
	case target.Kind() == reflect.Map:
		w.mapping(node, target, depth, t)
	default:
		node.Text = w.scalarText(rValue, target, id)
		w.logger.Debug("scalar", "depth", depth, "signature", id.String(), "value", node.Text)
	}
	return node
}

// isOwned returns true for struct types matching an owned prefix
func (w *Walker) isOwned(target reflect.Value) bool {
	if target.Kind() != reflect.Struct {
		return false
	}
	name := typeName(target.Type())
	for _, prefix := range w.ownedPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

func (w *Walker) composite(node *Node, target reflect.Value, depth int, t *traversal) {
	node.Kind = KindComposite
	holder := target.Interface()
	if target.CanAddr() {
		holder = target.Addr().Interface()
	}
	visit, err := visitor.StructVisitorOf(holder)
	if err != nil {
		w.logger.Debug("composite", "depth", depth, "signature", node.Identity.String(), "error", err)
		return
	}
	err = visit(func(name string, value interface{}) (bool, error) {
		if isNil(value) {
			return true, nil
		}
		node.Fields = append(node.Fields, &Field{Name: w.fieldName(name), Node: w.walk(value, depth+1, t)})
		return true, nil
	})
	if err != nil {
		w.logger.Debug("composite", "depth", depth, "signature", node.Identity.String(), "error", err)
	}
}

func (w *Walker) sequence(node *Node, target reflect.Value, depth int, t *traversal) {
	node.Kind = KindSequence
	node.Elements = make([]*Node, 0, target.Len())
	visit, err := visitor.AnySliceVisitorOf(target.Interface())
	if err != nil {
		w.logger.Debug("sequence", "depth", depth, "signature", node.Identity.String(), "error", err)
		return
	}
	err = visit(func(_ int, element any) (bool, error) {
		node.Elements = append(node.Elements, w.walk(element, depth+1, t))
		return true, nil
	})
	if err != nil {
		w.logger.Debug("sequence", "depth", depth, "signature", node.Identity.String(), "error", err)
	}
}

func (w *Walker) mapping(node *Node, target reflect.Value, depth int, t *traversal) {
	node.Kind = KindMapping
	node.Entries = make([]*Entry, 0, target.Len())
	visit, err := visitor.AnyMapVisitorOf(target.Interface())
	if err != nil {
		w.logger.Debug("mapping", "depth", depth, "signature", node.Identity.String(), "error", err)
		return
	}
	err = visit(func(key any, element any) (bool, error) {
		entry := &Entry{Key: w.walk(key, depth+1, t)}
		entry.Value = w.walk(element, depth+1, t)
		node.Entries = append(node.Entries, entry)
		return true, nil
	})
	if err != nil {
		w.logger.Debug("mapping", "depth", depth, "signature", node.Identity.String(), "error", err)
	}
}

// scalarText returns error or Stringer text when implemented, fmt text for basic kinds,
// otherwise the identity signature; containers of foreign values are never printed recursively.
func (w *Walker) scalarText(value, target reflect.Value, id Identity) string {
	for _, candidate := range []reflect.Value{value, target} {
		if !candidate.IsValid() || !candidate.CanInterface() {
			continue
		}
		switch actual := candidate.Interface().(type) {
		case error:
			return w.call(actual.Error, id)
		case fmt.Stringer:
			return w.call(actual.String, id)
		}
	}
	switch target.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return fmt.Sprint(target.Interface())
	}
	return id.String()
}

func (w *Walker) call(fn func() string, id Identity) (ret string) {
	defer func() {
		if r := recover(); r != nil {
			w.logger.Debug("scalar", "signature", id.String(), "error", fmt.Sprintf("%v", r))
			ret = id.String()
		}
	}()
	return fn()
}

func (w *Walker) fieldName(name string) string {
	if !w.caseFormat.IsDefined() {
		return name
	}
	src := text.DetectCaseFormat(name)
	if !src.IsDefined() {
		src = text.CaseFormatUpperCamel
	}
	return src.Format(name, w.caseFormat)
}
