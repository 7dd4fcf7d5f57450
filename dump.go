package structdump

import (
	"log/slog"
	"reflect"
)

// Walk walks supplied value with a walker created with supplied options
func Walk(value interface{}, opts ...Option) *Node {
	return New(opts...).Walk(value)
}

// Marshal walks supplied value and encodes resulting tree as JSON
func Marshal(value interface{}, opts ...Option) ([]byte, error) {
	return Walk(value, opts...).MarshalJSON()
}

// Dump traces supplied value graph JSON tree with the walker logger at debug level
func Dump(value interface{}, opts ...Option) {
	New(opts...).Dump(value)
}

// Dump traces supplied value graph JSON tree at debug level
func (w *Walker) Dump(value interface{}) {
	if value == nil {
		w.logger.Debug("dump", "nil", true)
	} else {
		w.logger.Debug("dump", "nil", false, "type", reflect.TypeOf(value).String())
	}
	node := w.Walk(value)
	data, err := node.MarshalJSON()
	if err != nil {
		w.logger.Debug("dump", "error", err)
		return
	}
	w.logger.Debug("dump", slog.String("tree", string(data)))
}
