package structdump

import (
	"fmt"
	"io"

	"github.com/francoispqt/gojay"
)

const (
	signatureKey   = "signature_hash"
	typeKey        = "type"
	valueKey       = "value"
	keyKey         = "key"
	fieldKeyPrefix = "field::"
)

type (
	nodes   []*Node
	entries []*Entry
)

// MarshalJSONObject encodes node as JSON object
func (n *Node) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey(signatureKey, n.Identity.String())
	if tag := n.Type(); tag != "" {
		enc.StringKey(typeKey, tag)
	}
	switch n.Kind {
	case KindComposite:
		for _, field := range n.Fields {
			encodeNodeKey(enc, fieldKeyPrefix+field.Name, field.Node)
		}
	case KindSequence:
		enc.ArrayKey(sequenceType, nodes(n.Elements))
	case KindMapping:
		enc.ArrayKey(mappingType, entries(n.Entries))
	case KindScalar:
		enc.StringKey(valueKey, n.Text)
	}
}

// IsNil returns true for nil node
func (n *Node) IsNil() bool {
	return n == nil
}

// MarshalJSON encodes node as JSON, null node is encoded as null
func (n *Node) MarshalJSON() ([]byte, error) {
	if n.IsNull() {
		return []byte("null"), nil
	}
	data, err := gojay.MarshalJSONObject(n)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %v: %w", n.Identity, err)
	}
	return data, nil
}

// Encode writes node JSON to the writer
func (n *Node) Encode(writer io.Writer) error {
	if n.IsNull() {
		_, err := io.WriteString(writer, "null")
		return err
	}
	enc := gojay.BorrowEncoder(writer)
	defer enc.Release()
	if err := enc.EncodeObject(n); err != nil {
		return fmt.Errorf("failed to encode %v: %w", n.Identity, err)
	}
	return nil
}

// MarshalJSONArray encodes nodes as JSON array
func (n nodes) MarshalJSONArray(enc *gojay.Encoder) {
	for _, node := range n {
		if node.IsNull() {
			enc.Null()
			continue
		}
		enc.Object(node)
	}
}

// IsNil returns false, empty sequence is encoded as empty array
func (n nodes) IsNil() bool {
	return false
}

// MarshalJSONObject encodes mapping entry as JSON object
func (e *Entry) MarshalJSONObject(enc *gojay.Encoder) {
	encodeNodeKey(enc, keyKey, e.Key)
	encodeNodeKey(enc, valueKey, e.Value)
}

// IsNil returns true for nil entry
func (e *Entry) IsNil() bool {
	return e == nil
}

// MarshalJSONArray encodes entries as JSON array
func (e entries) MarshalJSONArray(enc *gojay.Encoder) {
	for _, entry := range e {
		enc.Object(entry)
	}
}

// IsNil returns false, empty mapping is encoded as empty array
func (e entries) IsNil() bool {
	return false
}

func encodeNodeKey(enc *gojay.Encoder, key string, node *Node) {
	if node.IsNull() {
		enc.NullKey(key)
		return
	}
	enc.ObjectKey(key, node)
}
