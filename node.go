package structdump

// Kind represents node classification
type Kind int

const (
	//KindNull absent value
	KindNull Kind = iota
	//KindCycle value already visited in the traversal
	KindCycle
	//KindComposite owned struct expanded field by field
	KindComposite
	//KindSequence slice or array
	KindSequence
	//KindMapping map
	KindMapping
	//KindScalar any other value, rendered as text
	KindScalar
)

const (
	cycleType    = "Virtual Object"
	sequenceType = "Iterable"
	mappingType  = "Map"
)

// String returns kind name
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindCycle:
		return "Cycle"
	case KindComposite:
		return "Composite"
	case KindSequence:
		return "Sequence"
	case KindMapping:
		return "Mapping"
	case KindScalar:
		return "Scalar"
	}
	return "Unknown"
}

type (
	//Node represents classified walked value
	Node struct {
		Kind     Kind
		Identity Identity
		Fields   []*Field
		Elements []*Node
		Entries  []*Entry
		Text     string
	}

	//Field represents composite field
	Field struct {
		Name string
		Node *Node
	}

	//Entry represents mapping entry
	Entry struct {
		Key   *Node
		Value *Node
	}
)

// Type returns node type tag
func (n *Node) Type() string {
	switch n.Kind {
	case KindCycle:
		return cycleType
	case KindSequence:
		return sequenceType
	case KindMapping:
		return mappingType
	}
	return ""
}

// IsNull returns true for null node
func (n *Node) IsNull() bool {
	return n == nil || n.Kind == KindNull
}

// Field returns composite field node by name
func (n *Node) Field(name string) *Node {
	for _, field := range n.Fields {
		if field.Name == name {
			return field.Node
		}
	}
	return nil
}

func newNullNode() *Node {
	return &Node{Kind: KindNull}
}
