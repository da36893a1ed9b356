package value

import "time"

// XMLElement is an XML fragment carried as text.
type XMLElement string

// StatusCode is a raw status word as carried inside values.
type StatusCode uint32

// NodeID identifies a node in the server's address space.
// The zero NodeID means "unassigned" - the runtime picks an identifier
// when such an ID is passed at registration time.
type NodeID struct {
	// Namespace is the namespace index the identifier belongs to.
	Namespace uint16

	// Numeric is the numeric identifier. Ignored when Text is set.
	Numeric uint32

	// Text is the string identifier, empty for numeric IDs.
	Text string
}

// NewNumericID returns a numeric NodeID in the given namespace.
func NewNumericID(namespace uint16, id uint32) NodeID {
	return NodeID{Namespace: namespace, Numeric: id}
}

// NewStringID returns a string NodeID in the given namespace.
func NewStringID(namespace uint16, text string) NodeID {
	return NodeID{Namespace: namespace, Text: text}
}

// IsNil returns true for the zero (unassigned) NodeID.
func (n NodeID) IsNil() bool {
	return n == NodeID{}
}

// ExpandedNodeID is a NodeID qualified by a namespace URI and server index.
type ExpandedNodeID struct {
	NodeID       NodeID
	NamespaceURI string
	ServerIndex  uint32
}

// QualifiedName is a name qualified by a namespace index.
type QualifiedName struct {
	Namespace uint16
	Name      string
}

// LocalizedText is human-readable text with an optional locale tag.
type LocalizedText struct {
	Locale string
	Text   string
}

// ExtensionObject carries an encoded structure identified by its type ID.
type ExtensionObject struct {
	TypeID NodeID
	Body   []byte
}

// DataValue is a value decorated with a status and a source timestamp,
// as stored inside composite values. It is distinct from the data-source
// read result, which lives in the datasource package.
type DataValue struct {
	Value           *Value
	Status          StatusCode
	SourceTimestamp time.Time
}
