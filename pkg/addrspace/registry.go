package addrspace

import (
	"github.com/sensorspace-protocol/sensorspace-go/pkg/datasource"
	"github.com/sensorspace-protocol/sensorspace-go/pkg/value"
)

// Well-known node IDs of the runtime's base namespace.
var (
	// ObjectsFolderID is the folder new top-level nodes hang off.
	ObjectsFolderID = value.NewNumericID(0, 85)
)

// Registry is the registration surface of the serving runtime's node
// tree. Every call is a one-shot transfer: ownership of the passed value
// or provider moves to the runtime, and the caller must not retain it.
//
// A nil (zero) id asks the runtime to assign an identifier.
type Registry interface {
	// AddObjectNode registers a structural (folder) node.
	AddObjectNode(name value.QualifiedName, id, parent value.NodeID) error

	// AddStaticNode registers a node holding an immutable value snapshot.
	AddStaticNode(name value.QualifiedName, id, parent value.NodeID, val value.Value) error

	// AddProviderNode registers a node whose value is produced on demand
	// by the given data source.
	AddProviderNode(name value.QualifiedName, id, parent value.NodeID, p datasource.Provider) error
}
