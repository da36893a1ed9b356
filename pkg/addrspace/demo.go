package addrspace

import (
	"fmt"

	"github.com/sensorspace-protocol/sensorspace-go/pkg/value"
)

// Demo node identifiers. The value nodes use a running identifier starting
// at demoValueIDStart, two per kind, in catalog order.
const (
	demoFolderID     = 50000
	scalarFolderID   = 50001
	arrayFolderID    = 50002
	demoValueIDStart = 51000

	// demoArrayLen is the fixed length of every demo array node.
	demoArrayLen = 10
)

// RegisterDemoNodes walks the built-in kind catalog and registers, for
// every constructible kind, one default-constructed scalar node and one
// fixed-length array node. The nodes are immutable snapshots grouped
// under Demo/Scalar and Demo/Array folders in the given namespace.
//
// Node names are derived from the kind's numeric identifier, zero-padded
// to two digits, so they are stable and collision-free within a folder.
func RegisterDemoNodes(reg Registry, namespace uint16) error {
	demoID := value.NewNumericID(namespace, demoFolderID)
	scalarID := value.NewNumericID(namespace, scalarFolderID)
	arrayID := value.NewNumericID(namespace, arrayFolderID)

	folders := []struct {
		name   string
		id     value.NodeID
		parent value.NodeID
	}{
		{"Demo", demoID, ObjectsFolderID},
		{"Scalar", scalarID, demoID},
		{"Array", arrayID, demoID},
	}
	for _, f := range folders {
		name := value.QualifiedName{Namespace: namespace, Name: f.name}
		if err := reg.AddObjectNode(name, f.id, f.parent); err != nil {
			return fmt.Errorf("register %s folder: %w", f.name, err)
		}
	}

	id := uint32(demoValueIDStart)
	for kind := value.Kind(0); kind.IsBuiltin(); kind++ {
		if !kind.Constructible() {
			continue
		}
		name := value.QualifiedName{Namespace: namespace, Name: fmt.Sprintf("%02d", uint8(kind))}

		id++
		if err := reg.AddStaticNode(name, value.NewNumericID(namespace, id), scalarID, value.ZeroScalar(kind)); err != nil {
			return fmt.Errorf("register scalar demo node %s: %w", kind, err)
		}

		id++
		if err := reg.AddStaticNode(name, value.NewNumericID(namespace, id), arrayID, value.ZeroArray(kind, demoArrayLen)); err != nil {
			return fmt.Errorf("register array demo node %s: %w", kind, err)
		}
	}
	return nil
}
