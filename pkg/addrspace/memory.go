package addrspace

import (
	"context"
	"errors"
	"sync"

	"github.com/sensorspace-protocol/sensorspace-go/pkg/datasource"
	"github.com/sensorspace-protocol/sensorspace-go/pkg/value"
)

// Registry errors.
var (
	ErrNodeExists   = errors.New("node already registered")
	ErrNodeNotFound = errors.New("node not found")
	ErrNotWritable  = errors.New("node is not writable")
)

// NodeClass distinguishes the stored node shapes.
type NodeClass uint8

const (
	// NodeClassObject is a structural (folder) node.
	NodeClassObject NodeClass = iota
	// NodeClassStatic is a variable node holding an immutable snapshot.
	NodeClassStatic
	// NodeClassProvider is a variable node backed by a data source.
	NodeClassProvider
)

// Node is one registered entry of a MemoryRegistry.
type Node struct {
	Name   value.QualifiedName
	ID     value.NodeID
	Parent value.NodeID
	Class  NodeClass

	// Value is set for NodeClassStatic.
	Value *value.Value

	// Provider is set for NodeClassProvider.
	Provider datasource.Provider
}

// MemoryRegistry is an in-memory Registry for tests and bootstrap
// binaries. It also implements the runtime side of the provider contract:
// ReadValue and WriteValue drive the read-use-release lifecycle.
// It is safe for concurrent use.
type MemoryRegistry struct {
	mu     sync.RWMutex
	nodes  map[value.NodeID]*Node
	order  []value.NodeID
	nextID uint32
}

// NewMemoryRegistry creates a registry pre-seeded with the objects folder.
func NewMemoryRegistry() *MemoryRegistry {
	r := &MemoryRegistry{
		nodes:  make(map[value.NodeID]*Node),
		nextID: 100000,
	}
	r.nodes[ObjectsFolderID] = &Node{
		Name:  value.QualifiedName{Name: "Objects"},
		ID:    ObjectsFolderID,
		Class: NodeClassObject,
	}
	r.order = append(r.order, ObjectsFolderID)
	return r
}

// AddObjectNode registers a folder node.
func (r *MemoryRegistry) AddObjectNode(name value.QualifiedName, id, parent value.NodeID) error {
	return r.add(&Node{Name: name, ID: id, Parent: parent, Class: NodeClassObject})
}

// AddStaticNode registers an immutable value snapshot.
func (r *MemoryRegistry) AddStaticNode(name value.QualifiedName, id, parent value.NodeID, val value.Value) error {
	return r.add(&Node{Name: name, ID: id, Parent: parent, Class: NodeClassStatic, Value: &val})
}

// AddProviderNode registers a data-source-backed node.
func (r *MemoryRegistry) AddProviderNode(name value.QualifiedName, id, parent value.NodeID, p datasource.Provider) error {
	return r.add(&Node{Name: name, ID: id, Parent: parent, Class: NodeClassProvider, Provider: p})
}

func (r *MemoryRegistry) add(n *Node) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n.ID.IsNil() {
		r.nextID++
		n.ID = value.NewNumericID(1, r.nextID)
	}
	if _, exists := r.nodes[n.ID]; exists {
		return ErrNodeExists
	}
	r.nodes[n.ID] = n
	r.order = append(r.order, n.ID)
	return nil
}

// Lookup returns the node with the given ID.
func (r *MemoryRegistry) Lookup(id value.NodeID) (*Node, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.nodes[id]
	return n, ok
}

// Find returns the first node with the given name, in registration order.
func (r *MemoryRegistry) Find(name string) (*Node, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.order {
		if r.nodes[id].Name.Name == name {
			return r.nodes[id], true
		}
	}
	return nil, false
}

// Len returns the number of registered nodes, the seeded folder included.
func (r *MemoryRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.nodes)
}

// Children returns the nodes registered under parent, in registration order.
func (r *MemoryRegistry) Children(parent value.NodeID) []*Node {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*Node
	for _, id := range r.order {
		if r.nodes[id].Parent == parent {
			out = append(out, r.nodes[id])
		}
	}
	return out
}

// ReadValue performs a full read-use-release cycle against the node and
// returns a detached result: the provider's value is copied out before
// the mandatory Release, so the caller holds no lease.
func (r *MemoryRegistry) ReadValue(ctx context.Context, id value.NodeID, req datasource.ReadRequest) (datasource.ReadResult, error) {
	n, ok := r.Lookup(id)
	if !ok {
		return datasource.ReadResult{}, ErrNodeNotFound
	}

	switch n.Class {
	case NodeClassStatic:
		if req.Range != nil {
			return datasource.ReadResult{HasStatus: true, Status: datasource.StatusRangeInvalid}, nil
		}
		val := *n.Value
		return datasource.ReadResult{Value: &val}, nil

	case NodeClassProvider:
		res, err := n.Provider.Read(ctx, req)
		if err != nil {
			n.Provider.Release(&res)
			return datasource.ReadResult{}, err
		}
		detached := datasource.ReadResult{
			HasStatus:          res.HasStatus,
			Status:             res.Status,
			HasSourceTimestamp: res.HasSourceTimestamp,
			SourceTimestamp:    res.SourceTimestamp,
		}
		if res.HasValue() {
			val := *res.Value
			detached.Value = &val
		}
		n.Provider.Release(&res)
		return detached, nil

	default:
		return datasource.ReadResult{}, ErrNodeNotFound
	}
}

// WriteValue writes through to the node's data source. Static and folder
// nodes, and read-only sources, reject the write.
func (r *MemoryRegistry) WriteValue(ctx context.Context, id value.NodeID, val value.Value, rng *datasource.Range) (datasource.Status, error) {
	n, ok := r.Lookup(id)
	if !ok {
		return datasource.StatusUnavailable, ErrNodeNotFound
	}
	if n.Class != NodeClassProvider {
		return datasource.StatusReadOnly, ErrNotWritable
	}
	w, ok := n.Provider.(datasource.Writer)
	if !ok {
		return datasource.StatusReadOnly, ErrNotWritable
	}
	return w.Write(ctx, val, rng), nil
}

// Compile-time interface satisfaction check.
var _ Registry = (*MemoryRegistry)(nil)
