package element

import (
	"errors"
	"fmt"
	"sort"
)

var ErrDuplicateNode = errors.New("duplicate node id")

// Node is one rendered node of a layout. Editable is nil for nodes
// that only carry structure.
type Node struct {
	ID       string      `json:"id" validate:"required"`
	ParentID string      `json:"parent_id,omitempty"`
	Editable *Descriptor `json:"editable,omitempty"`
}

// Registry is the element tree of one rendered layout, built once and
// read-only afterwards.
type Registry struct {
	nodes map[string]Node
}

// NewRegistry indexes nodes. Parents that are not part of the layout
// are treated as the root.
func NewRegistry(nodes []Node) (*Registry, error) {
	r := &Registry{nodes: make(map[string]Node, len(nodes))}
	for _, n := range nodes {
		if n.ID == "" {
			continue
		}
		if _, exists := r.nodes[n.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateNode, n.ID)
		}
		if n.Editable != nil {
			d := n.Editable.Normalize()
			n.Editable = &d
		}
		r.nodes[n.ID] = n
	}
	return r, nil
}

// Len returns the number of indexed nodes.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.nodes)
}

// Lookup returns the node with id.
func (r *Registry) Lookup(id string) (Node, bool) {
	if r == nil {
		return Node{}, false
	}
	n, ok := r.nodes[id]
	return n, ok
}

// Closest returns the descriptor of the nearest editable node starting
// at nodeID itself and walking up the parent chain, so the deepest
// editable ancestor wins. Unknown nodes and chains without an editable
// node yield false. Parent cycles terminate.
func (r *Registry) Closest(nodeID string) (Descriptor, bool) {
	if r == nil {
		return Descriptor{}, false
	}

	current := nodeID
	for steps := 0; steps <= len(r.nodes); steps++ {
		n, ok := r.nodes[current]
		if !ok {
			return Descriptor{}, false
		}
		if n.Editable != nil && n.Editable.ID != "" {
			return *n.Editable, true
		}
		if n.ParentID == "" || n.ParentID == current {
			return Descriptor{}, false
		}
		current = n.ParentID
	}
	return Descriptor{}, false
}

// Editables lists every editable descriptor in the layout, ordered by
// node id.
func (r *Registry) Editables() []Descriptor {
	if r == nil {
		return nil
	}
	out := make([]Descriptor, 0, len(r.nodes))
	for _, n := range r.nodes {
		if n.Editable != nil && n.Editable.ID != "" {
			out = append(out, *n.Editable)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
