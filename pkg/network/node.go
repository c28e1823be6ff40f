package network

import (
	"github.com/edp1096/fault-seq/pkg/sequence"
)

// Node is a network bus: identity, optional description, the branches
// incident to it (maintained by Model.AddBranch), and at most one attached
// fault (spec.md §3).
type Node struct {
	id    int
	name  string
	desc  string
	model *Model

	branches []int // incident branch ids, in insertion order
	fault    int   // attached fault id, 0 if none
}

// ID returns the 1-based identifier assigned at creation.
func (n *Node) ID() int { return n.id }

// Name returns the node's short name.
func (n *Node) Name() string { return n.name }

// Description returns the optional free-text description.
func (n *Node) Description() string { return n.desc }

// IncidentBranchIDs returns the ids of branches touching this node, in
// insertion order.
func (n *Node) IncidentBranchIDs() []int {
	out := make([]int, len(n.branches))
	copy(out, n.branches)
	return out
}

// FaultID returns the id of the fault attached to this node, or 0.
func (n *Node) FaultID() int { return n.fault }

// GetResult returns the node's sequence voltage (U1, U2, U0) from the
// solved X vector (spec.md §4.5).
func (n *Node) GetResult() (sequence.Triple, error) {
	return n.model.voltageAt(n.id)
}

// Query evaluates a named quantity (spec.md §4.1) at this node, with the
// current sequence held at zero (nodes carry no current of their own). If
// format is given, the result is rendered as a string instead of returned
// raw.
func (n *Node) Query(name string, format ...sequence.Format) (any, error) {
	fn, ok := sequence.Lookup(name)
	if !ok {
		return nil, &ValueError{Msg: "unknown named quantity: " + name}
	}
	u, err := n.GetResult()
	if err != nil {
		return nil, err
	}
	result := fn(u, sequence.Triple{})
	return renderResult(result, format), nil
}

func renderResult(result any, format []sequence.Format) any {
	if len(format) == 0 {
		return result
	}
	switch v := result.(type) {
	case complex128:
		return sequence.FormatComplex(v, format[0])
	case sequence.Triple:
		return sequence.FormatTriple(v, format[0])
	default:
		return result
	}
}
