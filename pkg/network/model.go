// Package network implements the declarative network description (nodes,
// branches, zero-sequence mutuals, faults), its assembly into a sparse
// complex linear system, and the solve/query surface, per spec.md §§2-6.
// Generalizes the teacher repository's pkg/circuit (container) and
// pkg/device (per-entity stamp) split from a SPICE deck to the
// symmetrical-components fault-network domain.
package network

import (
	"fmt"

	"github.com/edp1096/fault-seq/pkg/matrix"
	"github.com/edp1096/fault-seq/pkg/sequence"
)

// Ground is the reserved sentinel endpoint id (spec.md glossary: "Ground
// (0)"). It is never a live Node.
const Ground = 0

// Model owns numbered collections of nodes, branches, mutuals, and faults,
// and the solution vector X produced by Solve. Entities reference each
// other only by id; the Model owns the arenas (spec.md §9 design note).
type Model struct {
	nodes    []*Node
	branches []*Branch
	mutuals  []*Mutual
	faults   []*Fault

	x      []complex128 // nil until Solve succeeds
	solved bool

	Warnings []Warning
}

// New creates an empty Model.
func New() *Model {
	return &Model{}
}

// Clear detaches all entities and discards any solution (spec.md §6 clear()).
func (m *Model) Clear() {
	m.nodes = nil
	m.branches = nil
	m.mutuals = nil
	m.faults = nil
	m.x = nil
	m.solved = false
	m.Warnings = nil
}

// ClearFaults removes all faults except those with code N0, which mark a
// permanent neutral-grounding or isolated-neutral condition (spec.md §6
// clear_faults()). Node and branch fault attachments are detached
// accordingly.
func (m *Model) ClearFaults() {
	kept := m.faults[:0]
	for _, f := range m.faults {
		if f.code == N0 {
			kept = append(kept, f)
			continue
		}
		f.detach()
	}
	m.faults = kept
	m.renumberFaults()
	m.x = nil
	m.solved = false
}

func (m *Model) renumberFaults() {
	for i, f := range m.faults {
		f.id = i + 1
		switch f.kind {
		case ShuntFault:
			m.nodes[f.target-1].fault = f.id
		case SeriesFault:
			m.branches[f.target-1].fault = f.id
		}
	}
}

// NumNodes, NumBranches, NumMutuals, NumFaults report the current entity
// counts N_q, N_p, N_m, N_n.
func (m *Model) NumNodes() int    { return len(m.nodes) }
func (m *Model) NumBranches() int { return len(m.branches) }
func (m *Model) NumMutuals() int  { return len(m.mutuals) }
func (m *Model) NumFaults() int   { return len(m.faults) }

// Dimension returns n = 3*(N_p + N_q + N_n), the size of the assembled
// system and of X once solved (spec.md §3, §8 "Dimension law").
func (m *Model) Dimension() int {
	return 3 * (len(m.branches) + len(m.nodes) + len(m.faults))
}

// AddNode creates a new Node owned by this Model.
func (m *Model) AddNode(name string, desc ...string) (*Node, error) {
	n := &Node{
		id:    len(m.nodes) + 1,
		name:  name,
		model: m,
	}
	if len(desc) > 0 {
		n.desc = desc[0]
	}
	m.nodes = append(m.nodes, n)
	m.x = nil
	m.solved = false
	return n, nil
}

// resolveEndpoint accepts *Node (of this Model) or the integer Ground (0)
// and returns the node's 1-based id (0 meaning ground).
func (m *Model) resolveEndpoint(v any) (int, error) {
	switch t := v.(type) {
	case *Node:
		if t == nil {
			return 0, &TypeError{Msg: "branch endpoint *Node is nil"}
		}
		if t.model != m {
			return 0, &ReferenceError{Msg: fmt.Sprintf("node %q belongs to a different Model", t.name)}
		}
		return t.id, nil
	case int:
		if t == Ground {
			return 0, nil
		}
		return 0, &ValueError{Msg: fmt.Sprintf("ground reference must be the Ground sentinel (0), got %d", t)}
	default:
		return 0, &TypeError{Msg: fmt.Sprintf("branch endpoint must be *Node or network.Ground, got %T", v)}
	}
}

// AddBranch creates a Branch directed from q1 to q2, each either a *Node of
// this Model or network.Ground. t and b have no defaults and are always
// passed: IdentityTransformer is the (1, 0) value of a plain series branch
// (the zero Transformer{} is rejected, since its k is 0), and
// sequence.Triple{} gives B = (0,0,0). A branch with q1 == q2 (both resolving to the same
// endpoint) is flagged as a Warning, not an error (spec.md §3).
func (m *Model) AddBranch(name string, q1, q2 any, z sequence.Triple, e sequence.Triple, t Transformer, b sequence.Triple) (*Branch, error) {
	n1, err := m.resolveEndpoint(q1)
	if err != nil {
		return nil, err
	}
	n2, err := m.resolveEndpoint(q2)
	if err != nil {
		return nil, err
	}
	if t.K <= 0 {
		return nil, &ValueError{Msg: fmt.Sprintf("transformer ratio k must be > 0, got %g", t.K)}
	}
	if t.G < 0 || t.G > 11 {
		return nil, &ValueError{Msg: fmt.Sprintf("transformer group g must be in 0..11, got %d", t.G)}
	}

	br := &Branch{
		id:    len(m.branches) + 1,
		name:  name,
		model: m,
		q1:    n1,
		q2:    n2,
		Z:     z,
		E:     e,
		T:     t,
		B:     b,
	}
	m.branches = append(m.branches, br)

	if n1 == n2 {
		m.Warnings = append(m.Warnings, Warning{Msg: fmt.Sprintf("branch %q: both endpoints are the same (%d)", name, n1)})
	}
	if n1 != 0 {
		m.nodes[n1-1].branches = append(m.nodes[n1-1].branches, br.id)
	}
	if n2 != 0 {
		m.nodes[n2-1].branches = append(m.nodes[n2-1].branches, br.id)
	}

	m.x = nil
	m.solved = false
	return br, nil
}

// AddMutual creates a zero-sequence mutual coupling between two distinct
// branches of this Model.
func (m *Model) AddMutual(name string, p1, p2 *Branch, m12, m21 complex128, desc ...string) (*Mutual, error) {
	if p1 == nil || p2 == nil {
		return nil, &TypeError{Msg: "mutual coupling requires two non-nil branches"}
	}
	if p1.model != m || p2.model != m {
		return nil, &ReferenceError{Msg: fmt.Sprintf("mutual %q: branch belongs to a different Model", name)}
	}
	if p1 == p2 {
		return nil, &ValueError{Msg: fmt.Sprintf("mutual %q: p1 and p2 must be distinct branches", name)}
	}

	mu := &Mutual{
		id:    len(m.mutuals) + 1,
		name:  name,
		model: m,
		p1:    p1.id,
		p2:    p2.id,
		M12:   m12,
		M21:   m21,
	}
	if len(desc) > 0 {
		mu.desc = desc[0]
	}
	m.mutuals = append(m.mutuals, mu)
	p1.mutuals = append(p1.mutuals, mu.id)
	p2.mutuals = append(p2.mutuals, mu.id)

	m.x = nil
	m.solved = false
	return mu, nil
}

// AddFault attaches a fault to a Node (shunt fault) or a Branch (series
// break). r is the transition resistance (Ω, real, must be >= 0).
func (m *Model) AddFault(name string, target any, code Code, r float64, desc ...string) (*Fault, error) {
	if r < 0 {
		return nil, &ValueError{Msg: fmt.Sprintf("fault %q: transition resistance r must be >= 0, got %g", name, r)}
	}
	if !code.valid() {
		return nil, &ValueError{Msg: fmt.Sprintf("fault %q: unrecognised fault code %q", name, code)}
	}

	f := &Fault{
		id:    len(m.faults) + 1,
		name:  name,
		model: m,
		code:  code,
		r:     r,
	}
	if len(desc) > 0 {
		f.desc = desc[0]
	}

	switch t := target.(type) {
	case *Node:
		if t == nil {
			return nil, &TypeError{Msg: fmt.Sprintf("fault %q: target Node is nil", name)}
		}
		if t.model != m {
			return nil, &ReferenceError{Msg: fmt.Sprintf("fault %q: node belongs to a different Model", name)}
		}
		if t.fault != 0 {
			return nil, &ValueError{Msg: fmt.Sprintf("fault %q: node %q already carries a fault", name, t.name)}
		}
		f.kind = ShuntFault
		f.target = t.id
		t.fault = f.id
	case *Branch:
		if t == nil {
			return nil, &TypeError{Msg: fmt.Sprintf("fault %q: target Branch is nil", name)}
		}
		if t.model != m {
			return nil, &ReferenceError{Msg: fmt.Sprintf("fault %q: branch belongs to a different Model", name)}
		}
		if t.fault != 0 {
			return nil, &ValueError{Msg: fmt.Sprintf("fault %q: branch %q already carries a fault", name, t.name)}
		}
		if !code.seriesMeaningful() {
			return nil, &ValueError{Msg: fmt.Sprintf("fault %q: code %q is not meaningful for a series break", name, code)}
		}
		f.kind = SeriesFault
		f.target = t.id
		t.fault = f.id
	default:
		return nil, &TypeError{Msg: fmt.Sprintf("fault %q: target must be *Node or *Branch, got %T", name, target)}
	}

	m.faults = append(m.faults, f)
	m.x = nil
	m.solved = false
	return f, nil
}

// Solve validates, assembles, and solves the network once, storing the
// resulting vector X on the Model (spec.md §4.4). A failed solve leaves X
// unset.
func (m *Model) Solve() error {
	m.x = nil
	m.solved = false

	if err := m.Validate(); err != nil {
		return err
	}

	n := m.Dimension()
	if n == 0 {
		return &StateError{Msg: "model has no nodes, branches, or faults to solve"}
	}

	sys, err := matrix.New(n, matrix.DefaultOptions())
	if err != nil {
		return err
	}
	defer sys.Destroy()

	if err := m.assemble(sys); err != nil {
		return err
	}

	x, err := sys.Solve()
	if err != nil {
		return &NumericalError{Msg: err.Error()}
	}

	m.x = x
	m.solved = true
	return nil
}

// Solved reports whether X is available.
func (m *Model) Solved() bool { return m.solved }

// Solution returns the raw solution vector X (1-indexed, X[0] unused) and
// whether it is present.
func (m *Model) Solution() ([]complex128, bool) { return m.x, m.solved }

func (m *Model) requireSolved() error {
	if !m.solved {
		return &StateError{Msg: "model has not been solved"}
	}
	return nil
}

// --- index layout (spec.md §3, §4.2, §4.3) ---

func branchRow(p, s int) int { return 3*(p-1) + s + 1 }

func nodeRow(np, q, s int) int { return 3*np + 3*(q-1) + s + 1 }

func faultRow(np, nq, k, s int) int { return 3*(np+nq) + 3*(k-1) + s + 1 }

func (m *Model) voltageAt(nodeID int) (sequence.Triple, error) {
	if nodeID == Ground {
		return sequence.Triple{}, nil
	}
	if err := m.requireSolved(); err != nil {
		return sequence.Triple{}, err
	}
	np := len(m.branches)
	var u sequence.Triple
	for s := 0; s < 3; s++ {
		u[s] = m.x[nodeRow(np, nodeID, s)]
	}
	return u, nil
}

func (m *Model) branchCurrentRaw(p int) (sequence.Triple, error) {
	if err := m.requireSolved(); err != nil {
		return sequence.Triple{}, err
	}
	var i sequence.Triple
	for s := 0; s < 3; s++ {
		i[s] = m.x[branchRow(p, s)]
	}
	return i, nil
}

func (m *Model) faultVector(k int) (sequence.Triple, error) {
	if err := m.requireSolved(); err != nil {
		return sequence.Triple{}, err
	}
	np, nq := len(m.branches), len(m.nodes)
	var v sequence.Triple
	for s := 0; s < 3; s++ {
		v[s] = m.x[faultRow(np, nq, k, s)]
	}
	return v, nil
}
