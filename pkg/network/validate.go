package network

import (
	"fmt"

	"github.com/edp1096/fault-seq/pkg/sequence"
)

// Validate performs the structural checks of spec.md §4.6 before solve:
// every branch endpoint resolves to a live node of this Model or ground,
// every mutual references two distinct branches of this Model, every
// fault references a live node or branch of this Model, and every fault
// code is recognised. Constructors already enforce these at build time;
// Validate re-checks them as a defensive pass. It does not decide whether
// the system is solvable; see TestForSingularity and Solve for that.
func (m *Model) Validate() error {
	np, nq := len(m.branches), len(m.nodes)

	for _, b := range m.branches {
		if b.q1 < 0 || b.q1 > nq || b.q2 < 0 || b.q2 > nq {
			return &ReferenceError{Msg: fmt.Sprintf("branch %q: endpoint out of range", b.name)}
		}
	}
	for _, mu := range m.mutuals {
		if mu.p1 < 1 || mu.p1 > np || mu.p2 < 1 || mu.p2 > np {
			return &ReferenceError{Msg: fmt.Sprintf("mutual %q: branch id out of range", mu.name)}
		}
		if mu.p1 == mu.p2 {
			return &ValueError{Msg: fmt.Sprintf("mutual %q: p1 and p2 must be distinct", mu.name)}
		}
	}
	for _, f := range m.faults {
		if !f.code.valid() {
			return &ValueError{Msg: fmt.Sprintf("fault %q: unrecognised fault code %q", f.name, f.code)}
		}
		switch f.kind {
		case ShuntFault:
			if f.target < 1 || f.target > nq {
				return &ReferenceError{Msg: fmt.Sprintf("fault %q: node id out of range", f.name)}
			}
		case SeriesFault:
			if f.target < 1 || f.target > np {
				return &ReferenceError{Msg: fmt.Sprintf("fault %q: branch id out of range", f.name)}
			}
			if !f.code.seriesMeaningful() {
				return &ValueError{Msg: fmt.Sprintf("fault %q: code %q is not meaningful for a series break", f.name, f.code)}
			}
		}
	}
	return nil
}

// TestForSingularity runs a pre-solve structural singularity check: it
// finds every connected component of nodes+branches that does not reach
// Ground, and warns if that component has neither an EMF source nor a
// fault providing a grounding path (spec.md §4.6). It does not guarantee
// the assembled matrix is non-singular — the solver's own numerical
// factorisation is the final authority (spec.md §7.5) — it only flags the
// structural anomaly a classical source-free, fault-free island produces.
func (m *Model) TestForSingularity() []Warning {
	nq := len(m.nodes)
	if nq == 0 {
		return nil
	}

	uf := newUnionFind(nq + 1) // index nq is the Ground representative
	groundIdx := nq
	for _, b := range m.branches {
		a := groundIdx
		if b.q1 != Ground {
			a = b.q1 - 1
		}
		c := groundIdx
		if b.q2 != Ground {
			c = b.q2 - 1
		}
		uf.union(a, c)
	}

	groundRoot := uf.find(groundIdx)

	type component struct {
		hasEMF   bool
		hasFault bool
		nodeIDs  []int
	}
	comps := make(map[int]*component)
	for _, n := range m.nodes {
		root := uf.find(n.id - 1)
		if root == groundRoot {
			continue
		}
		c, ok := comps[root]
		if !ok {
			c = &component{}
			comps[root] = c
		}
		c.nodeIDs = append(c.nodeIDs, n.id)
		if n.fault != 0 {
			c.hasFault = true
		}
	}
	for _, b := range m.branches {
		root := groundRoot
		if b.q1 != Ground {
			root = uf.find(b.q1 - 1)
		} else if b.q2 != Ground {
			root = uf.find(b.q2 - 1)
		}
		if root == groundRoot {
			continue
		}
		if c, ok := comps[root]; ok {
			if b.E != (sequence.Triple{}) {
				c.hasEMF = true
			}
		}
	}

	var warnings []Warning
	for _, c := range comps {
		if !c.hasEMF && !c.hasFault {
			warnings = append(warnings, Warning{
				Msg: fmt.Sprintf("component containing nodes %v has no EMF source and no grounding fault; matrix may be singular", c.nodeIDs),
			})
		}
	}
	return warnings
}

// union-find over node indices 0..n-1, with index n reserved for Ground.
type unionFind struct {
	parent []int
}

func newUnionFind(n int) *unionFind {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return &unionFind{parent: p}
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra != rb {
		u.parent[ra] = rb
	}
}
