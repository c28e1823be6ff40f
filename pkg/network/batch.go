package network

import (
	"fmt"

	"github.com/edp1096/fault-seq/pkg/sequence"
)

// AddNodes bulk-creates n nodes named baseName1..baseNameN (spec.md §2
// item 7, §6 add_nodes).
func (m *Model) AddNodes(n int, baseName string) ([]*Node, error) {
	if n <= 0 {
		return nil, &ValueError{Msg: fmt.Sprintf("AddNodes: n must be positive, got %d", n)}
	}
	nodes := make([]*Node, n)
	for i := 0; i < n; i++ {
		node, err := m.AddNode(fmt.Sprintf("%s%d", baseName, i+1))
		if err != nil {
			return nil, err
		}
		nodes[i] = node
	}
	return nodes, nil
}

// AddBranchSection bulk-creates one Branch per row connecting nodesLeft[i]
// to nodesRight[i] (each either *Node or Ground), sharing a
// positive/negative-sequence impedance vector z12, a zero-sequence
// impedance matrix z0 (its off-diagonal entries become Mutuals), and
// optional susceptance counterparts b12/b0 of the same shapes
// (spec.md §6 add_branch_section).
func (m *Model) AddBranchSection(
	name string,
	nodesLeft, nodesRight []any,
	z12 []complex128,
	z0 [][]complex128,
	b12 []complex128,
	b0 [][]complex128,
) ([]*Branch, error) {
	n := len(nodesLeft)
	if len(nodesRight) != n || len(z12) != n || len(z0) != n {
		return nil, &ValueError{Msg: "AddBranchSection: nodesLeft, nodesRight, Z12, and Z0 must have matching length"}
	}
	for i, row := range z0 {
		if len(row) != n {
			return nil, &ValueError{Msg: fmt.Sprintf("AddBranchSection: Z0 row %d has length %d, want %d", i, len(row), n)}
		}
	}
	if b12 != nil && len(b12) != n {
		return nil, &ValueError{Msg: "AddBranchSection: B12, when given, must match Z12 in length"}
	}
	if b0 != nil {
		if len(b0) != n {
			return nil, &ValueError{Msg: "AddBranchSection: B0, when given, must match Z0 in shape"}
		}
		for i, row := range b0 {
			if len(row) != n {
				return nil, &ValueError{Msg: fmt.Sprintf("AddBranchSection: B0 row %d has length %d, want %d", i, len(row), n)}
			}
		}
	}

	branches := make([]*Branch, n)
	for i := 0; i < n; i++ {
		z := sequence.Triple{z12[i], z12[i], z0[i][i]}
		var b sequence.Triple
		if b12 != nil {
			b[0], b[1] = b12[i], b12[i]
		}
		if b0 != nil {
			b[2] = b0[i][i]
		}

		br, err := m.AddBranch(fmt.Sprintf("%s%d", name, i+1), nodesLeft[i], nodesRight[i], z, sequence.Triple{}, IdentityTransformer, b)
		if err != nil {
			return nil, err
		}
		branches[i] = br
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if z0[i][j] == 0 && z0[j][i] == 0 {
				continue
			}
			mname := fmt.Sprintf("%s_M%d%d", name, i+1, j+1)
			if _, err := m.AddMutual(mname, branches[i], branches[j], z0[i][j], z0[j][i]); err != nil {
				return nil, err
			}
		}
	}

	return branches, nil
}
