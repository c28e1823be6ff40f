package network

import "github.com/edp1096/fault-seq/pkg/matrix"

// assemble stamps every branch, mutual, and fault into sys, per spec.md
// §4.2-§4.3. Node rows receive no dedicated pass: each branch stamps its
// own contribution to the node KCL rows of its two endpoints directly.
func (m *Model) assemble(sys *matrix.System) error {
	np, nq := len(m.branches), len(m.nodes)

	for _, b := range m.branches {
		b.stamp(sys, np)
	}
	for _, mu := range m.mutuals {
		mu.stamp(sys)
	}
	for _, f := range m.faults {
		if err := f.stamp(sys, np, nq); err != nil {
			return err
		}
	}
	return nil
}
