package network

import "github.com/edp1096/fault-seq/pkg/matrix"

// Mutual is a zero-sequence-only coupling between two distinct branches of
// the same Model (spec.md §3), typical of parallel overhead lines sharing
// a right-of-way.
type Mutual struct {
	id    int
	name  string
	desc  string
	model *Model

	p1, p2   int // branch ids
	M12, M21 complex128
}

func (mu *Mutual) ID() int             { return mu.id }
func (mu *Mutual) Name() string        { return mu.name }
func (mu *Mutual) Description() string { return mu.desc }
func (mu *Mutual) P1() int             { return mu.p1 }
func (mu *Mutual) P2() int             { return mu.p2 }

// stamp adds M12 and M21 into the zero-sequence rows of the two coupled
// branches, per spec.md §4.2:
//
//	(row p1.zero, col p2.zero) += M12
//	(row p2.zero, col p1.zero) += M21
func (mu *Mutual) stamp(sys *matrix.System) {
	const zeroSeq = 2
	row1, row2 := branchRow(mu.p1, zeroSeq), branchRow(mu.p2, zeroSeq)
	sys.AddElement(row1, row2, mu.M12)
	sys.AddElement(row2, row1, mu.M21)
}
