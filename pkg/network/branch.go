package network

import (
	"math"
	"strings"

	"github.com/edp1096/fault-seq/pkg/matrix"
	"github.com/edp1096/fault-seq/pkg/sequence"
)

// Transformer is the ideal transformer ratio/group pair T=(k,g) carried by
// a Branch. The identity value (1, 0) means "no transformer, plain series
// impedance" (spec.md §3).
type Transformer struct {
	K float64 // ratio, real > 0
	G int     // vector group, 0..11
}

// IdentityTransformer is the default T for a non-transformer branch.
var IdentityTransformer = Transformer{K: 1, G: 0}

// Side selects which endpoint a branch current or query is measured from
// (spec.md §4.5).
type Side int

const (
	Side1 Side = iota // q1 side
	Side2             // q2 side
)

// Branch is a directed series element from q1 to q2 (each a Node id, 0
// meaning Ground), carrying series sequence impedance Z, internal EMF E,
// an ideal transformer T, and total line-charging susceptance B
// (spec.md §3).
type Branch struct {
	id    int
	name  string
	desc  string
	model *Model

	q1, q2 int // 0 = Ground
	Z      sequence.Triple
	E      sequence.Triple
	T      Transformer
	B      sequence.Triple

	mutuals []int // mutual ids touching this branch
	fault   int   // attached fault id, 0 if none
}

func (b *Branch) ID() int               { return b.id }
func (b *Branch) Name() string          { return b.name }
func (b *Branch) Description() string   { return b.desc }
func (b *Branch) Q1() int               { return b.q1 }
func (b *Branch) Q2() int               { return b.q2 }
func (b *Branch) MutualIDs() []int      { out := make([]int, len(b.mutuals)); copy(out, b.mutuals); return out }
func (b *Branch) FaultID() int          { return b.fault }
func (b *Branch) IsTransformer() bool   { return b.T != IdentityTransformer }

// transformerCoeff returns K_s, the voltage/current transfer factor from
// the q2 side to the q1 side for sequence s (0=positive,1=negative,2=zero),
// per spec.md §4.2/§6:
//
//	K1 = k * exp(-j*g*pi/6)
//	K0 = K1
//	K2 = conj(K1) if g is odd, else K1
func (b *Branch) transformerCoeff(s int) complex128 {
	theta := -float64(b.T.G) * math.Pi / 6
	k1 := complex(b.T.K*math.Cos(theta), b.T.K*math.Sin(theta))
	switch s {
	case 1: // negative sequence
		if b.T.G%2 != 0 {
			return complex(real(k1), -imag(k1))
		}
		return k1
	default: // positive (0) and zero (2) sequence
		return k1
	}
}

// stamp assembles the branch's KVL row, its node KCL contributions, and
// its shunt susceptance contribution, per spec.md §4.2.
func (b *Branch) stamp(sys *matrix.System, np int) {
	for s := 0; s < 3; s++ {
		row := branchRow(b.id, s)

		sys.AddElement(row, row, b.Z[s])
		sys.AddRHS(row, b.E[s])

		if b.q1 != Ground {
			q1Row := nodeRow(np, b.q1, s)
			sys.AddElement(row, q1Row, -1)
			sys.AddElement(q1Row, row, -1)
			sys.AddElement(q1Row, q1Row, -b.B[s]/2)
		}
		if b.q2 != Ground {
			ks := b.transformerCoeff(s)
			q2Row := nodeRow(np, b.q2, s)
			sys.AddElement(row, q2Row, ks)
			sys.AddElement(q2Row, row, ks)
			sys.AddElement(q2Row, q2Row, -b.B[s]/2)
		}
	}
}

// voltageAt reads the node voltage on the given side (zero if that side is
// Ground).
func (b *Branch) voltageAt(side Side) (sequence.Triple, error) {
	node := b.q1
	if side == Side2 {
		node = b.q2
	}
	return b.model.voltageAt(node)
}

// GetResult returns the sequence current measured from the requested side,
// including that side's shunt-susceptance contribution (spec.md §4.5):
//
//	side q1: I = X[branch] + U_q1 * B/2
//	side q2: I = -K*X[branch] + U_q2 * B/2
func (b *Branch) GetResult(side Side) (sequence.Triple, error) {
	i, err := b.model.branchCurrentRaw(b.id)
	if err != nil {
		return sequence.Triple{}, err
	}

	switch side {
	case Side1:
		if b.q1 != Ground {
			u, err := b.model.voltageAt(b.q1)
			if err != nil {
				return sequence.Triple{}, err
			}
			for s := 0; s < 3; s++ {
				i[s] += u[s] * b.B[s] / 2
			}
		}
		return i, nil
	default: // Side2
		var u sequence.Triple
		if b.q2 != Ground {
			var err error
			u, err = b.model.voltageAt(b.q2)
			if err != nil {
				return sequence.Triple{}, err
			}
		}
		for s := 0; s < 3; s++ {
			ks := b.transformerCoeff(s)
			i[s] = -ks*i[s] + u[s]*b.B[s]/2
		}
		return i, nil
	}
}

// Query evaluates a named quantity at this branch. name may be prefixed
// with "q1" or "q2" to select the measurement side (spec.md §9 design
// note: "explicit side-prefix parsing for branches"); the default side,
// with no prefix, is q1.
func (b *Branch) Query(name string, format ...sequence.Format) (any, error) {
	side := Side1
	rest := name
	switch {
	case strings.HasPrefix(name, "q1"):
		side, rest = Side1, name[2:]
	case strings.HasPrefix(name, "q2"):
		side, rest = Side2, name[2:]
	}

	fn, ok := sequence.Lookup(rest)
	if !ok {
		return nil, &ValueError{Msg: "unknown named quantity: " + name}
	}

	i, err := b.GetResult(side)
	if err != nil {
		return nil, err
	}
	u, err := b.voltageAt(side)
	if err != nil {
		return nil, err
	}

	result := fn(u, i)
	return renderResult(result, format), nil
}
