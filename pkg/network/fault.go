package network

import (
	"fmt"

	"github.com/edp1096/fault-seq/pkg/matrix"
	"github.com/edp1096/fault-seq/pkg/sequence"
)

// Code identifies a fault's boundary-condition type (spec.md §6).
type Code string

const (
	A0   Code = "A0"
	B0   Code = "B0"
	C0   Code = "C0"
	A0r  Code = "A0r"
	B0r  Code = "B0r"
	C0r  Code = "C0r"
	AB   Code = "AB"
	BC   Code = "BC"
	CA   Code = "CA"
	ABr  Code = "ABr"
	BCr  Code = "BCr"
	CAr  Code = "CAr"
	AB0  Code = "AB0"
	BC0  Code = "BC0"
	CA0  Code = "CA0"
	ABC  Code = "ABC"
	ABC0 Code = "ABC0"
	N0   Code = "N0"
)

var allCodes = map[Code]bool{
	A0: true, B0: true, C0: true, A0r: true, B0r: true, C0r: true,
	AB: true, BC: true, CA: true, ABr: true, BCr: true, CAr: true,
	AB0: true, BC0: true, CA0: true, ABC: true, ABC0: true, N0: true,
}

// seriesCodes is the subset of Code meaningful as a series break
// (spec.md §6: "For series-break faults only the subset ... is
// meaningful").
var seriesCodes = map[Code]bool{
	A0: true, B0: true, C0: true, AB: true, BC: true, CA: true, ABC: true, N0: true,
}

func (c Code) valid() bool            { return allCodes[c] }
func (c Code) seriesMeaningful() bool { return seriesCodes[c] }

// Kind distinguishes a shunt fault (attached to a Node) from a series
// break (attached to a Branch).
type Kind int

const (
	ShuntFault Kind = iota
	SeriesFault
)

// Fault is either a shunt short-circuit at a Node or a series break on a
// Branch (spec.md §3).
type Fault struct {
	id    int
	name  string
	desc  string
	model *Model

	kind   Kind
	target int // node id (shunt) or branch id (series)
	code   Code
	r      float64 // transition resistance, Ω
}

func (f *Fault) ID() int             { return f.id }
func (f *Fault) Name() string        { return f.name }
func (f *Fault) Description() string { return f.desc }
func (f *Fault) Kind() Kind          { return f.kind }
func (f *Fault) TargetID() int       { return f.target }
func (f *Fault) Code() Code          { return f.code }
func (f *Fault) R() float64          { return f.r }

func (f *Fault) detach() {
	switch f.kind {
	case ShuntFault:
		f.model.nodes[f.target-1].fault = 0
	case SeriesFault:
		f.model.branches[f.target-1].fault = 0
	}
}

// stamp dispatches to the shunt or series boundary-condition encoder.
func (f *Fault) stamp(sys *matrix.System, np, nq int) error {
	switch f.kind {
	case ShuntFault:
		return f.stampShunt(sys, np, nq)
	default:
		return f.stampSeries(sys, np, nq)
	}
}

type term struct {
	col   int
	coeff complex128
}

func emitRow(sys *matrix.System, row int, terms ...term) {
	for _, t := range terms {
		if t.coeff != 0 {
			sys.AddElement(row, t.col, t.coeff)
		}
	}
}

func scale(v sequence.Triple, k complex128) sequence.Triple {
	return sequence.Triple{v[0] * k, v[1] * k, v[2] * k}
}

func add3(a, b sequence.Triple) sequence.Triple {
	return sequence.Triple{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func sub3(a, b sequence.Triple) sequence.Triple {
	return sequence.Triple{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func terms(cols [3]int, coef sequence.Triple) []term {
	return []term{{cols[0], coef[0]}, {cols[1], coef[1]}, {cols[2], coef[2]}}
}

// stampShunt encodes the 18 classical shunt boundary conditions of
// spec.md §4.3's first table. uCols are the faulted node's voltage (=row)
// columns; iCols are this fault's own sequence fault-current unknown
// columns, at the same offset as the fault's own three rows.
func (f *Fault) stampShunt(sys *matrix.System, np, nq int) error {
	q := f.target
	k := f.id
	rowBase := faultRow(np, nq, k, 0)

	var uCols, iCols [3]int
	for s := 0; s < 3; s++ {
		uCols[s] = nodeRow(np, q, s)
		iCols[s] = faultRow(np, nq, k, s)
	}

	vA := sequence.PhaseCoeffs(0)
	vB := sequence.PhaseCoeffs(1)
	vC := sequence.PhaseCoeffs(2)
	r := complex(f.r, 0)

	row := func(offset int, uCoef, iCoef sequence.Triple) {
		ts := append(terms(uCols, uCoef), terms(iCols, iCoef)...)
		emitRow(sys, rowBase+offset, ts...)
	}

	var zero sequence.Triple

	switch f.code {
	case A0:
		row(0, vA, zero)
		row(1, zero, vB)
		row(2, zero, vC)
	case B0:
		row(0, vB, zero)
		row(1, zero, vC)
		row(2, zero, vA)
	case C0:
		row(0, vC, zero)
		row(1, zero, vA)
		row(2, zero, vB)
	case A0r:
		row(0, vA, scale(vA, -r))
		row(1, zero, vB)
		row(2, zero, vC)
	case B0r:
		row(0, vB, scale(vB, -r))
		row(1, zero, vC)
		row(2, zero, vA)
	case C0r:
		row(0, vC, scale(vC, -r))
		row(1, zero, vA)
		row(2, zero, vB)
	case AB:
		row(0, sub3(vA, vB), zero)
		row(1, zero, add3(vA, vB))
		row(2, zero, vC)
	case BC:
		row(0, sub3(vB, vC), zero)
		row(1, zero, add3(vB, vC))
		row(2, zero, vA)
	case CA:
		row(0, sub3(vC, vA), zero)
		row(1, zero, add3(vC, vA))
		row(2, zero, vB)
	case ABr:
		row(0, sub3(vA, vB), scale(vA, -r))
		row(1, zero, add3(vA, vB))
		row(2, zero, vC)
	case BCr:
		row(0, sub3(vB, vC), scale(vB, -r))
		row(1, zero, add3(vB, vC))
		row(2, zero, vA)
	case CAr:
		row(0, sub3(vC, vA), scale(vC, -r))
		row(1, zero, add3(vC, vA))
		row(2, zero, vB)
	case AB0:
		row(0, vA, zero)
		row(1, vB, zero)
		row(2, zero, vC)
	case BC0:
		row(0, vB, zero)
		row(1, vC, zero)
		row(2, zero, vA)
	case CA0:
		row(0, vC, zero)
		row(1, vA, zero)
		row(2, zero, vB)
	case ABC:
		emitRow(sys, rowBase+0, term{uCols[0], 1})
		emitRow(sys, rowBase+1, term{uCols[1], 1})
		emitRow(sys, rowBase+2, term{iCols[2], 1})
	case ABC0:
		emitRow(sys, rowBase+0, term{uCols[0], 1})
		emitRow(sys, rowBase+1, term{uCols[1], 1})
		emitRow(sys, rowBase+2, term{uCols[2], 1})
	case N0:
		emitRow(sys, rowBase+0, term{iCols[0], 1})
		emitRow(sys, rowBase+1, term{iCols[1], 1})
		emitRow(sys, rowBase+2, term{uCols[2], 1})
	default:
		return &ValueError{Msg: fmt.Sprintf("fault %q: unrecognised shunt fault code %q", f.name, f.code)}
	}

	// Inject the fault current into the node's KCL rows with coefficient -1.
	for s := 0; s < 3; s++ {
		sys.AddElement(uCols[s], iCols[s], -1)
	}
	return nil
}

// stampSeries encodes the series-break boundary conditions of spec.md
// §4.3's second table. iCols are the broken branch's own current (=row)
// columns; duCols are this fault's ΔU sequence unknown columns.
func (f *Fault) stampSeries(sys *matrix.System, np, nq int) error {
	p := f.target
	k := f.id
	rowBase := faultRow(np, nq, k, 0)

	var iCols, duCols [3]int
	for s := 0; s < 3; s++ {
		iCols[s] = branchRow(p, s)
		duCols[s] = faultRow(np, nq, k, s)
	}

	vA := sequence.PhaseCoeffs(0)
	vB := sequence.PhaseCoeffs(1)
	vC := sequence.PhaseCoeffs(2)

	row := func(offset int, iCoef, duCoef sequence.Triple) {
		ts := append(terms(iCols, iCoef), terms(duCols, duCoef)...)
		emitRow(sys, rowBase+offset, ts...)
	}

	var zero sequence.Triple

	switch f.code {
	case A0:
		row(0, vA, zero)
		row(1, zero, vB)
		row(2, zero, vC)
	case B0:
		row(0, vB, zero)
		row(1, zero, vC)
		row(2, zero, vA)
	case C0:
		row(0, vC, zero)
		row(1, zero, vA)
		row(2, zero, vB)
	case AB:
		row(0, vA, zero)
		row(1, vB, zero)
		row(2, zero, vC)
	case BC:
		row(0, vB, zero)
		row(1, vC, zero)
		row(2, zero, vA)
	case CA:
		row(0, vC, zero)
		row(1, vA, zero)
		row(2, zero, vB)
	case ABC:
		emitRow(sys, rowBase+0, term{iCols[0], 1})
		emitRow(sys, rowBase+1, term{iCols[1], 1})
		emitRow(sys, rowBase+2, term{iCols[2], 1})
	case N0:
		emitRow(sys, rowBase+0, term{duCols[0], 1})
		emitRow(sys, rowBase+1, term{duCols[1], 1})
		emitRow(sys, rowBase+2, term{iCols[2], 1})
	default:
		return &ValueError{Msg: fmt.Sprintf("fault %q: code %q is not meaningful for a series break", f.name, f.code)}
	}

	// Insert the series voltage drop into the branch's KVL rows with
	// coefficient +1.
	for s := 0; s < 3; s++ {
		sys.AddElement(iCols[s], duCols[s], 1)
	}
	return nil
}

// GetResult returns the fault's auxiliary vector: the sequence fault
// current for a shunt fault, or the sequence voltage-break for a series
// break (spec.md §3, §4.5).
func (f *Fault) GetResult() (sequence.Triple, error) {
	return f.model.faultVector(f.id)
}

// Query evaluates a named quantity at this fault. For a shunt fault, U is
// the attached node's voltage and I is the fault current. For a series
// break, U is the voltage-break ΔU and I is the broken branch's raw
// current slice (spec.md §4.5).
func (f *Fault) Query(name string, format ...sequence.Format) (any, error) {
	fn, ok := sequence.Lookup(name)
	if !ok {
		return nil, &ValueError{Msg: "unknown named quantity: " + name}
	}

	var u, i sequence.Triple
	var err error
	switch f.kind {
	case ShuntFault:
		u, err = f.model.voltageAt(f.target)
		if err != nil {
			return nil, err
		}
		i, err = f.GetResult()
	default:
		u, err = f.GetResult()
		if err != nil {
			return nil, err
		}
		i, err = f.model.branchCurrentRaw(f.target)
	}
	if err != nil {
		return nil, err
	}

	return renderResult(fn(u, i), format), nil
}

// BranchContributions reports, for a shunt fault, the current flowing from
// each incident branch toward the fault point: each incident branch is
// evaluated from whichever side touches the faulted node, with the sign
// reversed so the result points into the fault (spec.md §4.5).
func (f *Fault) BranchContributions() (map[int]sequence.Triple, error) {
	if f.kind != ShuntFault {
		return nil, &TypeError{Msg: "BranchContributions is only defined for a shunt fault"}
	}
	node := f.model.nodes[f.target-1]
	out := make(map[int]sequence.Triple, len(node.branches))
	for _, bid := range node.branches {
		b := f.model.branches[bid-1]
		side := Side1
		if b.q2 == node.id {
			side = Side2
		}
		i, err := b.GetResult(side)
		if err != nil {
			return nil, err
		}
		out[bid] = sequence.Triple{-i[0], -i[1], -i[2]}
	}
	return out, nil
}
