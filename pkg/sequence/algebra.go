// Package sequence implements symmetrical-component algebra: the
// sequence/phase transform, and a named-quantity registry mapping string
// keys (spec.md §4.1 — "U1", "IA", "ZAB", "S", ...) to closed-form
// functions of sequence voltage and current triples.
package sequence

import "github.com/edp1096/fault-seq/internal/consts"

// Triple is a sequence or phase quantity: index 0 = positive/A, index 1 =
// negative/B, index 2 = zero/C, depending on context (see ToPhase/ToSequence).
type Triple [3]complex128

// ToPhase reconstructs phase quantities (A, B, C) from sequence components
// (1, 2, 0), per spec.md §4.1:
//
//	xA = x1 + x2 + x0
//	xB = a^2*x1 + a*x2 + x0
//	xC = a*x1 + a^2*x2 + x0
func ToPhase(seq Triple) Triple {
	x1, x2, x0 := seq[0], seq[1], seq[2]
	return Triple{
		x1 + x2 + x0,
		consts.A2*x1 + consts.A*x2 + x0,
		consts.A*x1 + consts.A2*x2 + x0,
	}
}

// ToSequence is the inverse of ToPhase: x_seq = Phi^-1 * x_phase, where
// Phi^-1 = (1/3) * [[1, a, a^2], [1, a^2, a], [1, 1, 1]].
func ToSequence(phase Triple) Triple {
	xa, xb, xc := phase[0], phase[1], phase[2]
	third := complex(1.0/3.0, 0)
	return Triple{
		third * (xa + consts.A*xb + consts.A2*xc),
		third * (xa + consts.A2*xb + consts.A*xc),
		third * (xa + xb + xc),
	}
}

// LineToLine computes the three line-to-line differences from a phase
// triple: xAB = xA-xB, xBC = xB-xC, xCA = xC-xA.
func LineToLine(phase Triple) Triple {
	return Triple{
		phase[0] - phase[1],
		phase[1] - phase[2],
		phase[2] - phase[0],
	}
}

// PhaseCoeffs returns the sequence-domain coefficient vector (v1,v2,v0)
// such that x_phase[phase] = v1*x1 + v2*x2 + v0*x0 — the row of Phi
// selecting phase A (0), B (1), or C (2). Used to expand phase-domain
// boundary conditions into sequence-domain matrix rows (spec.md §4.3).
func PhaseCoeffs(phase int) Triple {
	switch phase {
	case 0:
		return Triple{1, 1, 1}
	case 1:
		return Triple{consts.A2, consts.A, 1}
	case 2:
		return Triple{consts.A, consts.A2, 1}
	default:
		panic("sequence: invalid phase index")
	}
}
