package network

import "fmt"

// TypeError reports that an argument is not of a category a constructor
// accepts (spec.md §7.1), e.g. a fault target that is neither a Node nor
// a Branch.
type TypeError struct{ Msg string }

func (e *TypeError) Error() string { return fmt.Sprintf("network: type error: %s", e.Msg) }

// ReferenceError reports that an entity belongs to a different Model, or
// references a detached entity (spec.md §7.2).
type ReferenceError struct{ Msg string }

func (e *ReferenceError) Error() string { return fmt.Sprintf("network: reference error: %s", e.Msg) }

// ValueError reports a ground sentinel misuse, a mismatched vector/matrix
// size in a bulk helper, or an unknown fault code (spec.md §7.3).
type ValueError struct{ Msg string }

func (e *ValueError) Error() string { return fmt.Sprintf("network: value error: %s", e.Msg) }

// StateError reports a query before solve() produced X, or a query against
// a cleared Model (spec.md §7.4).
type StateError struct{ Msg string }

func (e *StateError) Error() string { return fmt.Sprintf("network: state error: %s", e.Msg) }

// NumericalError reports sparse factorisation singularity (spec.md §7.5).
type NumericalError struct{ Msg string }

func (e *NumericalError) Error() string { return fmt.Sprintf("network: numerical error: %s", e.Msg) }

// Warning is a non-fatal anomaly collected on the Model rather than
// returned (spec.md §7.6), e.g. a branch with both endpoints equal.
type Warning struct{ Msg string }

func (w Warning) String() string { return w.Msg }
