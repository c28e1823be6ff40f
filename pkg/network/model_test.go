package network_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edp1096/fault-seq/pkg/network"
	"github.com/edp1096/fault-seq/pkg/sequence"
)

func TestAddNodeAssignsStableIDs(t *testing.T) {
	m := network.New()
	n1, err := m.AddNode("A")
	require.NoError(t, err)
	n2, err := m.AddNode("B")
	require.NoError(t, err)

	require.Equal(t, 1, n1.ID())
	require.Equal(t, 2, n2.ID())
	require.Equal(t, 2, m.NumNodes())
}

func TestAddBranchGroundEndpoint(t *testing.T) {
	m := network.New()
	n1, _ := m.AddNode("A")

	b, err := m.AddBranch("Src", network.Ground, n1, sequence.Triple{1, 1, 1}, sequence.Triple{100, 0, 0}, network.IdentityTransformer, sequence.Triple{})
	require.NoError(t, err)
	require.Equal(t, network.Ground, b.Q1())
	require.Equal(t, n1.ID(), b.Q2())
}

func TestAddBranchRejectsForeignGroundValue(t *testing.T) {
	m := network.New()
	n1, _ := m.AddNode("A")

	_, err := m.AddBranch("Bad", 7, n1, sequence.Triple{}, sequence.Triple{}, network.IdentityTransformer, sequence.Triple{})
	require.Error(t, err)
	require.IsType(t, &network.ValueError{}, err)
}

func TestAddBranchRejectsWrongType(t *testing.T) {
	m := network.New()
	n1, _ := m.AddNode("A")

	_, err := m.AddBranch("Bad", "not-a-node", n1, sequence.Triple{}, sequence.Triple{}, network.IdentityTransformer, sequence.Triple{})
	require.Error(t, err)
	require.IsType(t, &network.TypeError{}, err)
}

func TestAddBranchRejectsForeignModel(t *testing.T) {
	m1 := network.New()
	m2 := network.New()
	n1, _ := m1.AddNode("A")
	n2, _ := m2.AddNode("B")

	_, err := m2.AddBranch("Bad", n1, n2, sequence.Triple{}, sequence.Triple{}, network.IdentityTransformer, sequence.Triple{})
	require.Error(t, err)
	require.IsType(t, &network.ReferenceError{}, err)
}

func TestAddBranchSelfLoopIsWarningNotError(t *testing.T) {
	m := network.New()
	n1, _ := m.AddNode("A")

	_, err := m.AddBranch("Loop", n1, n1, sequence.Triple{1, 1, 1}, sequence.Triple{}, network.IdentityTransformer, sequence.Triple{})
	require.NoError(t, err)
	require.Len(t, m.Warnings, 1)
}

func TestAddBranchRejectsBadTransformer(t *testing.T) {
	m := network.New()
	n1, _ := m.AddNode("A")

	_, err := m.AddBranch("T1", network.Ground, n1, sequence.Triple{}, sequence.Triple{}, network.Transformer{K: 0, G: 0}, sequence.Triple{})
	require.Error(t, err)

	_, err = m.AddBranch("T2", network.Ground, n1, sequence.Triple{}, sequence.Triple{}, network.Transformer{K: 1, G: 12}, sequence.Triple{})
	require.Error(t, err)
}

func TestAddMutualRequiresDistinctBranches(t *testing.T) {
	m := network.New()
	n1, _ := m.AddNode("A")
	n2, _ := m.AddNode("B")
	b1, _ := m.AddBranch("L1", n1, n2, sequence.Triple{1, 1, 1}, sequence.Triple{}, network.IdentityTransformer, sequence.Triple{})

	_, err := m.AddMutual("M", b1, b1, 1, 1)
	require.Error(t, err)
	require.IsType(t, &network.ValueError{}, err)
}

func TestAddFaultRejectsDuplicateAttachment(t *testing.T) {
	m := network.New()
	n1, _ := m.AddNode("A")
	_, _ = m.AddBranch("Src", network.Ground, n1, sequence.Triple{1, 1, 1}, sequence.Triple{100, 0, 0}, network.IdentityTransformer, sequence.Triple{})

	_, err := m.AddFault("F1", n1, network.A0, 0)
	require.NoError(t, err)

	_, err = m.AddFault("F2", n1, network.A0, 0)
	require.Error(t, err)
	require.IsType(t, &network.ValueError{}, err)
}

func TestAddFaultRejectsUnknownCode(t *testing.T) {
	m := network.New()
	n1, _ := m.AddNode("A")

	_, err := m.AddFault("F1", n1, network.Code("XYZ"), 0)
	require.Error(t, err)
	require.IsType(t, &network.ValueError{}, err)
}

func TestAddFaultRejectsNonMeaningfulSeriesCode(t *testing.T) {
	m := network.New()
	n1, _ := m.AddNode("A")
	n2, _ := m.AddNode("B")
	b1, _ := m.AddBranch("L1", n1, n2, sequence.Triple{1, 1, 1}, sequence.Triple{}, network.IdentityTransformer, sequence.Triple{})

	_, err := m.AddFault("F1", b1, network.A0r, 0)
	require.Error(t, err)
	require.IsType(t, &network.ValueError{}, err)
}

func TestAddFaultRejectsNegativeResistance(t *testing.T) {
	m := network.New()
	n1, _ := m.AddNode("A")

	_, err := m.AddFault("F1", n1, network.A0r, -1)
	require.Error(t, err)
	require.IsType(t, &network.ValueError{}, err)
}

func TestClearFaultsPreservesN0(t *testing.T) {
	m := network.New()
	n1, _ := m.AddNode("A")
	n2, _ := m.AddNode("B")
	_, _ = m.AddBranch("L1", n1, n2, sequence.Triple{1, 1, 1}, sequence.Triple{}, network.IdentityTransformer, sequence.Triple{})

	_, err := m.AddFault("Ground1", n1, network.N0, 0)
	require.NoError(t, err)
	_, err = m.AddFault("Fault1", n2, network.A0, 0)
	require.NoError(t, err)
	require.Equal(t, 2, m.NumFaults())

	m.ClearFaults()
	require.Equal(t, 1, m.NumFaults())

	require.Equal(t, 1, n1.FaultID())
	require.Equal(t, 0, n2.FaultID())
}

func TestGetResultBeforeSolveIsStateError(t *testing.T) {
	m := network.New()
	n1, _ := m.AddNode("A")

	_, err := n1.GetResult()
	require.Error(t, err)
	require.IsType(t, &network.StateError{}, err)
}

func TestDimension(t *testing.T) {
	m := network.New()
	n1, _ := m.AddNode("A")
	n2, _ := m.AddNode("B")
	_, _ = m.AddBranch("L1", n1, n2, sequence.Triple{1, 1, 1}, sequence.Triple{}, network.IdentityTransformer, sequence.Triple{})
	_, _ = m.AddFault("F1", n2, network.A0, 0)

	require.Equal(t, 3*(1+2+1), m.Dimension())
}
