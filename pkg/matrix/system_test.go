package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edp1096/fault-seq/pkg/matrix"
)

// A 2x2 complex system with a known closed-form solution:
//
//	(2+0j)*x1 + (0+0j)*x2 = 4+0j  -> x1 = 2
//	(0+0j)*x1 + (0+1j)*x2 = 0+2j  -> x2 = 2
func TestSystemSolveDiagonal(t *testing.T) {
	sys, err := matrix.New(2, matrix.DefaultOptions())
	require.NoError(t, err)
	defer sys.Destroy()

	sys.AddElement(1, 1, complex(2, 0))
	sys.AddElement(2, 2, complex(0, 1))
	sys.AddRHS(1, complex(4, 0))
	sys.AddRHS(2, complex(0, 2))

	x, err := sys.Solve()
	require.NoError(t, err)
	require.Len(t, x, 3)
	require.InDelta(t, 2, real(x[1]), 1e-9)
	require.InDelta(t, 0, imag(x[1]), 1e-9)
	require.InDelta(t, 2, real(x[2]), 1e-9)
	require.InDelta(t, 0, imag(x[2]), 1e-9)
}

func TestSystemAddElementAccumulates(t *testing.T) {
	sys, err := matrix.New(1, matrix.DefaultOptions())
	require.NoError(t, err)
	defer sys.Destroy()

	sys.AddElement(1, 1, complex(1, 0))
	sys.AddElement(1, 1, complex(1, 0))
	sys.AddRHS(1, complex(4, 0))

	x, err := sys.Solve()
	require.NoError(t, err)
	require.InDelta(t, 2, real(x[1]), 1e-9)
}

func TestSystemAddElementOutOfBoundsPanics(t *testing.T) {
	sys, err := matrix.New(1, matrix.DefaultOptions())
	require.NoError(t, err)
	defer sys.Destroy()

	require.Panics(t, func() {
		sys.AddElement(2, 1, complex(1, 0))
	})
}

var _ matrix.Stamper = (*matrix.System)(nil)
