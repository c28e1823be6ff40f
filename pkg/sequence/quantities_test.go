package sequence_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edp1096/fault-seq/pkg/sequence"
)

func TestNamedQuantityConsistency(t *testing.T) {
	// spec.md §8: "3*U0 == U0+U0+U0"; "S == SA+SB+SC"; "ZAB == UAB/IAB
	// whenever IAB != 0."
	u := sequence.Triple{complex(10, 2), complex(-3, 4), complex(1, -1)}
	i := sequence.Triple{complex(2, 1), complex(0.5, -0.5), complex(0.1, 0.2)}

	u0fn, _ := sequence.Lookup("U0")
	threeU0fn, _ := sequence.Lookup("3U0")
	u0 := u0fn(u, i).(complex128)
	threeU0 := threeU0fn(u, i).(complex128)
	require.InDelta(t, real(u0)*3, real(threeU0), 1e-9)
	require.InDelta(t, imag(u0)*3, imag(threeU0), 1e-9)

	sFn, _ := sequence.Lookup("S")
	saFn, _ := sequence.Lookup("SA")
	sbFn, _ := sequence.Lookup("SB")
	scFn, _ := sequence.Lookup("SC")
	total := sFn(u, i).(complex128)
	sum := saFn(u, i).(complex128) + sbFn(u, i).(complex128) + scFn(u, i).(complex128)
	require.InDelta(t, real(total), real(sum), 1e-9)
	require.InDelta(t, imag(total), imag(sum), 1e-9)

	zabFn, _ := sequence.Lookup("ZAB")
	uabFn, _ := sequence.Lookup("UAB")
	iabFn, _ := sequence.Lookup("IAB")
	zab := zabFn(u, i).(complex128)
	uab := uabFn(u, i).(complex128)
	iab := iabFn(u, i).(complex128)
	require.NotEqual(t, complex128(0), iab)
	require.InDelta(t, real(uab/iab), real(zab), 1e-9)
	require.InDelta(t, imag(uab/iab), imag(zab), 1e-9)
}

func TestLookupUnknownName(t *testing.T) {
	_, ok := sequence.Lookup("NOT_A_QUANTITY")
	require.False(t, ok)
}

func TestTripleQuantities(t *testing.T) {
	u := sequence.Triple{1, 2, 3}
	i := sequence.Triple{1, 1, 1}

	fn, ok := sequence.Lookup("UABC")
	require.True(t, ok)
	result := fn(u, i)
	triple, ok := result.(sequence.Triple)
	require.True(t, ok)
	require.Equal(t, sequence.ToPhase(u), triple)
}
