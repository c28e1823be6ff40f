package sequence_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edp1096/fault-seq/pkg/sequence"
)

func TestFormatComplex(t *testing.T) {
	v := complex(3, 4)

	require.Equal(t, "3", sequence.FormatComplex(v, sequence.Real))
	require.Equal(t, "4", sequence.FormatComplex(v, sequence.Imaginary))
	require.Contains(t, sequence.FormatComplex(v, sequence.Polar), "<")
	require.True(t, strings.HasSuffix(sequence.FormatComplex(v, sequence.Rectangular), "j"))
}
