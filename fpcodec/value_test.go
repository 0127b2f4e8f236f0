package fpcodec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAlgorithm(t *testing.T) {
	got, err := ParseAlgorithm("gorilla")
	require.NoError(t, err)
	require.Equal(t, Gorilla, got)

	_, err = ParseAlgorithm("zstd")
	require.Error(t, err)
}

func TestParseWidth(t *testing.T) {
	got, err := ParseWidth(64)
	require.NoError(t, err)
	require.Equal(t, Width64, got)
	require.Equal(t, 8, got.Bytes())

	_, err = ParseWidth(16)
	require.Error(t, err)
}

func TestParseNumberType(t *testing.T) {
	got, err := ParseNumberType("int")
	require.NoError(t, err)
	require.Equal(t, Int, got)

	_, err = ParseNumberType("string")
	require.Error(t, err)
}

func TestNewCompressorDecompressor_AllCombinations(t *testing.T) {
	for _, alg := range []Algorithm{Gorilla, Entropy} {
		for _, width := range []Width{Width32, Width64} {
			var buf bytes.Buffer

			comp, err := NewCompressor(&buf, alg, width)
			require.NoError(t, err)

			values := []uint64{0, 1, 2, 2, 3, 1000, 0xFFFFFFFF}
			for _, v := range values {
				require.NoError(t, comp.Add(v))
			}
			require.NoError(t, comp.Finish())

			decomp, err := NewDecompressor(&buf, alg, width)
			require.NoError(t, err)

			for _, want := range values {
				got, err := decomp.Get()
				require.NoError(t, err)
				require.Equal(t, want, got)
			}
		}
	}
}

func TestNewCompressor_RejectsUnknownCombination(t *testing.T) {
	var buf bytes.Buffer
	_, err := NewCompressor(&buf, Algorithm("snappy"), Width32)
	require.Error(t, err)
}
