package bitio

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriter32_ScenarioFiveByteLayout(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter32(&buf)

	w.UnsafeAdd(0b10110011, 15)
	w.UnsafeAdd(0b101, 3)
	require.NoError(t, w.Flush())
	w.UnsafeAdd(0b10001, 5)
	require.NoError(t, w.Flush())
	w.UnsafeAdd(0b01, 2)
	require.NoError(t, w.Flush())
	require.NoError(t, w.Finish())

	got := buf.Bytes()
	require.GreaterOrEqual(t, len(got), 4)
	require.Equal(t, []byte{0b10110011, 0b10000000, 0b11000110, 0b11111100}, got[:4])
}

func TestWriter32_ScenarioSixByteLayout(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter32(&buf)

	w.UnsafeAdd(0b10110011, 8)
	w.UnsafeAdd(0b1100, 4)
	w.UnsafeAdd(0b10001, 5)
	require.NoError(t, w.Finish())

	require.Equal(t, []byte{0b10110011, 0b00011100, 0b11111101}, buf.Bytes())
}

func TestWriter32_EndMarkerIdempotence(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter32(&buf)
	require.NoError(t, w.Finish())

	got := buf.Bytes()
	require.Len(t, got, 1)
	require.Equal(t, byte(0b11111110), got[0])
}

func TestWriter64_EndMarkerIdempotence(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter64(&buf)
	require.NoError(t, w.Finish())

	got := buf.Bytes()
	require.Len(t, got, 1)
	require.Equal(t, byte(0b11111110), got[0])
}

func TestReader32_EmptyStreamYieldsEndOfStream(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter32(&buf).Finish())

	r := NewReader32(&buf)
	_, err := r.GetBits(32)
	require.ErrorIs(t, err, ErrEndOfStream)
}

func TestReader64_EmptyStreamYieldsEndOfStream(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter64(&buf).Finish())

	r := NewReader64(&buf)
	_, err := r.GetBits(64)
	require.ErrorIs(t, err, ErrEndOfStream)
}

type fieldValue struct {
	value uint64
	bits  uint8
}

func TestWriter32Reader32_RoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))

	for trial := 0; trial < 200; trial++ {
		n := rnd.Intn(64) + 1
		fields := make([]fieldValue, n)
		for i := range fields {
			// SafeAdd's flush leaves up to 7 residual bits in the
			// accumulator, so the widest field it can always take on the
			// 64-bit accumulator is 57 bits.
			bits := uint8(rnd.Intn(57) + 1)
			var value uint64
			if bits >= 64 {
				value = rnd.Uint64()
			} else {
				value = rnd.Uint64() & ((uint64(1) << bits) - 1)
			}
			fields[i] = fieldValue{value: value, bits: bits}
		}

		var buf bytes.Buffer
		w := NewWriter32(&buf)
		for _, f := range fields {
			require.NoError(t, w.SafeAdd(f.value, f.bits))
		}
		require.NoError(t, w.Finish())

		r := NewReader32(&buf)
		for _, f := range fields {
			got, err := r.GetBits(f.bits)
			require.NoError(t, err)
			require.Equal(t, f.value, got)
		}
	}
}

func TestWriter64Reader64_RoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))

	for trial := 0; trial < 200; trial++ {
		n := rnd.Intn(64) + 1
		fields := make([]fieldValue, n)
		for i := range fields {
			bits := uint8(rnd.Intn(64) + 1)
			var value uint64
			if bits >= 64 {
				value = rnd.Uint64()
			} else {
				value = rnd.Uint64() & ((uint64(1) << bits) - 1)
			}
			fields[i] = fieldValue{value: value, bits: bits}
		}

		var buf bytes.Buffer
		w := NewWriter64(&buf)
		for _, f := range fields {
			require.NoError(t, w.SafeAdd(f.value, f.bits))
		}
		require.NoError(t, w.Finish())

		r := NewReader64(&buf)
		for _, f := range fields {
			got, err := r.GetBits(f.bits)
			require.NoError(t, err)
			require.Equal(t, f.value, got)
		}
	}
}

func TestUint128_ShiftAndMask(t *testing.T) {
	u := uint128{lo: 0xFFFFFFFFFFFFFFFF, hi: 0xFFFFFFFFFFFFFFFF}

	require.Equal(t, uint128{lo: 0, hi: 0}, u.shiftLeft(128))
	require.Equal(t, uint128{lo: 0, hi: 0xFFFFFFFFFFFFFFFE}, u.shiftLeft(65))
	require.Equal(t, uint128{lo: 0, hi: 0}, mask128(0))
	require.Equal(t, uint128{lo: 0xF, hi: 0}, mask128(4))
	require.Equal(t, uint128{lo: ^uint64(0), hi: 1}, mask128(65))
}
