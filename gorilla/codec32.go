// Package gorilla implements the delta-XOR codec over 32- and 64-bit value
// streams: each value is XORed against the previous one, and the nonzero
// delta's significant-bit window is packed either by reusing the previous
// window (when it still covers the new delta) or by describing a new one.
package gorilla

import (
	"io"
	"math"
	"math/bits"

	"github.com/sivukhin/fp-compression/bitio"
)

const (
	width32  = 32
	lzBits32 = 5 // ceil(log2(32))
	sbBits32 = lzBits32 + 1
)

// Encoder32 compresses a stream of 32-bit values (or their float32 bit
// patterns) with the Gorilla delta-XOR scheme.
type Encoder32 struct {
	w    *bitio.Writer32
	prev uint32

	prevLeadingZeros  uint8
	prevTrailingZeros uint8

	finished bool
}

// NewEncoder32 creates an encoder writing to w.
func NewEncoder32(w io.Writer) *Encoder32 {
	return &Encoder32{w: bitio.NewWriter32(w)}
}

// Add compresses one value.
func (e *Encoder32) Add(value uint32) error {
	if e.finished {
		panic("gorilla: Add called on a finished Encoder32")
	}

	d := value ^ e.prev
	if d == 0 {
		e.w.UnsafeAdd(0, 1)
		e.prev = value

		return e.w.Flush()
	}

	e.w.UnsafeAdd(1, 1)

	lz := uint8(bits.LeadingZeros32(d))
	tz := uint8(bits.TrailingZeros32(d))
	sb := uint8(width32) - lz - tz

	if lz >= e.prevLeadingZeros && tz >= e.prevTrailingZeros {
		e.w.UnsafeAdd(0, 1)
		reuseWidth := uint8(width32) - e.prevLeadingZeros - e.prevTrailingZeros
		e.w.UnsafeAdd(uint64(d>>e.prevTrailingZeros), reuseWidth)
	} else {
		e.w.UnsafeAdd(1, 1)
		e.w.UnsafeAdd(uint64(lz), lzBits32)
		e.w.UnsafeAdd(uint64(sb), sbBits32)
		e.w.UnsafeAdd(uint64(d>>tz), sb)
	}

	e.prevLeadingZeros = lz
	e.prevTrailingZeros = tz
	e.prev = value

	return e.w.Flush()
}

// AddFloat32 compresses one float32, reinterpreted bit-for-bit.
func (e *Encoder32) AddFloat32(value float32) error {
	return e.Add(math.Float32bits(value))
}

// Finish terminates the stream. It must be called exactly once.
func (e *Encoder32) Finish() error {
	e.finished = true

	return e.w.Finish()
}

// Decoder32 decompresses a stream produced by Encoder32.
type Decoder32 struct {
	r    *bitio.Reader32
	prev uint32

	prevLeadingZeros  uint8
	prevTrailingZeros uint8
}

// NewDecoder32 creates a decoder reading from r.
func NewDecoder32(r io.Reader) *Decoder32 {
	return &Decoder32{r: bitio.NewReader32(r)}
}

// Get decompresses the next value. It returns bitio.ErrEndOfStream once the
// stream is exhausted.
func (d *Decoder32) Get() (uint32, error) {
	same, err := d.r.GetBits(1)
	if err != nil {
		return 0, err
	}
	if same == 0 {
		return d.prev, nil
	}

	reuse, err := d.r.GetBits(1)
	if err != nil {
		return 0, err
	}

	var delta uint32
	if reuse == 0 {
		width := uint8(width32) - d.prevLeadingZeros - d.prevTrailingZeros
		s, err := d.r.GetBits(width)
		if err != nil {
			return 0, err
		}
		delta = uint32(s) << d.prevTrailingZeros
	} else {
		lzv, err := d.r.GetBits(lzBits32)
		if err != nil {
			return 0, err
		}
		sbv, err := d.r.GetBits(sbBits32)
		if err != nil {
			return 0, err
		}
		s, err := d.r.GetBits(uint8(sbv))
		if err != nil {
			return 0, err
		}
		delta = uint32(s) << (uint8(width32) - uint8(lzv) - uint8(sbv))
	}

	x := d.prev ^ delta
	d.prev = x
	d.prevLeadingZeros = uint8(bits.LeadingZeros32(delta))
	d.prevTrailingZeros = uint8(bits.TrailingZeros32(delta))

	return x, nil
}

// GetFloat32 decompresses the next value as a float32.
func (d *Decoder32) GetFloat32() (float32, error) {
	v, err := d.Get()
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(v), nil
}
