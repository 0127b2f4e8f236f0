package gorilla

import (
	"io"
	"math"
	"math/bits"

	"github.com/sivukhin/fp-compression/bitio"
)

const (
	width64  = 64
	lzBits64 = 6 // ceil(log2(64))
	sbBits64 = lzBits64 + 1
)

// Encoder64 compresses a stream of 64-bit values (or their float64 bit
// patterns) with the Gorilla delta-XOR scheme.
type Encoder64 struct {
	w    *bitio.Writer64
	prev uint64

	prevLeadingZeros  uint8
	prevTrailingZeros uint8

	finished bool
}

// NewEncoder64 creates an encoder writing to w.
func NewEncoder64(w io.Writer) *Encoder64 {
	return &Encoder64{w: bitio.NewWriter64(w)}
}

// Add compresses one value.
func (e *Encoder64) Add(value uint64) error {
	if e.finished {
		panic("gorilla: Add called on a finished Encoder64")
	}

	d := value ^ e.prev
	if d == 0 {
		e.w.UnsafeAdd(0, 1)
		e.prev = value

		return e.w.Flush()
	}

	e.w.UnsafeAdd(1, 1)

	lz := uint8(bits.LeadingZeros64(d))
	tz := uint8(bits.TrailingZeros64(d))
	sb := uint8(width64) - lz - tz

	if lz >= e.prevLeadingZeros && tz >= e.prevTrailingZeros {
		e.w.UnsafeAdd(0, 1)
		reuseWidth := uint8(width64) - e.prevLeadingZeros - e.prevTrailingZeros
		e.w.UnsafeAdd(d>>e.prevTrailingZeros, reuseWidth)
	} else {
		e.w.UnsafeAdd(1, 1)
		e.w.UnsafeAdd(uint64(lz), lzBits64)
		e.w.UnsafeAdd(uint64(sb), sbBits64)
		e.w.UnsafeAdd(d>>tz, sb)
	}

	e.prevLeadingZeros = lz
	e.prevTrailingZeros = tz
	e.prev = value

	return e.w.Flush()
}

// AddFloat64 compresses one float64, reinterpreted bit-for-bit.
func (e *Encoder64) AddFloat64(value float64) error {
	return e.Add(math.Float64bits(value))
}

// Finish terminates the stream. It must be called exactly once.
func (e *Encoder64) Finish() error {
	e.finished = true

	return e.w.Finish()
}

// Decoder64 decompresses a stream produced by Encoder64.
type Decoder64 struct {
	r    *bitio.Reader64
	prev uint64

	prevLeadingZeros  uint8
	prevTrailingZeros uint8
}

// NewDecoder64 creates a decoder reading from r.
func NewDecoder64(r io.Reader) *Decoder64 {
	return &Decoder64{r: bitio.NewReader64(r)}
}

// Get decompresses the next value. It returns bitio.ErrEndOfStream once the
// stream is exhausted.
func (d *Decoder64) Get() (uint64, error) {
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

	var delta uint64
	if reuse == 0 {
		width := uint8(width64) - d.prevLeadingZeros - d.prevTrailingZeros
		s, err := d.r.GetBits(width)
		if err != nil {
			return 0, err
		}
		delta = s << d.prevTrailingZeros
	} else {
		lzv, err := d.r.GetBits(lzBits64)
		if err != nil {
			return 0, err
		}
		sbv, err := d.r.GetBits(sbBits64)
		if err != nil {
			return 0, err
		}
		s, err := d.r.GetBits(uint8(sbv))
		if err != nil {
			return 0, err
		}
		delta = s << (uint8(width64) - uint8(lzv) - uint8(sbv))
	}

	x := d.prev ^ delta
	d.prev = x
	d.prevLeadingZeros = uint8(bits.LeadingZeros64(delta))
	d.prevTrailingZeros = uint8(bits.TrailingZeros64(delta))

	return x, nil
}

// GetFloat64 decompresses the next value as a float64.
func (d *Decoder64) GetFloat64() (float64, error) {
	v, err := d.Get()
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(v), nil
}
