package entropy

import (
	"io"
	"math"
	"math/bits"

	"github.com/sivukhin/fp-compression/bitio"
)

const planes64 = 64

// Encoder64 compresses a stream of 64-bit values (or their float64 bit
// patterns) the same way Encoder32 does, over 64 bit-planes per batch.
type Encoder64 struct {
	w         *bitio.Writer64
	batch     [256]uint64
	batchSize int
	counts    [planes64]uint8
	finished  bool
}

// NewEncoder64 creates an encoder writing to w.
func NewEncoder64(w io.Writer) *Encoder64 {
	e := &Encoder64{w: bitio.NewWriter64(w)}
	for k := range e.counts {
		e.counts[k] = 8
	}

	return e
}

// Add stages one value, flushing a full batch as soon as it fills.
func (e *Encoder64) Add(value uint64) error {
	if e.finished {
		panic("entropy: Add called on a finished Encoder64")
	}

	e.batch[e.batchSize] = value
	e.batchSize++

	if e.batchSize == 256 {
		e.w.UnsafeAdd(1, 1)

		return e.dump()
	}

	return nil
}

// AddFloat64 stages one float64, reinterpreted bit-for-bit.
func (e *Encoder64) AddFloat64(value float64) error {
	return e.Add(math.Float64bits(value))
}

// Finish drains any partial batch and terminates the stream. It must be
// called exactly once.
func (e *Encoder64) Finish() error {
	e.finished = true

	if e.batchSize > 0 {
		e.w.UnsafeAdd(0, 1)
		e.w.UnsafeAdd(uint64(e.batchSize), 8)

		last := e.batch[e.batchSize-1]
		for e.batchSize%8 != 0 {
			e.batch[e.batchSize] = last
			e.batchSize++
		}

		if err := e.dump(); err != nil {
			return err
		}
	}

	return e.w.Finish()
}

func (e *Encoder64) dump() error {
	for pos := 0; pos < e.batchSize; pos += 8 {
		if err := e.dump8(pos); err != nil {
			return err
		}
	}

	e.batchSize = 0

	return nil
}

func (e *Encoder64) dump8(position int) error {
	for k := 0; k < planes64; k++ {
		if err := e.w.Flush(); err != nil {
			return err
		}

		var number uint8
		for plane := 0; plane < 8; plane++ {
			bit := (e.batch[position+plane] >> uint(k)) & 1
			number |= uint8(bit) << uint(plane)
		}

		ones := bits.OnesCount8(number)
		zeros := 8 - ones
		minOnesZeros := ones
		if zeros < minOnesZeros {
			minOnesZeros = zeros
		}

		if e.counts[k] > 1 {
			e.w.UnsafeAdd(uint64(number), 8)
		} else {
			var flag uint64
			if ones < zeros {
				flag = 1
			}
			e.w.UnsafeAdd(flag, 1)
			e.w.UnsafeAdd(uint64(1)<<uint(minOnesZeros), uint8(minOnesZeros+1))
			e.w.UnsafeAdd(uint64(indexByValue[number]), codeLength[ones])
		}

		e.counts[k] = uint8(minOnesZeros)
	}

	return nil
}

// Decoder64 decompresses a stream produced by Encoder64.
type Decoder64 struct {
	r             *bitio.Reader64
	batch         [256]uint64
	batchPosition int
	batchCapacity int
	counts        [planes64]uint8
}

// NewDecoder64 creates a decoder reading from r.
func NewDecoder64(r io.Reader) *Decoder64 {
	d := &Decoder64{r: bitio.NewReader64(r), batchPosition: 256, batchCapacity: 0}
	for k := range d.counts {
		d.counts[k] = 8
	}

	return d
}

// Get decompresses the next value. It returns bitio.ErrEndOfStream once the
// stream is exhausted.
func (d *Decoder64) Get() (uint64, error) {
	if d.batchPosition == 256 || d.batchPosition == d.batchCapacity {
		if err := d.load(); err != nil {
			return 0, err
		}
	}

	if d.batchPosition == d.batchCapacity {
		return 0, bitio.ErrEndOfStream
	}

	v := d.batch[d.batchPosition]
	d.batchPosition++

	return v, nil
}

// GetFloat64 decompresses the next value as a float64.
func (d *Decoder64) GetFloat64() (float64, error) {
	v, err := d.Get()
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(v), nil
}

func (d *Decoder64) load() error {
	d.batchPosition = 0
	for i := range d.batch {
		d.batch[i] = 0
	}

	marker, err := d.r.GetBits(1)
	if err != nil {
		return err
	}

	if marker == 1 {
		d.batchCapacity = 256
	} else {
		capacity, err := d.r.GetBits(8)
		if err != nil {
			return err
		}
		d.batchCapacity = int(capacity)
	}

	for pos := 0; pos < d.batchCapacity; pos += 8 {
		if err := d.load8(pos); err != nil {
			return err
		}
	}

	return nil
}

func (d *Decoder64) load8(position int) error {
	for k := 0; k < planes64; k++ {
		var number uint8
		var ones int

		if d.counts[k] > 1 {
			raw, err := d.r.GetBits(8)
			if err != nil {
				return err
			}
			number = uint8(raw)
			ones = bits.OnesCount8(number)
		} else {
			first, err := d.r.GetBits(1)
			if err != nil {
				return err
			}

			m := 0
			for {
				b, err := d.r.GetBits(1)
				if err != nil {
					return err
				}
				if b == 1 {
					break
				}
				m++
			}

			if first == 1 {
				ones = m
			} else {
				ones = 8 - m
			}

			idx, err := d.r.GetBits(codeLength[ones])
			if err != nil {
				return err
			}
			number = valueByIndex[ones][idx]
		}

		for plane := 0; plane < 8; plane++ {
			bit := (number >> uint(plane)) & 1
			d.batch[position+plane] |= uint64(bit) << uint(k)
		}

		minOnesZeros := ones
		if 8-ones < minOnesZeros {
			minOnesZeros = 8 - ones
		}
		d.counts[k] = uint8(minOnesZeros)
	}

	return nil
}
