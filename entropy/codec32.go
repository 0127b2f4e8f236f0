package entropy

import (
	"io"
	"math"
	"math/bits"

	"github.com/sivukhin/fp-compression/bitio"
)

const planes32 = 32

// Encoder32 compresses a stream of 32-bit values (or their float32 bit
// patterns) by staging them into 256-value batches, transposing each into
// per-bit-plane 8-value slices, and coding each slice either raw or by its
// rank within its popcount class.
type Encoder32 struct {
	w         *bitio.Writer32
	batch     [256]uint32
	batchSize int
	counts    [planes32]uint8
	finished  bool
}

// NewEncoder32 creates an encoder writing to w.
func NewEncoder32(w io.Writer) *Encoder32 {
	e := &Encoder32{w: bitio.NewWriter32(w)}
	for k := range e.counts {
		e.counts[k] = 8
	}

	return e
}

// Add stages one value, flushing a full batch as soon as it fills.
func (e *Encoder32) Add(value uint32) error {
	if e.finished {
		panic("entropy: Add called on a finished Encoder32")
	}

	e.batch[e.batchSize] = value
	e.batchSize++

	if e.batchSize == 256 {
		e.w.UnsafeAdd(1, 1)

		return e.dump()
	}

	return nil
}

// AddFloat32 stages one float32, reinterpreted bit-for-bit.
func (e *Encoder32) AddFloat32(value float32) error {
	return e.Add(math.Float32bits(value))
}

// Finish drains any partial batch and terminates the stream. It must be
// called exactly once.
func (e *Encoder32) Finish() error {
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

func (e *Encoder32) dump() error {
	for pos := 0; pos < e.batchSize; pos += 8 {
		if err := e.dump8(pos); err != nil {
			return err
		}
	}

	e.batchSize = 0

	return nil
}

func (e *Encoder32) dump8(position int) error {
	for k := 0; k < planes32; k++ {
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

// Decoder32 decompresses a stream produced by Encoder32.
type Decoder32 struct {
	r             *bitio.Reader32
	batch         [256]uint32
	batchPosition int
	batchCapacity int
	counts        [planes32]uint8
}

// NewDecoder32 creates a decoder reading from r.
func NewDecoder32(r io.Reader) *Decoder32 {
	d := &Decoder32{r: bitio.NewReader32(r), batchPosition: 256, batchCapacity: 0}
	for k := range d.counts {
		d.counts[k] = 8
	}

	return d
}

// Get decompresses the next value. It returns bitio.ErrEndOfStream once the
// stream is exhausted.
func (d *Decoder32) Get() (uint32, error) {
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

// GetFloat32 decompresses the next value as a float32.
func (d *Decoder32) GetFloat32() (float32, error) {
	v, err := d.Get()
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(v), nil
}

func (d *Decoder32) load() error {
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

func (d *Decoder32) load8(position int) error {
	for k := 0; k < planes32; k++ {
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
			d.batch[position+plane] |= uint32(bit) << uint(k)
		}

		minOnesZeros := ones
		if 8-ones < minOnesZeros {
			minOnesZeros = 8 - ones
		}
		d.counts[k] = uint8(minOnesZeros)
	}

	return nil
}
