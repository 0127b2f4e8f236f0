// Package fpcodec provides the shared Algorithm/Width/NumberType vocabulary
// and codec-selection glue used by cmd/fpcodec and by cross-codec tests. It
// is not part of the compression format itself.
package fpcodec

import (
	"fmt"
	"io"

	"github.com/sivukhin/fp-compression/entropy"
	"github.com/sivukhin/fp-compression/gorilla"
)

// Algorithm selects which codec a Compressor/Decompressor drives.
type Algorithm string

// The two supported codecs.
const (
	Gorilla Algorithm = "gorilla"
	Entropy Algorithm = "entropy"
)

// ParseAlgorithm validates a CLI-supplied algorithm name.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(s) {
	case Gorilla, Entropy:
		return Algorithm(s), nil
	default:
		return "", fmt.Errorf("fpcodec: unknown algorithm %q (want gorilla or entropy)", s)
	}
}

// Width selects the value bit width a codec operates over.
type Width int

// The two supported widths.
const (
	Width32 Width = 32
	Width64 Width = 64
)

// ParseWidth validates a CLI-supplied width.
func ParseWidth(w int) (Width, error) {
	switch Width(w) {
	case Width32, Width64:
		return Width(w), nil
	default:
		return 0, fmt.Errorf("fpcodec: unknown width %d (want 32 or 64)", w)
	}
}

// Bytes returns the width in bytes.
func (w Width) Bytes() int { return int(w) / 8 }

// NumberType selects how load/dump interpret text tokens.
type NumberType string

// The two supported number types.
const (
	Int   NumberType = "int"
	Float NumberType = "float"
)

// ParseNumberType validates a CLI-supplied number type.
func ParseNumberType(s string) (NumberType, error) {
	switch NumberType(s) {
	case Int, Float:
		return NumberType(s), nil
	default:
		return "", fmt.Errorf("fpcodec: unknown number type %q (want int or float)", s)
	}
}

// Compressor adapts one of the four Encoder32/Encoder64 x Gorilla/Entropy
// types to a single uint64-based interface, so callers need not branch on
// width once a Compressor has been constructed.
type Compressor interface {
	Add(value uint64) error
	Finish() error
}

// Decompressor is Compressor's read-side counterpart.
type Decompressor interface {
	// Get returns the next value, or bitio.ErrEndOfStream when exhausted.
	Get() (uint64, error)
}

// NewCompressor builds the Compressor for the given algorithm and width,
// writing to w.
func NewCompressor(w io.Writer, alg Algorithm, width Width) (Compressor, error) {
	switch {
	case alg == Gorilla && width == Width32:
		return compressor32{gorilla.NewEncoder32(w)}, nil
	case alg == Gorilla && width == Width64:
		return compressor64{gorilla.NewEncoder64(w)}, nil
	case alg == Entropy && width == Width32:
		return compressor32{entropy.NewEncoder32(w)}, nil
	case alg == Entropy && width == Width64:
		return compressor64{entropy.NewEncoder64(w)}, nil
	default:
		return nil, fmt.Errorf("fpcodec: unsupported algorithm/width combination %s/%d", alg, width)
	}
}

// NewDecompressor builds the Decompressor for the given algorithm and
// width, reading from r.
func NewDecompressor(r io.Reader, alg Algorithm, width Width) (Decompressor, error) {
	switch {
	case alg == Gorilla && width == Width32:
		return decompressor32{gorilla.NewDecoder32(r)}, nil
	case alg == Gorilla && width == Width64:
		return decompressor64{gorilla.NewDecoder64(r)}, nil
	case alg == Entropy && width == Width32:
		return decompressor32{entropy.NewDecoder32(r)}, nil
	case alg == Entropy && width == Width64:
		return decompressor64{entropy.NewDecoder64(r)}, nil
	default:
		return nil, fmt.Errorf("fpcodec: unsupported algorithm/width combination %s/%d", alg, width)
	}
}

type encoder32 interface {
	Add(uint32) error
	Finish() error
}

type encoder64 interface {
	Add(uint64) error
	Finish() error
}

type decoder32 interface {
	Get() (uint32, error)
}

type decoder64 interface {
	Get() (uint64, error)
}

type compressor32 struct{ enc encoder32 }

func (c compressor32) Add(value uint64) error { return c.enc.Add(uint32(value)) }
func (c compressor32) Finish() error          { return c.enc.Finish() }

type compressor64 struct{ enc encoder64 }

func (c compressor64) Add(value uint64) error { return c.enc.Add(value) }
func (c compressor64) Finish() error          { return c.enc.Finish() }

type decompressor32 struct{ dec decoder32 }

func (d decompressor32) Get() (uint64, error) {
	v, err := d.dec.Get()

	return uint64(v), err
}

type decompressor64 struct{ dec decoder64 }

func (d decompressor64) Get() (uint64, error) {
	return d.dec.Get()
}
