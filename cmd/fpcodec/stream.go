package main

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/sivukhin/fp-compression/bitio"
	"github.com/sivukhin/fp-compression/fpcodec"
)

// runCompress reads W-aligned binary from r (padding a short final block
// per padToBlock), compresses it with the given algorithm/width, and
// writes the bare bit-stream to w.
func runCompress(r io.Reader, w io.Writer, alg fpcodec.Algorithm, width fpcodec.Width) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	data = padToBlock(data, width.Bytes())

	comp, err := fpcodec.NewCompressor(w, alg, width)
	if err != nil {
		return err
	}

	blockBytes := width.Bytes()
	for off := 0; off < len(data); off += blockBytes {
		block := data[off : off+blockBytes]

		var value uint64
		if width == fpcodec.Width32 {
			value = uint64(binary.LittleEndian.Uint32(block))
		} else {
			value = binary.LittleEndian.Uint64(block)
		}

		if err := comp.Add(value); err != nil {
			return err
		}
	}

	return comp.Finish()
}

// runDecompress reads a bare bit-stream from r, decompresses it with the
// given algorithm/width, trims the padToBlock padding, and writes
// native little-endian binary to w.
func runDecompress(r io.Reader, w io.Writer, alg fpcodec.Algorithm, width fpcodec.Width) error {
	decomp, err := fpcodec.NewDecompressor(r, alg, width)
	if err != nil {
		return err
	}

	blockBytes := width.Bytes()
	var out []byte
	buf := make([]byte, blockBytes)

	for {
		value, err := decomp.Get()
		if errors.Is(err, bitio.ErrEndOfStream) {
			break
		}
		if err != nil {
			return err
		}

		if width == fpcodec.Width32 {
			binary.LittleEndian.PutUint32(buf, uint32(value))
		} else {
			binary.LittleEndian.PutUint64(buf, value)
		}
		out = append(out, buf...)
	}

	out = trimTrailingZeros(out, blockBytes)
	_, err = w.Write(out)

	return err
}
