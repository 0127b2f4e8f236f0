package main

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/sivukhin/fp-compression/fpcodec"
)

// runLoad parses whitespace-separated decimal tokens from r and writes
// native little-endian binary of the given width to w.
func runLoad(r io.Reader, w io.Writer, width fpcodec.Width, numType fpcodec.NumberType) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	scanner.Split(bufio.ScanWords)

	buf := make([]byte, width.Bytes())
	for scanner.Scan() {
		token := scanner.Text()

		var bits uint64
		switch {
		case numType == fpcodec.Float && width == fpcodec.Width32:
			v, err := strconv.ParseFloat(token, 32)
			if err != nil {
				return fmt.Errorf("fpcodec: load: parsing %q as float32: %w", token, err)
			}
			bits = uint64(math.Float32bits(float32(v)))
		case numType == fpcodec.Float && width == fpcodec.Width64:
			v, err := strconv.ParseFloat(token, 64)
			if err != nil {
				return fmt.Errorf("fpcodec: load: parsing %q as float64: %w", token, err)
			}
			bits = math.Float64bits(v)
		case width == fpcodec.Width32:
			v, err := strconv.ParseUint(token, 10, 32)
			if err != nil {
				return fmt.Errorf("fpcodec: load: parsing %q as uint32: %w", token, err)
			}
			bits = v
		default:
			v, err := strconv.ParseUint(token, 10, 64)
			if err != nil {
				return fmt.Errorf("fpcodec: load: parsing %q as uint64: %w", token, err)
			}
			bits = v
		}

		if width == fpcodec.Width32 {
			binary.LittleEndian.PutUint32(buf, uint32(bits))
		} else {
			binary.LittleEndian.PutUint64(buf, bits)
		}

		if _, err := w.Write(buf); err != nil {
			return err
		}
	}

	return scanner.Err()
}

// runDump reads native little-endian binary of the given width from r and
// writes whitespace-separated decimal tokens to w, one per line.
func runDump(r io.Reader, w io.Writer, width fpcodec.Width, numType fpcodec.NumberType) error {
	buf := make([]byte, width.Bytes())
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	for {
		n, err := io.ReadFull(r, buf)
		if err == io.EOF {
			return bw.Flush()
		}
		if err == io.ErrUnexpectedEOF {
			return errCorruptedInput{width: width.Bytes(), got: n}
		}
		if err != nil {
			return err
		}

		var bits uint64
		if width == fpcodec.Width32 {
			bits = uint64(binary.LittleEndian.Uint32(buf))
		} else {
			bits = binary.LittleEndian.Uint64(buf)
		}

		var line string
		switch {
		case numType == fpcodec.Float && width == fpcodec.Width32:
			line = strconv.FormatFloat(float64(math.Float32frombits(uint32(bits))), 'g', -1, 32)
		case numType == fpcodec.Float && width == fpcodec.Width64:
			line = strconv.FormatFloat(math.Float64frombits(bits), 'g', -1, 64)
		case width == fpcodec.Width32:
			line = strconv.FormatUint(bits, 10)
		default:
			line = strconv.FormatUint(bits, 10)
		}

		if _, err := fmt.Fprintln(bw, line); err != nil {
			return err
		}
	}
}
