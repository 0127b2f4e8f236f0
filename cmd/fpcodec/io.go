package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// openInput returns a buffered reader over path, or stdin if path is empty.
func openInput(path string) (io.Reader, func() error, error) {
	if path == "" {
		return bufio.NewReader(os.Stdin), func() error { return nil }, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	return bufio.NewReader(f), f.Close, nil
}

// openOutput returns a buffered writer over path, or stdout if path is
// empty. The returned close function flushes the buffer before closing the
// underlying file (a no-op for stdout beyond the flush).
func openOutput(path string) (*bufio.Writer, func() error, error) {
	if path == "" {
		w := bufio.NewWriter(os.Stdout)

		return w, w.Flush, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}

	w := bufio.NewWriter(f)
	closeFn := func() error {
		if err := w.Flush(); err != nil {
			f.Close()

			return err
		}

		return f.Close()
	}

	return w, closeFn, nil
}

// padToBlock appends the CorruptedInput-avoiding pad sequence (a single
// 0x01 byte followed by 0x00s) to data so its length becomes a multiple of
// blockBytes. If data is already block-aligned, it is returned unchanged.
func padToBlock(data []byte, blockBytes int) []byte {
	rem := len(data) % blockBytes
	if rem == 0 {
		return data
	}

	pad := blockBytes - rem
	out := make([]byte, len(data)+pad)
	copy(out, data)
	out[len(data)] = 0x01

	return out
}

// trimTrailingZeros strips trailing 0x00 bytes from the final blockBytes-
// sized block of data, undoing padToBlock's padding on the decompress path.
func trimTrailingZeros(data []byte, blockBytes int) []byte {
	if len(data) < blockBytes {
		return data
	}

	start := len(data) - blockBytes
	end := len(data)
	for end > start && data[end-1] == 0 {
		end--
	}

	return data[:end]
}

// errCorruptedInput is returned by dump when the input's trailing partial
// read is neither zero bytes nor a full value-width read.
type errCorruptedInput struct {
	width int
	got   int
}

func (e errCorruptedInput) Error() string {
	return fmt.Sprintf("fpcodec: corrupted input: trailing partial read of %d bytes is not a multiple of the %d-byte value width", e.got, e.width)
}
