package bitio

import "errors"

// ErrEndOfStream is returned by a Reader when a request asks for more bits
// than remain in the logical stream (after the end marker has been
// stripped). Callers expecting a known number of values should treat an
// early ErrEndOfStream as corrupted input rather than normal termination.
var ErrEndOfStream = errors.New("bitio: end of stream")
