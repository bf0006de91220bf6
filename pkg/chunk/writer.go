package chunk

import (
	"fmt"
	"io"

	"steganer/internal/bits"
)

// Remainder holds bits insufficient to form a complete byte between write
// calls. Data is left-justified within the byte: exactly the Length
// high-order bits are meaningful, every bit below them is zero.
type Remainder struct {
	Data   uint8
	Length uint8
}

// accumulate appends the chunk's bits immediately after the remainder's
// bits, both read high bit first, and splits the result into the complete
// bytes it fills plus the sub-byte leftover. It is a pure function over the
// previous remainder and the incoming chunk; the caller decides what to do
// with the emitted bytes and the new remainder.
//
// Bits are carried left-justified in a 64-bit accumulator: at most 7
// remainder bits plus 32 chunk bits are in flight at once.
func accumulate(rem Remainder, c Chunk) (emitted []byte, next Remainder) {
	acc := uint64(rem.Data) << 56
	if c.Length > 0 {
		acc |= uint64(c.Data) << (64 - uint(c.Length)) >> uint(rem.Length)
	}

	total := uint(rem.Length) + uint(c.Length)
	wholeBytes := total / 8
	for i := uint(0); i < wholeBytes; i++ {
		emitted = append(emitted, byte(acc>>(56-8*i)))
	}

	if leftover := total % 8; leftover > 0 {
		next = Remainder{
			Data:   byte(acc>>(56-8*wholeBytes)) & bits.Mask[uint8](8-leftover, true),
			Length: uint8(leftover),
		}
	}
	return emitted, next
}

// Writer accumulates arbitrary-width bit chunks into a byte stream.
// Complete bytes are written to the destination as soon as they fill up;
// sub-byte leftovers are carried in a Remainder until the next write, or
// until Close flushes them zero-padded.
type Writer struct {
	dst       io.Writer
	remainder Remainder
	closed    bool
}

func NewWriter(dst io.Writer) *Writer {
	return &Writer{dst: dst}
}

// Write folds the chunk into the pending remainder and writes out every
// complete byte produced. An I/O failure surfaces immediately; no
// partial-write recovery is attempted.
func (w *Writer) Write(c Chunk) error {
	emitted, next := accumulate(w.remainder, c)
	if len(emitted) > 0 {
		if _, err := w.dst.Write(emitted); err != nil {
			return fmt.Errorf("writing reassembled bytes to destination: %w", err)
		}
	}
	w.remainder = next
	return nil
}

// Close flushes any outstanding remainder as a final byte, with the unused
// low bits zero-padded. The flush is unconditional: even a remainder with a
// single valid bit is written out. Close is idempotent.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if w.remainder.Length == 0 {
		return nil
	}
	final := w.remainder.Data
	w.remainder = Remainder{}
	if _, err := w.dst.Write([]byte{final}); err != nil {
		return fmt.Errorf("flushing final partial byte to destination: %w", err)
	}
	return nil
}
