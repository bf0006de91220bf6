// Package chunk converts byte streams into sequences of fixed-width bit
// groups and back. A Reader slices a fully buffered payload into chunks of a
// configured bit width; a Writer reassembles chunks into bytes, carrying
// sub-byte leftovers across calls in a Remainder.
package chunk

import (
	"errors"
	"fmt"

	"steganer/internal/bits"
)

const (
	// MinSize is the smallest supported chunk width in bits.
	MinSize = 1
	// MaxSize is the largest supported chunk width in bits.
	MaxSize = 32
)

var ErrInvalidChunkSize = errors.New("chunk size must be between 1 and 32 bits")

// Chunk is a bounded group of payload bits tagged with its position in the
// stream. Data holds up to 32 bits in natural order, justified to the right;
// bits above Length are always zero. Order is the zero-based index of the
// chunk within its stream.
type Chunk struct {
	Data   uint32
	Length uint8
	Order  uint32
}

// Reader turns a source byte buffer into a lazy, finite sequence of chunks
// of a fixed bit width. The final chunk may be shorter than the configured
// width; its Length carries the number of bits actually read.
type Reader struct {
	data      []byte
	chunkSize uint8
	bitPos    uint
	order     uint32
}

func NewReader(data []byte, chunkSize uint8) (*Reader, error) {
	if chunkSize < MinSize || chunkSize > MaxSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidChunkSize, chunkSize)
	}
	return &Reader{
		data:      data,
		chunkSize: chunkSize,
	}, nil
}

// BitsLeft reports how many unread bits remain in the source buffer.
func (r *Reader) BitsLeft() uint {
	return uint(len(r.data))*8 - r.bitPos
}

// Next yields the next chunk of the stream. Once the source is exhausted it
// returns ok=false; this is the terminal state, not an error. Bits are read
// most significant first across byte boundaries.
func (r *Reader) Next() (c Chunk, ok bool) {
	bitsLeft := r.BitsLeft()
	if bitsLeft == 0 {
		return Chunk{}, false
	}

	length := uint(r.chunkSize)
	if length > bitsLeft {
		length = bitsLeft
	}
	c = Chunk{
		Data:   r.readBits(length),
		Length: uint8(length),
		Order:  r.order,
	}
	r.order++
	return c, true
}

func (r *Reader) readBits(count uint) uint32 {
	var out uint32
	for count > 0 {
		current := r.data[r.bitPos/8]
		offset := r.bitPos % 8
		take := 8 - offset
		if take > count {
			take = count
		}
		out = out<<take | uint32(bits.GetBits(current, offset, take))
		r.bitPos += take
		count -= take
	}
	return out
}
