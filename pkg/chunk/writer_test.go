package chunk

import (
	"bytes"
	"errors"
	"testing"

	"steganer/test"
)

func TestAccumulateWithoutOverflow(t *testing.T) {
	remainder := Remainder{Data: 0b_101_0_0000, Length: 3}
	emitted, next := accumulate(remainder, Chunk{Data: 0b_11, Length: 2})
	if len(emitted) != 0 {
		t.Errorf("no bytes should be emitted when lengths sum under 8, got %v", emitted)
	}
	expected := Remainder{Data: 0b_1011_1_000, Length: 5}
	if next != expected {
		t.Errorf("expected remainder %+v but got %+v", expected, next)
	}
}

func TestAccumulateExactByte(t *testing.T) {
	remainder := Remainder{Data: 0b_1010_111_0, Length: 7}
	emitted, next := accumulate(remainder, Chunk{Data: 0b_0, Length: 1})
	if len(emitted) != 1 || emitted[0] != 0b_1010_1110 {
		t.Errorf("expected exactly one byte %#b, got %v", 0b_1010_1110, emitted)
	}
	if next != (Remainder{}) {
		t.Errorf("expected empty remainder but got %+v", next)
	}
}

func TestAccumulateWithOverflow(t *testing.T) {
	remainder := Remainder{Data: 0b_1010_111_0, Length: 7}
	emitted, next := accumulate(remainder, Chunk{Data: 0b_011, Length: 3})
	if len(emitted) != 1 || emitted[0] != 0b_1010_1110 {
		t.Errorf("expected exactly one byte %#b, got %v", 0b_1010_1110, emitted)
	}
	expected := Remainder{Data: 0b_11_00_0000, Length: 2}
	if next != expected {
		t.Errorf("expected remainder %+v but got %+v", expected, next)
	}
}

func TestAccumulateMultiByteChunk(t *testing.T) {
	// 7 pending bits plus a full 32-bit chunk: 39 bits, 4 whole bytes and a
	// 7-bit leftover.
	remainder := Remainder{Data: 0b_1111_111_0, Length: 7}
	emitted, next := accumulate(remainder, Chunk{Data: 0xAABBCCDD, Length: 32})
	if len(emitted) != 4 {
		t.Fatalf("expected 4 emitted bytes, got %d", len(emitted))
	}
	expectedBytes := []byte{0b_1111_1111, 0b_0101_0101, 0b_0111_0111, 0b_1001_1001}
	if !bytes.Equal(emitted, expectedBytes) {
		t.Errorf("expected emitted bytes %#b but got %#b", expectedBytes, emitted)
	}
	expected := Remainder{Data: 0b_1011101_0, Length: 7}
	if next != expected {
		t.Errorf("expected remainder %+v but got %+v", expected, next)
	}
}

func TestWriterCloseFlushesRemainder(t *testing.T) {
	var out bytes.Buffer
	writer := NewWriter(&out)
	if err := writer.Write(Chunk{Data: 0b_101, Length: 3}); err != nil {
		t.Fatalf("error writing chunk: %s", err)
	}
	if out.Len() != 0 {
		t.Errorf("3 pending bits should not produce output yet, got %v", out.Bytes())
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("error closing writer: %s", err)
	}
	if out.Len() != 1 || out.Bytes()[0] != 0b_101_0_0000 {
		t.Errorf("expected zero-padded flush byte %#b, got %v", 0b_101_0_0000, out.Bytes())
	}
	// Close is idempotent; the remainder is flushed only once.
	if err := writer.Close(); err != nil {
		t.Fatalf("error on second close: %s", err)
	}
	if out.Len() != 1 {
		t.Errorf("second close must not write again, got %v", out.Bytes())
	}
}

func TestWriterPropagatesIOFailure(t *testing.T) {
	writer := NewWriter(failingWriter{})
	err := writer.Write(Chunk{Data: 0xFF, Length: 8})
	if !errors.Is(err, errWriteFailed) {
		t.Errorf("expected write failure to surface, got %v", err)
	}
}

var errWriteFailed = errors.New("write failed")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWriteFailed
}

func TestReaderWriterRoundTripAllWidths(t *testing.T) {
	payload := test.GenerateRandomBytes(997) // prime length, so most widths leave a short final chunk
	for width := uint8(MinSize); width <= MaxSize; width++ {
		reader, err := NewReader(payload, width)
		if err != nil {
			t.Fatalf("error creating reader with width %d: %s", width, err)
		}

		var out bytes.Buffer
		writer := NewWriter(&out)
		for {
			chunk, ok := reader.Next()
			if !ok {
				break
			}
			if err = writer.Write(chunk); err != nil {
				t.Fatalf("error writing chunk with width %d: %s", width, err)
			}
		}
		if err = writer.Close(); err != nil {
			t.Fatalf("error closing writer with width %d: %s", width, err)
		}

		if !bytes.Equal(payload, out.Bytes()) {
			t.Errorf("round trip with %d bit chunks does not reproduce the payload", width)
		}
	}
}

func TestWriterLoremRoundTrip(t *testing.T) {
	for _, width := range []uint8{3, 4, 8, 12, 23} {
		reader, err := NewReader([]byte(loremMessage), width)
		if err != nil {
			t.Fatalf("error creating reader with width %d: %s", width, err)
		}

		var out bytes.Buffer
		writer := NewWriter(&out)
		for {
			chunk, ok := reader.Next()
			if !ok {
				break
			}
			if err = writer.Write(chunk); err != nil {
				t.Fatalf("error writing chunk with width %d: %s", width, err)
			}
		}
		if err = writer.Close(); err != nil {
			t.Fatalf("error closing writer with width %d: %s", width, err)
		}

		if out.String() != loremMessage {
			t.Errorf("round trip with %d bit chunks produced %q", width, out.String())
		}
	}
}
