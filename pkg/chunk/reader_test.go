package chunk

import (
	"testing"
)

const loremMessage = "Lorem ipsum dolor sit amet, consectetur adipiscing elit, " +
	"sed eiusmod tempor incidunt ut labore et dolore magna aliqua."

func TestNewReaderRejectsInvalidChunkSize(t *testing.T) {
	for _, size := range []uint8{0, 33, 255} {
		if _, err := NewReader([]byte{1, 2, 3}, size); err == nil {
			t.Errorf("expected error for chunk size %d, got none", size)
		}
	}
	for _, size := range []uint8{1, 24, 32} {
		if _, err := NewReader([]byte{1, 2, 3}, size); err != nil {
			t.Errorf("unexpected error for chunk size %d: %s", size, err)
		}
	}
}

func TestReaderNextUnder8Bits(t *testing.T) {
	reader, err := NewReader([]byte(loremMessage), 4)
	if err != nil {
		t.Fatalf("error creating reader: %s", err)
	}

	chunk, ok := reader.Next() // Upper half of "L".
	if !ok {
		t.Fatal("expected a chunk, reader was exhausted")
	}
	expected := uint32('L') >> 4
	if chunk.Data != expected {
		t.Errorf("expected first chunk %#b but got %#b", expected, chunk.Data)
	}
	if chunk.Order != 0 || chunk.Length != 4 {
		t.Errorf("expected order 0 and length 4, got order %d length %d", chunk.Order, chunk.Length)
	}

	reader.Next() // Lower half of "L".
	reader.Next() // Upper half of "o".
	chunk, ok = reader.Next() // Lower half of "o".
	if !ok {
		t.Fatal("expected a chunk, reader was exhausted")
	}
	expected = uint32('o') & 0x0F
	if chunk.Data != expected {
		t.Errorf("expected fourth chunk %#b but got %#b", expected, chunk.Data)
	}
	if chunk.Order != 3 {
		t.Errorf("expected order 3, got %d", chunk.Order)
	}
}

func TestReaderNextOver8Bits(t *testing.T) {
	reader, err := NewReader([]byte(loremMessage), 12)
	if err != nil {
		t.Fatalf("error creating reader: %s", err)
	}

	chunk, ok := reader.Next() // "L" and upper half of "o".
	if !ok {
		t.Fatal("expected a chunk, reader was exhausted")
	}
	expected := uint32('L')<<4 | uint32('o')>>4
	if chunk.Data != expected {
		t.Errorf("expected first chunk %#b but got %#b", expected, chunk.Data)
	}

	reader.Next() // Lower half of "o" and "r".
	reader.Next() // "e" and upper half of "m".
	chunk, ok = reader.Next() // Lower half of "m" and " ".
	if !ok {
		t.Fatal("expected a chunk, reader was exhausted")
	}
	expected = (uint32('m')&0x0F)<<8 | uint32(' ')
	if chunk.Data != expected {
		t.Errorf("expected fourth chunk %#b but got %#b", expected, chunk.Data)
	}
}

func TestReaderShortFinalChunk(t *testing.T) {
	// 3 bytes = 24 bits; at 7 bits per chunk the last one carries 3 bits.
	reader, err := NewReader([]byte{0xFF, 0xFF, 0xFF}, 7)
	if err != nil {
		t.Fatalf("error creating reader: %s", err)
	}

	var chunks []Chunk
	for {
		chunk, ok := reader.Next()
		if !ok {
			break
		}
		chunks = append(chunks, chunk)
	}

	if len(chunks) != 4 {
		t.Fatalf("expected 4 chunks, got %d", len(chunks))
	}
	for i, chunk := range chunks[:3] {
		if chunk.Length != 7 || chunk.Data != 0b_111_1111 {
			t.Errorf("chunk %d should carry 7 set bits, got length %d data %#b", i, chunk.Length, chunk.Data)
		}
	}
	last := chunks[3]
	if last.Length != 3 || last.Data != 0b_111 {
		t.Errorf("final chunk should carry the 3 remaining bits, got length %d data %#b", last.Length, last.Data)
	}
	if last.Order != 3 {
		t.Errorf("final chunk order should be 3, got %d", last.Order)
	}

	// Subsequent calls stay terminal.
	if _, ok := reader.Next(); ok {
		t.Error("reader yielded a chunk after exhaustion")
	}
}

func TestReaderBitsLeft(t *testing.T) {
	reader, err := NewReader([]byte{0xAA, 0xBB}, 5)
	if err != nil {
		t.Fatalf("error creating reader: %s", err)
	}
	if left := reader.BitsLeft(); left != 16 {
		t.Errorf("expected 16 bits left, got %d", left)
	}
	reader.Next()
	if left := reader.BitsLeft(); left != 11 {
		t.Errorf("expected 11 bits left after one read, got %d", left)
	}
}
