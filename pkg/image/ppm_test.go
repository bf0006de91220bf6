package image

import (
	"bytes"
	"errors"
	"image"
	"strings"
	"testing"

	"steganer/test"
)

func TestPPMEncodeDecodeRoundTrip(t *testing.T) {
	srcImage := test.GenerateImage(33, 17)

	var encoded bytes.Buffer
	if err := encodePPM(&encoded, srcImage); err != nil {
		t.Fatalf("unexpected error encoding ppm: %v", err)
	}

	decoded, format, err := image.Decode(bytes.NewReader(encoded.Bytes()))
	if err != nil {
		t.Fatalf("unexpected error decoding ppm: %v", err)
	}
	if format != "ppm" {
		t.Fatalf("expected registered format ppm, got %q", format)
	}

	decodedRGBA := toRGBA(decoded)
	if !bytes.Equal(decodedRGBA.Pix, srcImage.Pix) {
		t.Error("decoded ppm pixels differ from the source image")
	}
}

func TestPPMDecodePlainVariant(t *testing.T) {
	plain := strings.Join([]string{
		"P3",
		"# a 2x2 test image",
		"2 2",
		"255",
		"255 0 0   0 255 0",
		"0 0 255   10 20 30",
	}, "\n")

	decoded, err := decodePPM(strings.NewReader(plain))
	if err != nil {
		t.Fatalf("unexpected error decoding plain ppm: %v", err)
	}

	expectedPixels := [][3]byte{{255, 0, 0}, {0, 255, 0}, {0, 0, 255}, {10, 20, 30}}
	decodedRGBA := toRGBA(decoded)
	for i, expected := range expectedPixels {
		x, y := i%2, i/2
		offset := decodedRGBA.PixOffset(x, y)
		pixel := [3]byte{decodedRGBA.Pix[offset], decodedRGBA.Pix[offset+1], decodedRGBA.Pix[offset+2]}
		if pixel != expected {
			t.Errorf("expected pixel (%d, %d) to be %v, got %v", x, y, expected, pixel)
		}
	}
}

func TestPPMDecodeConfig(t *testing.T) {
	cfg, err := decodePPMConfig(strings.NewReader("P6\n# comment\n640 480\n255\n"))
	if err != nil {
		t.Fatalf("unexpected error decoding ppm config: %v", err)
	}
	if cfg.Width != 640 || cfg.Height != 480 {
		t.Errorf("expected 640x480, got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestPPMDecodeErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{name: "bad magic", input: "P5\n2 2\n255\n"},
		{name: "16-bit depth", input: "P6\n2 2\n65535\n"},
		{name: "zero dimensions", input: "P6\n0 0\n255\n"},
		{name: "non numeric dimension", input: "P6\ntwo 2\n255\n"},
		{name: "truncated pixel data", input: "P6\n2 2\n255\nab"},
	}

	for _, testCase := range cases {
		if _, err := decodePPM(strings.NewReader(testCase.input)); !errors.Is(err, errInvalidPPM) {
			t.Errorf("expected errInvalidPPM for %s, got %v", testCase.name, err)
		}
	}
}
