package image

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"strconv"
)

// PPM support is implemented here because neither the standard library nor
// golang.org/x/image carries a netpbm codec. Both the raw (P6) and plain
// (P3) variants decode; encoding always produces P6 with a depth of 255.

func init() {
	image.RegisterFormat("ppm", "P6", decodePPM, decodePPMConfig)
	image.RegisterFormat("ppm", "P3", decodePPM, decodePPMConfig)
}

var errInvalidPPM = errors.New("invalid ppm data")

type ppmHeader struct {
	magic         string
	width, height int
	maxVal        int
}

// nextToken returns the next whitespace-delimited token, skipping comments
// that run from '#' to end of line.
func nextToken(r *bufio.Reader) (string, error) {
	var token []byte
	inComment := false
	for {
		b, err := r.ReadByte()
		if err != nil {
			if err == io.EOF && len(token) > 0 {
				return string(token), nil
			}
			return "", err
		}
		switch {
		case inComment:
			if b == '\n' {
				inComment = false
			}
		case b == '#':
			inComment = true
		case b == ' ' || b == '\t' || b == '\r' || b == '\n':
			if len(token) > 0 {
				return string(token), nil
			}
		default:
			token = append(token, b)
		}
	}
}

func nextInt(r *bufio.Reader) (int, error) {
	token, err := nextToken(r)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", errInvalidPPM, token)
	}
	return v, nil
}

func decodePPMHeader(r *bufio.Reader) (ppmHeader, error) {
	var h ppmHeader
	magic, err := nextToken(r)
	if err != nil {
		return h, fmt.Errorf("%w: missing magic number", errInvalidPPM)
	}
	if magic != "P6" && magic != "P3" {
		return h, fmt.Errorf("%w: unsupported magic number %q", errInvalidPPM, magic)
	}
	h.magic = magic
	if h.width, err = nextInt(r); err != nil {
		return h, err
	}
	if h.height, err = nextInt(r); err != nil {
		return h, err
	}
	if h.maxVal, err = nextInt(r); err != nil {
		return h, err
	}
	if h.width <= 0 || h.height <= 0 {
		return h, fmt.Errorf("%w: bad dimensions %dx%d", errInvalidPPM, h.width, h.height)
	}
	if h.maxVal <= 0 || h.maxVal > 255 {
		return h, fmt.Errorf("%w: only 8-bit channels are supported, got depth %d", errInvalidPPM, h.maxVal)
	}
	return h, nil
}

func decodePPM(r io.Reader) (image.Image, error) {
	br := bufio.NewReader(r)
	h, err := decodePPMHeader(br)
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, h.width, h.height))
	if h.magic == "P6" {
		// The header's max value is followed by exactly one whitespace byte,
		// already consumed by the tokenizer; raw samples follow.
		row := make([]byte, 3*h.width)
		for y := 0; y < h.height; y++ {
			if _, err = io.ReadFull(br, row); err != nil {
				return nil, fmt.Errorf("%w: truncated pixel data: %v", errInvalidPPM, err)
			}
			for x := 0; x < h.width; x++ {
				img.SetRGBA(x, y, color.RGBA{R: row[3*x], G: row[3*x+1], B: row[3*x+2], A: 255})
			}
		}
		return img, nil
	}

	for y := 0; y < h.height; y++ {
		for x := 0; x < h.width; x++ {
			var sample [3]int
			for i := range sample {
				if sample[i], err = nextInt(br); err != nil {
					return nil, fmt.Errorf("%w: truncated pixel data", errInvalidPPM)
				}
			}
			img.SetRGBA(x, y, color.RGBA{R: uint8(sample[0]), G: uint8(sample[1]), B: uint8(sample[2]), A: 255})
		}
	}
	return img, nil
}

func decodePPMConfig(r io.Reader) (image.Config, error) {
	h, err := decodePPMHeader(bufio.NewReader(r))
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: color.RGBAModel,
		Width:      h.width,
		Height:     h.height,
	}, nil
}

// encodePPM writes img as a raw (P6) PPM, dropping any alpha channel.
func encodePPM(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", bounds.Dx(), bounds.Dy()); err != nil {
		return err
	}
	row := make([]byte, 3*bounds.Dx())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			i := 3 * (x - bounds.Min.X)
			row[i], row[i+1], row[i+2] = byte(r>>8), byte(g>>8), byte(b>>8)
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}
