// Package image maps bit chunks onto the pixels of a host raster image.
//
// It works with lossless formats only, currently:
//   - PNG
//   - BMP
//   - PPM
package image

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"steganer/internal/bits"
	"steganer/pkg/chunk"
	"steganer/pkg/config"
)

const (
	// HeaderPixelLength is the number of pixels at the image origin
	// reserved for the payload size header.
	HeaderPixelLength = 32
	// sizeLength is the bit width of the payload size stored in the header.
	sizeLength = 32
	// maxBitsPerPixel is the greatest encoding density: one pixel carries at
	// most 24 meaningful bits, spread over the low bits of its 3 color bytes.
	maxBitsPerPixel = 24
)

var (
	ErrNoExtension       = errors.New("host file has no extension to check it is supported")
	ErrUnsupportedFormat = errors.New("image type not supported, must be png, bmp or ppm")
	ErrCapacityExceeded  = errors.New("file to be hidden is too big for this host image")
)

var supportedExtensions = []string{"png", "bmp", "ppm"}

// SupportedImage checks whether a filename names a valid host image. Only
// the extension is inspected; the check runs before any pixel access.
func SupportedImage(filename string) error {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if ext == "" {
		return fmt.Errorf("%w: %s", ErrNoExtension, filename)
	}
	normalized := strings.ToLower(ext)
	for _, supported := range supportedExtensions {
		if normalized == supported {
			return nil
		}
	}
	return fmt.Errorf("%w: got %q", ErrUnsupportedFormat, ext)
}

// readingState tracks an extraction in progress: how much hidden data the
// header promised, the per-pixel density in use, and the ordinal of the
// next chunk to decode.
type readingState struct {
	hiddenFileSize  uint32
	chunkSize       uint8
	readingPosition uint32
}

// Container owns the pixel buffer of a host image. Chunks are hidden in,
// and recovered from, the low bits of each pixel's 24-bit RGB field; any
// alpha channel is preserved unchanged.
type Container struct {
	img           *image.RGBA
	width, height int

	reading *readingState

	path   string
	format string
	saved  bool
	config config.ImageSaveConfig
}

// OpenContainer loads the image at path fully into memory. The filename is
// gated on a supported extension before the file is touched.
func OpenContainer(path string, cfg config.ImageSaveConfig) (*Container, error) {
	if err := SupportedImage(path); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening host image: %w", err)
	}
	srcImage, format, err := image.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decoding host image %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return nil, fmt.Errorf("closing host image after decode: %w", err)
	}

	c := NewContainer(toRGBA(srcImage), cfg)
	c.path = path
	c.format = format
	return c, nil
}

// NewContainer wraps an already-decoded image. Containers built this way
// have no backing file; Close never writes anything for them, the caller
// persists the pixel buffer through WritePNG.
func NewContainer(img *image.RGBA, cfg config.ImageSaveConfig) *Container {
	cfg.PopulateUnsetConfigVars()
	bounds := img.Bounds()
	return &Container{
		img:    img,
		width:  bounds.Dx(),
		height: bounds.Dy(),
		config: cfg,
	}
}

func toRGBA(src image.Image) *image.RGBA {
	if rgba, alreadyRGBA := src.(*image.RGBA); alreadyRGBA {
		return rgba
	}
	img := image.NewRGBA(src.Bounds())
	draw.Draw(img, img.Bounds(), src, img.Bounds().Min, draw.Src)
	return img
}

// SetupHiding prepares the container to host a hidden file: the payload
// size is checked against capacity, encoded into the header, and the
// per-pixel density is returned for the caller's chunk reader to use. Must
// be called exactly once, before the first HideData call.
func (c *Container) SetupHiding(totalDataSize uint32) (chunkSize uint8, err error) {
	chunkSize, err = c.chunkSizeFor(totalDataSize)
	if err != nil {
		return 0, err
	}
	c.encodeHeader(totalDataSize)
	return chunkSize, nil
}

// SetupExtraction identifies this container as the host of a hidden file
// and prepares extraction: the hidden payload size is decoded from the
// header and the per-pixel density recomputed from it. Afterwards the
// container acts as a pull-based chunk sequence through Next.
func (c *Container) SetupExtraction() error {
	hiddenFileSize := c.decodeHeader()
	chunkSize, err := c.chunkSizeFor(hiddenFileSize)
	if err != nil {
		return fmt.Errorf("header of %s declares an impossible hidden file size: %w", c.path, err)
	}
	c.reading = &readingState{
		hiddenFileSize: hiddenFileSize,
		chunkSize:      chunkSize,
	}
	return nil
}

// chunkSizeFor computes how many bits must be hidden per pixel to fit
// totalDataSize bytes in the pixels left over after the header.
func (c *Container) chunkSizeFor(totalDataSize uint32) (uint8, error) {
	totalPixels := uint64(c.width) * uint64(c.height)
	if totalPixels <= HeaderPixelLength {
		return 0, fmt.Errorf("%w: image has only %d pixels, the first %d hold the header",
			ErrCapacityExceeded, totalPixels, HeaderPixelLength)
	}
	usablePixels := totalPixels - HeaderPixelLength
	dataBits := uint64(totalDataSize) * 8
	if dataBits > usablePixels*maxBitsPerPixel {
		return 0, fmt.Errorf("%w: current is %d bytes but maximum for this image is %d bytes",
			ErrCapacityExceeded, totalDataSize, usablePixels*maxBitsPerPixel/8)
	}
	bitsPerPixel := (dataBits + usablePixels - 1) / usablePixels
	if bitsPerPixel < chunk.MinSize {
		bitsPerPixel = chunk.MinSize
	}
	return uint8(bitsPerPixel), nil
}

// encodeHeader hides the payload size in the first HeaderPixelLength pixels
// of row 0, one bit per pixel, most significant bit first.
func (c *Container) encodeHeader(totalDataSize uint32) {
	const bitsPerPixel = sizeLength / HeaderPixelLength
	for i := 0; i < HeaderPixelLength; i++ {
		bit := bits.GetBits(totalDataSize, uint(i)*bitsPerPixel, bitsPerPixel)
		c.EncodeBits(bit, bitsPerPixel, i, 0)
	}
}

// decodeHeader reads back the payload size hidden by encodeHeader.
func (c *Container) decodeHeader() uint32 {
	const bitsPerPixel = sizeLength / HeaderPixelLength
	var size uint32
	for i := 0; i < HeaderPixelLength; i++ {
		partial := c.DecodeBits(i, 0, bitsPerPixel)
		size |= partial << ((sizeLength - bitsPerPixel) - uint32(i)*bitsPerPixel)
	}
	return size
}

// EncodeBits overwrites the low bitsLength bits of the pixel at (x, y).
// The pixel's 3 color bytes are treated as one 24-bit field; the alpha byte
// is never touched. bitsVal must fit in bitsLength bits.
func (c *Container) EncodeBits(bitsVal uint32, bitsLength uint8, x, y int) {
	offset := c.img.PixOffset(x, y)
	px := c.img.Pix[offset : offset+3 : offset+3]
	field := bits.BytesToUint24([3]byte{px[0], px[1], px[2]})
	field = field&bits.Mask[uint32](uint(bitsLength), true) | bitsVal
	modified := bits.Uint24ToBytes(field)
	px[0], px[1], px[2] = modified[0], modified[1], modified[2]
}

// DecodeBits recovers the low bitsLength bits of the pixel at (x, y).
func (c *Container) DecodeBits(x, y int, bitsLength uint8) uint32 {
	offset := c.img.PixOffset(x, y)
	px := c.img.Pix[offset : offset+3 : offset+3]
	field := bits.BytesToUint24([3]byte{px[0], px[1], px[2]})
	return field & bits.Mask[uint32](uint(bitsLength), false)
}

// HideData hides a chunk inside the host image. The chunk's order decides
// which pixel receives its bits.
func (c *Container) HideData(ck chunk.Chunk) {
	x, y := c.coordinates(ck.Order)
	c.EncodeBits(ck.Data, ck.Length, x, y)
}

// coordinates maps a chunk ordinal to the pixel that stores it: row-major
// raster order, offset past the header pixels at the start of row 0.
func (c *Container) coordinates(order uint32) (x, y int) {
	offset := HeaderPixelLength + int(order)
	return offset % c.width, offset / c.width
}

// Next pulls the next hidden chunk out of the image. It returns ok=false
// once every hidden bit has been decoded. The final chunk may be shorter
// than the configured density; its Length carries the bits that remain.
//
// Calling Next before SetupExtraction is a programming error and panics.
func (c *Container) Next() (ck chunk.Chunk, ok bool) {
	if c.reading == nil {
		panic("image: Next called before SetupExtraction")
	}

	state := c.reading
	totalBits := uint64(state.hiddenFileSize) * 8
	bitPosition := uint64(state.readingPosition) * uint64(state.chunkSize)
	if bitPosition >= totalBits {
		return chunk.Chunk{}, false
	}

	length := uint64(state.chunkSize)
	if remaining := totalBits - bitPosition; length > remaining {
		length = remaining
	}
	x, y := c.coordinates(state.readingPosition)
	ck = chunk.Chunk{
		Data:   c.DecodeBits(x, y, uint8(length)),
		Length: uint8(length),
		Order:  state.readingPosition,
	}
	state.readingPosition++
	return ck, true
}

// WritePNG encodes the pixel buffer as PNG with the configured compression
// level, regardless of the format the container was opened from.
func (c *Container) WritePNG(w io.Writer) error {
	enc := png.Encoder{CompressionLevel: c.config.PngCompressionLevel}
	return enc.Encode(w, c.img)
}

// Close persists in-memory pixel mutations. An image opened for hiding is
// saved back to its original path exactly once; images used purely for
// extraction, or not backed by a file, are never re-saved. Close is safe to
// defer on every exit path.
func (c *Container) Close() (err error) {
	if c.reading != nil || c.path == "" || c.saved {
		return nil
	}
	c.saved = true

	f, err := os.Create(c.path)
	if err != nil {
		return fmt.Errorf("creating output image file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing output image file: %w", closeErr)
		}
	}()

	switch c.format {
	case "png":
		err = c.WritePNG(f)
	case "bmp":
		err = bmp.Encode(f, c.img)
	case "ppm":
		err = encodePPM(f, c.img)
	default:
		err = fmt.Errorf("%w: cannot save format %q", ErrUnsupportedFormat, c.format)
	}
	if err != nil {
		return fmt.Errorf("saving host image to %s: %w", c.path, err)
	}
	return nil
}
