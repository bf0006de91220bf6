// Package steganer hides a file inside a lossless raster image, and
// recovers it bit-exactly later, by overwriting the least significant bits
// of pixel color channels.
package steganer

import (
	"bytes"
	"errors"
	"fmt"
	stdimage "image"
	"math"
	"os"
	"time"

	"steganer/pkg/chunk"
	"steganer/pkg/config"
	"steganer/pkg/image"
	"steganer/pkg/model"
)

// ErrFileTooBig marks a payload whose byte count does not fit in the 32-bit
// size header.
var ErrFileTooBig = errors.New("file to hide is too big")

// Run executes one hide or extract operation as described by cfg.
func Run(cfg config.Config) error {
	var err error
	if cfg.Extract {
		_, err = Extract(cfg.HiddenFile, cfg.HostFile, cfg.Image)
	} else {
		_, err = Hide(cfg.HiddenFile, cfg.HostFile, cfg.Image)
	}
	return err
}

// Hide embeds the file at fileToHide into the image at hostFile. The host
// image is rewritten in place; the file to hide is not touched.
func Hide(fileToHide, hostFile string, cfg config.ImageSaveConfig) (stats model.HideStats, err error) {
	setupStart := time.Now()

	payload, err := os.ReadFile(fileToHide)
	if err != nil {
		return stats, fmt.Errorf("reading file to hide: %w", err)
	}
	if uint64(len(payload)) > math.MaxUint32 {
		return stats, fmt.Errorf("%w: maximum size is %d bytes, got %d", ErrFileTooBig, uint32(math.MaxUint32), len(payload))
	}

	hostImage, err := image.OpenContainer(hostFile, cfg)
	if err != nil {
		return stats, fmt.Errorf("opening host image: %w", err)
	}
	defer func() {
		saveStart := time.Now()
		if closeErr := hostImage.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
		stats.ImageSave = time.Since(saveStart)
	}()

	chunkSize, err := hostImage.SetupHiding(uint32(len(payload)))
	if err != nil {
		return stats, fmt.Errorf("preparing host image for hiding: %w", err)
	}
	reader, err := chunk.NewReader(payload, chunkSize)
	if err != nil {
		return stats, fmt.Errorf("preparing file to hide reader: %w", err)
	}
	stats.Setup = time.Since(setupStart)

	encodeStart := time.Now()
	for {
		ck, ok := reader.Next()
		if !ok {
			break
		}
		hostImage.HideData(ck)
	}
	stats.DataEncoding = time.Since(encodeStart)
	return stats, nil
}

// Extract recovers a file previously hidden in the image at hostFile and
// writes it to destinationFile. The host image is never modified.
func Extract(destinationFile, hostFile string, cfg config.ImageSaveConfig) (stats model.ExtractStats, err error) {
	setupStart := time.Now()

	hostImage, err := image.OpenContainer(hostFile, cfg)
	if err != nil {
		return stats, fmt.Errorf("opening host image: %w", err)
	}
	defer func() {
		err = errors.Join(err, hostImage.Close())
	}()

	if err = hostImage.SetupExtraction(); err != nil {
		return stats, fmt.Errorf("preparing host image for extraction: %w", err)
	}

	destination, err := os.Create(destinationFile)
	if err != nil {
		return stats, fmt.Errorf("creating destination file to store extracted data: %w", err)
	}
	writer := chunk.NewWriter(destination)
	defer func() {
		err = errors.Join(err, writer.Close(), destination.Close())
	}()
	stats.Setup = time.Since(setupStart)

	decodeStart := time.Now()
	for {
		ck, ok := hostImage.Next()
		if !ok {
			break
		}
		if err = writer.Write(ck); err != nil {
			return stats, err
		}
	}
	stats.DataDecoding = time.Since(decodeStart)
	return stats, nil
}

// HideInImage embeds payload into an already-decoded image and returns the
// mutated image re-encoded as PNG. Nothing touches the filesystem; this is
// the entry point for callers that move images over the wire.
func HideInImage(img *stdimage.RGBA, payload []byte, cfg config.ImageSaveConfig) (encodedPNG []byte, stats model.HideStats, err error) {
	setupStart := time.Now()
	if uint64(len(payload)) > math.MaxUint32 {
		return nil, stats, fmt.Errorf("%w: maximum size is %d bytes, got %d", ErrFileTooBig, uint32(math.MaxUint32), len(payload))
	}

	hostImage := image.NewContainer(img, cfg)
	chunkSize, err := hostImage.SetupHiding(uint32(len(payload)))
	if err != nil {
		return nil, stats, fmt.Errorf("preparing host image for hiding: %w", err)
	}
	reader, err := chunk.NewReader(payload, chunkSize)
	if err != nil {
		return nil, stats, fmt.Errorf("preparing payload reader: %w", err)
	}
	stats.Setup = time.Since(setupStart)

	encodeStart := time.Now()
	for {
		ck, ok := reader.Next()
		if !ok {
			break
		}
		hostImage.HideData(ck)
	}
	stats.DataEncoding = time.Since(encodeStart)

	saveStart := time.Now()
	var out bytes.Buffer
	if err = hostImage.WritePNG(&out); err != nil {
		return nil, stats, fmt.Errorf("encoding output image: %w", err)
	}
	stats.ImageSave = time.Since(saveStart)
	return out.Bytes(), stats, nil
}

// ExtractFromImage recovers the payload previously hidden in an
// already-decoded image.
func ExtractFromImage(img *stdimage.RGBA) (payload []byte, stats model.ExtractStats, err error) {
	setupStart := time.Now()
	hostImage := image.NewContainer(img, config.ImageSaveConfig{})
	if err = hostImage.SetupExtraction(); err != nil {
		return nil, stats, fmt.Errorf("preparing host image for extraction: %w", err)
	}
	stats.Setup = time.Since(setupStart)

	decodeStart := time.Now()
	var out bytes.Buffer
	writer := chunk.NewWriter(&out)
	for {
		ck, ok := hostImage.Next()
		if !ok {
			break
		}
		if err = writer.Write(ck); err != nil {
			return nil, stats, err
		}
	}
	if err = writer.Close(); err != nil {
		return nil, stats, err
	}
	stats.DataDecoding = time.Since(decodeStart)
	return out.Bytes(), stats, nil
}
