package config

import "image/png"

// Config describes one steganer run. If Extract is false, HiddenFile points
// to the file whose content must be hidden inside HostFile; if Extract is
// true, HiddenFile is the path where the recovered data is written.
type Config struct {
	HiddenFile string
	HostFile   string
	Extract    bool
	Image      ImageSaveConfig
}

// ImageSaveConfig controls how a mutated host image is persisted.
type ImageSaveConfig struct {
	PngCompressionLevel png.CompressionLevel
}

// PopulateUnsetConfigVars replaces out-of-range settings with defaults.
func (c *ImageSaveConfig) PopulateUnsetConfigVars() {
	if c.PngCompressionLevel < png.BestCompression || c.PngCompressionLevel > png.DefaultCompression {
		c.PngCompressionLevel = png.DefaultCompression
	}
}
