package cli

import (
	"fmt"
	"image/png"
	"os"
	"steganer/pkg/config"
	"steganer/pkg/steganer"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var (
	pngCompressionMapping = map[string]png.CompressionLevel{
		"default": 0,
		"none":    -1,
		"fast":    -2,
		"best":    -3,
	}
)

func ImageCommands() *cobra.Command {
	imageCmd := &cobra.Command{
		Use:     "image",
		Short:   "Hide a file inside an image, or recover a previously hidden file",
		Example: "steganer image hide --file secret.zip --image holiday.png",
	}

	imageCmd.AddCommand(hideFileCommand(), extractFileCommand())
	return imageCmd
}

type hideFileOpts struct {
	fileToHide     string
	hostImage      string
	pngCompression string
}

func (o hideFileOpts) toSaveConfig() config.ImageSaveConfig {
	mappedCompression, found := pngCompressionMapping[o.pngCompression]
	if !found {
		mappedCompression = png.DefaultCompression
	}
	return config.ImageSaveConfig{
		PngCompressionLevel: mappedCompression,
	}
}

func hideFileCommand() *cobra.Command {
	opts := hideFileOpts{}

	hideCmd := &cobra.Command{
		Use:     "hide",
		Example: "steganer image hide --file secret.zip --image holiday.png --png-compression best",
		Short:   "Hide a file inside an image",
		RunE: func(cmd *cobra.Command, args []string) error {
			return HideFileInImage(opts.fileToHide, opts.hostImage, opts.toSaveConfig())
		},
	}

	hideCmd.Flags().StringVar(&opts.fileToHide, "file", "", "File to hide inside the host image")
	hideCmd.Flags().StringVar(&opts.hostImage, "image", "", "Host image that will carry the hidden file. It is overwritten in place")
	hideCmd.Flags().StringVar(&opts.pngCompression, "png-compression", "default", "Compression for the saved png. Options are default, none, fast, best")

	MarkFlagsRequired(hideCmd, "file", "image")

	return hideCmd
}

func HideFileInImage(fileToHide, hostImage string, cfg config.ImageSaveConfig) error {
	fileInfo, err := os.Stat(fileToHide)
	if err != nil {
		return err
	}

	s := NewSpinner()
	s.Prefix = "Hiding file inside host image "
	s.FinalMSG = fmt.Sprintf("Hid %s (%s) inside %s\n", fileToHide, humanize.Bytes(uint64(fileInfo.Size())), hostImage)
	s.Start()

	stats, err := steganer.Hide(fileToHide, hostImage, cfg)
	if err != nil {
		s.FinalMSG = ""
		s.Stop()
		return err
	}
	s.Stop()

	fmt.Printf("Setup time: %s\n", stats.Setup)
	fmt.Printf("Data encode time: %s\n", stats.DataEncoding)
	fmt.Printf("Image save time: %s\n", stats.ImageSave)
	return nil
}

func extractFileCommand() *cobra.Command {
	var (
		destinationFile string
		hostImage       string
	)

	extractCmd := &cobra.Command{
		Use:     "extract",
		Example: "steganer image extract --file recovered.zip --image holiday.png",
		Short:   "Recover the file hidden inside an image",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ExtractFileFromImage(destinationFile, hostImage)
		},
	}

	extractCmd.Flags().StringVar(&destinationFile, "file", "", "Destination path for the recovered file")
	extractCmd.Flags().StringVar(&hostImage, "image", "", "Image carrying the hidden file")

	MarkFlagsRequired(extractCmd, "file", "image")

	return extractCmd
}

func ExtractFileFromImage(destinationFile, hostImage string) error {
	s := NewSpinner()
	s.Prefix = "Recovering hidden file "
	s.FinalMSG = fmt.Sprintf("Recovered hidden file from %s into %s\n", hostImage, destinationFile)
	s.Start()

	stats, err := steganer.Extract(destinationFile, hostImage, config.ImageSaveConfig{})
	if err != nil {
		s.FinalMSG = ""
		s.Stop()
		return err
	}
	s.Stop()

	fmt.Printf("Setup time: %s\n", stats.Setup)
	fmt.Printf("Data decode time: %s\n", stats.DataDecoding)
	return nil
}
