package main

import (
	"fmt"
	"os"
	"os/signal"
	"steganer/internal/cli"
	"steganer/pkg/config"
	"steganer/pkg/steganer"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	var (
		cpuProfile    string
		memProfileDir string
		extract       bool
	)

	rootCmd := &cobra.Command{
		Use:     "steganer [file] [host-image]",
		Short:   "Hide files inside lossless images and recover them",
		Example: "steganer secret.zip holiday.png\nsteganer recovered.zip holiday.png --extract",
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return cmd.Help()
			}
			cfg := config.Config{
				HiddenFile: args[0],
				HostFile:   args[1],
				Extract:    extract,
			}
			cfg.Image.PopulateUnsetConfigVars()
			return steganer.Run(cfg)
		},
	}

	rootCmd.Flags().BoolVar(&extract, "extract", false, "Recover the hidden file from the host image instead of hiding one")
	rootCmd.PersistentFlags().StringVar(&cpuProfile, "cpu-profile", "", "Dump CPU profile into the supplied file")
	rootCmd.PersistentFlags().StringVar(&memProfileDir, "mem-profile-dir", "", "Dump memory profiles into the supplied directory")

	rootCmd.AddCommand(cli.ImageCommands(), cli.ServeAppCommand())

	var cpuProfTeardown, memProfTeardown func()
	cobra.OnInitialize(func() {
		if cpuProfile != "" {
			cpuProfTeardown = setupCPUProfilingAndReturnTeardown(cpuProfile)
		}
		if memProfileDir != "" {
			cli.StartMemoryProfiler(memProfileDir)
			memProfTeardown = cli.StopMemoryProfiler
		}
	})

	teardownProfilers := func() {
		if cpuProfTeardown != nil {
			cpuProfTeardown()
		}
		if memProfTeardown != nil {
			memProfTeardown()
		}
	}

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		teardownProfilers()
		os.Exit(0)
	}()

	err := rootCmd.Execute()
	teardownProfilers()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupCPUProfilingAndReturnTeardown(cpuProfile string) (deferredTeardown func()) {
	cpuProfileFile, err := os.Create(cpuProfile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating CPU profile file: %v\n", err)
		os.Exit(1)
	}
	cli.StartCPUProfiler(cpuProfileFile)

	return func() {
		cli.StopCPUProfiler()
		cpuProfileFile.Close()
	}
}
