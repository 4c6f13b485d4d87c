package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/storytime/storygen/pkg/config"
)

const serviceName = "storygen-api"

// Global flags
var envFiles []string

var rootCmd = &cobra.Command{
	Use:   "storygen",
	Short: "Story Generator backend",
	Long: `Story Generator backend API and configuration tooling.

Configuration is read from the process environment. Variables from .env
files fill in whatever the environment does not already define.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			rootCmd.PrintErrln(err)
		}
		os.Exit(1)
	}
}

// errReported marks failures that were already logged or printed.
var errReported = errors.New("failure reported")

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "env file(s) to load; later files win (default .env if present)")
}

// loadEnvFiles loads the --env-file paths, or the default .env when none were
// given. A missing default file is not an error.
func loadEnvFiles(paths []string) error {
	err := config.LoadEnv(paths...)
	if err != nil && len(paths) == 0 && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
