package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/storytime/storygen/internal/settings"
	"github.com/storytime/storygen/pkg/config"
)

var envcheckFlags struct {
	target string
}

var envcheckCmd = &cobra.Command{
	Use:   "envcheck",
	Short: "Validate the environment for a target",
	Long: `Validate that every required variable for the backend or the client
build is set. Prints "ok", or each missing variable on its own line and exits 1.

Examples:
  storygen envcheck
  storygen envcheck --target frontend --env-file .env.production`,
	RunE: runEnvcheck,
}

func init() {
	rootCmd.AddCommand(envcheckCmd)

	envcheckCmd.Flags().StringVarP(&envcheckFlags.target, "target", "t", "backend", "configuration to check (backend, frontend)")
}

func runEnvcheck(cmd *cobra.Command, _ []string) error {
	if err := loadEnvFiles(envFiles); err != nil {
		return err
	}

	var err error
	switch envcheckFlags.target {
	case "backend":
		_, err = settings.LoadBackend(config.OSEnv{})
	case "frontend":
		_, err = settings.LoadFrontend(config.OSEnv{})
	default:
		return fmt.Errorf("unknown target %q: want backend or frontend", envcheckFlags.target)
	}

	out := cmd.OutOrStdout()
	if err == nil {
		fmt.Fprintln(out, "ok")
		return nil
	}

	for _, key := range config.MissingKeys(err) {
		fmt.Fprintf(out, "missing: %s\n", key)
	}
	return errors.Join(errReported, err)
}
