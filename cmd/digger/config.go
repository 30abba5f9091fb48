package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-digger/internal/config"
)

var flagOutput string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default config YAML",
	Long: `Prints the built-in default configuration. Every key is optional;
a config file only needs the keys it changes.

Examples:
  digger config
  digger config --output ~/.digger/configs/digger.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Write to this file instead of stdout")
}

func writeDefaultConfig(w io.Writer) error {
	_, err := w.Write(config.DefaultYAML())
	return err
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagOutput == "" {
		return writeDefaultConfig(cmd.OutOrStdout())
	}

	if err := os.MkdirAll(filepath.Dir(flagOutput), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	f, err := os.OpenFile(flagOutput, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	if err := writeDefaultConfig(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.Info("wrote default config", "path", flagOutput)
	return nil
}
