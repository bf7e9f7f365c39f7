// Package main provides the CLI entry point for yamlschema, a tool that
// generates JSON Schema (Draft 7) from YAML files.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/udoprog/nondestructive-sub000/log"
	"github.com/udoprog/nondestructive-sub000/schema"
	"github.com/udoprog/nondestructive-sub000/version"
)

func main() {
	cfg := schema.NewConfig()
	logCfg := log.NewConfig()

	rootCmd := &cobra.Command{
		Use:   "yamlschema [flags] <file.yaml> [file2.yaml ...]",
		Short: "Generate JSON Schema from YAML files",
		Long: `yamlschema generates JSON Schema (Draft 7) from YAML files on a best-effort
basis, inferring types from the structure of the documents.`,
		Version:       version.Revision,
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			handler, err := logCfg.NewHandler(os.Stderr)
			if err != nil {
				return err
			}

			slog.SetDefault(slog.New(handler))

			return run(cfg, args)
		},
	}

	cfg.RegisterFlags(rootCmd.Flags())
	logCfg.RegisterFlags(rootCmd.Flags())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(cfg *schema.Config, args []string) error {
	gen := cfg.NewGenerator()

	var inputs [][]byte

	for _, arg := range args {
		var (
			data []byte
			err  error
		)

		if arg == "-" {
			data, err = io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("%w: stdin: %w", schema.ErrReadInput, err)
			}
		} else {
			data, err = os.ReadFile(arg)
			if err != nil {
				return fmt.Errorf("%w: %w", schema.ErrReadInput, err)
			}
		}

		slog.Debug("read input", slog.String("file", arg), slog.Int("bytes", len(data)))

		inputs = append(inputs, data)
	}

	result, err := gen.Generate(inputs...)
	if err != nil {
		return err
	}

	indent := strings.Repeat(" ", max(cfg.Indent, 0))

	out, err := json.MarshalIndent(result, "", indent)
	if err != nil {
		return fmt.Errorf("%w: %w", schema.ErrWriteOutput, err)
	}

	out = append(out, '\n')

	if cfg.Output == "" || cfg.Output == "-" {
		_, err = os.Stdout.Write(out)
		if err != nil {
			return fmt.Errorf("%w: %w", schema.ErrWriteOutput, err)
		}

		return nil
	}

	err = os.WriteFile(cfg.Output, out, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %w", schema.ErrWriteOutput, err)
	}

	return nil
}
