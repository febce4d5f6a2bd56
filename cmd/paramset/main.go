// Package main provides the CLI entry point for paramset, a tool that
// validates configuration documents against a schema and can print the
// schema's allowed-configuration form or export it as JSON Schema.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"go.fenwick.dev/paramset"
	"go.fenwick.dev/paramset/document"
	"go.fenwick.dev/paramset/example"
	"go.fenwick.dev/paramset/jsonschema"
	"go.fenwick.dev/paramset/log"
	"go.fenwick.dev/paramset/profile"
	"go.fenwick.dev/paramset/version"
)

// ErrReadInput indicates the input document could not be read or parsed.
var ErrReadInput = errors.New("read input")

// ErrUnknownFormat indicates the input format could not be determined or is
// not recognized.
var ErrUnknownFormat = errors.New("unknown document format")

func main() {
	logCfg := log.NewConfig()
	profileCfg := profile.NewConfig()

	var formatFlag string

	rootCmd := &cobra.Command{
		Use:           "paramset",
		Short:         "Validate and inspect FHiCL-like configuration schemas",
		Long:          `paramset validates configuration documents (KDL or YAML) against a typed, self-describing schema, prints the schema's allowed-configuration form, or exports it as JSON Schema.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       version.Version,
	}

	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "",
		"input document format, one of: kdl, yaml (default: inferred from file extension)")
	logCfg.RegisterFlags(rootCmd.PersistentFlags())
	profileCfg.RegisterFlags(rootCmd.PersistentFlags())

	var handler slog.Handler

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		h, err := logCfg.NewHandler(cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		handler = h
		slog.SetDefault(slog.New(handler))

		return nil
	}

	profiler := profileCfg.NewProfiler()

	rootCmd.PersistentPreRunE = wrapWithProfiler(rootCmd.PersistentPreRunE, profiler)

	var profileStopErr error

	rootCmd.PersistentPostRunE = func(*cobra.Command, []string) error {
		profileStopErr = profiler.Stop()
		return nil
	}

	rootCmd.AddCommand(
		newValidateCmd(&formatFlag),
		newPrintCmd(),
		newSchemaCmd(),
	)

	err := logCfg.RegisterCompletions(rootCmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "register log completions: %v\n", err)
	}

	err = profileCfg.RegisterCompletions(rootCmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "register profile completions: %v\n", err)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if profileStopErr != nil {
		fmt.Fprintf(os.Stderr, "stopping profiler: %v\n", profileStopErr)
		os.Exit(1)
	}
}

// wrapWithProfiler returns a PersistentPreRunE that starts p after running
// next, so profiling flags (registered alongside next's logging setup) take
// effect before any subcommand work begins.
func wrapWithProfiler(next func(*cobra.Command, []string) error, p *profile.Profiler) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if next != nil {
			if err := next(cmd, args); err != nil {
				return err
			}
		}

		return p.Start()
	}
}

// demoSchema returns the built-in demo schema used when no external schema
// is supplied. paramset's schema declarations are Go code, not data, so a
// CLI that accepts arbitrary schemas would need one compiled in per schema;
// this demo stands in for that slot.
func demoSchema() (*paramset.Table, *example.Config) {
	paramset.ClearRegistry()
	return example.BuildSchema()
}

// readDocumentTable parses path (or stdin, if path is "-") as a top-level
// document table, using formatFlag or the file extension to pick KDL or
// YAML.
func readDocumentTable(path, formatFlag string) (*document.Table, error) {
	var r io.Reader

	if path == "-" || path == "" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
		}
		defer f.Close()

		r = f
	}

	format := formatFlag
	if format == "" {
		format = inferFormat(path)
	}

	switch strings.ToLower(format) {
	case "kdl":
		tbl, err := document.FromKDL(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
		}

		return tbl, nil
	case "yaml", "yml":
		tbl, err := document.FromYAML(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
		}

		return tbl, nil
	default:
		return nil, fmt.Errorf("%w: %q (pass --format)", ErrUnknownFormat, format)
	}
}

func inferFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".kdl":
		return "kdl"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return ""
	}
}

func newValidateCmd(formatFlag *string) *cobra.Command {
	var ignore []string

	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a configuration document against the demo schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, _ := demoSchema()

			doc, err := readDocumentTable(args[0], *formatFlag)
			if err != nil {
				return err
			}

			rootNode, ok := doc.Get(tbl.ParamName())
			if !ok {
				return fmt.Errorf("%w: document has no top-level %q table", ErrReadInput, tbl.ParamName())
			}

			tableNode, ok := rootNode.(paramset.TableNode)
			if !ok {
				return fmt.Errorf("%w: top-level %q is not a table", ErrReadInput, tbl.ParamName())
			}

			var ignoredKeys map[string]bool
			if len(ignore) > 0 {
				ignoredKeys = make(map[string]bool, len(ignore))
				for _, key := range ignore {
					ignoredKeys[key] = true
				}
			}

			if err := tbl.Validate(tableNode, ignoredKeys); err != nil {
				return err
			}

			slog.Info("document validated successfully", "schema", tbl.ParamName())
			fmt.Fprintln(cmd.OutOrStdout(), "ok")

			return nil
		},
	}

	cmd.Flags().StringSliceVar(&ignore, "ignore", nil, "document keys to skip during validation (may be repeated)")

	return cmd
}

func newPrintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print",
		Short: "Print the demo schema's allowed-configuration form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tbl, _ := demoSchema()
			return tbl.PrintAllowedConfiguration(cmd.OutOrStdout(), "")
		},
	}
}

func newSchemaCmd() *cobra.Command {
	var indent int

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Export the demo schema as JSON Schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tbl, _ := demoSchema()

			schema := jsonschema.Export(tbl)

			prefix := "  "
			if indent > 0 {
				prefix = strings.Repeat(" ", indent)
			}

			out, err := json.MarshalIndent(schema, "", prefix)
			if err != nil {
				return fmt.Errorf("marshal schema: %w", err)
			}

			out = append(out, '\n')
			_, err = cmd.OutOrStdout().Write(out)

			return err
		},
	}

	cmd.Flags().IntVar(&indent, "indent", 2, "number of spaces to indent JSON output")

	return cmd
}
