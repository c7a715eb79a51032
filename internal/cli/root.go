package cli

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/pns/internal/language"
	"github.com/roach88/pns/internal/names"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose   bool
	Format    string // "text" | "json" | "yaml"
	Horizon   int
	Languages string // CUE file or directory, or YAML file
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "yaml"}

// NewRootCommand creates the root command for the pns CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "pns",
		Short: "pns - public names",
		Long: `Extract canonical public names from text and index them in an
in-memory statement store.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
				return err
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json|yaml)")
	cmd.PersistentFlags().IntVar(&opts.Horizon, "horizon", names.Horizon, "maximum number of names per field and index entry")
	cmd.PersistentFlags().StringVar(&opts.Languages, "languages", "", "extra language tables (CUE file or directory, or YAML file)")

	cmd.AddCommand(NewEncodeCommand(opts))
	cmd.AddCommand(NewDecodeCommand(opts))
	cmd.AddCommand(NewCanonCommand(opts))
	cmd.AddCommand(NewArticulateCommand(opts))
	cmd.AddCommand(NewIndexCommand(opts))
	cmd.AddCommand(NewLanguagesCommand(opts))

	return cmd
}

// validate checks the global flags.
func (o *RootOptions) validate() error {
	if !slices.Contains(ValidFormats, o.Format) {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", o.Format, ValidFormats))
	}
	if o.Horizon < 1 {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid horizon %d: must be at least 1", o.Horizon))
	}
	return nil
}

// horizon returns the configured horizon. Zero selects the default, so
// commands built without the root command still work.
func (o *RootOptions) horizon() int {
	if o.Horizon <= 0 {
		return names.Horizon
	}
	return o.Horizon
}

// registry returns the built-in tables plus the ones loaded from
// --languages. Loaded tables replace built-ins with the same code.
func (o *RootOptions) registry() (*language.Registry, error) {
	reg := language.Default()
	if o.Languages == "" {
		return reg, nil
	}
	tables, err := language.LoadFile(o.Languages)
	if err != nil {
		return nil, err
	}
	for _, t := range tables {
		reg.Register(t)
	}
	return reg, nil
}

// logger writes structured diagnostics to w: Info by default, Debug with
// --verbose.
func (o *RootOptions) logger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if o.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// formatter builds the output formatter for cmd.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	format := o.Format
	if format == "" {
		format = "text"
	}
	return &OutputFormatter{
		Format:    format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   o.Verbose,
	}
}
