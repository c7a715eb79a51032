package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/pns/internal/articulate"
	"github.com/roach88/pns/internal/names"
)

// ArticulateOptions holds flags for the articulate command.
type ArticulateOptions struct {
	Lang  string
	Chunk int
}

// ArticulateResult is the output of the articulate command. Name is set in
// single-name mode, Chunks in chunked mode.
type ArticulateResult struct {
	Language string             `json:"language" yaml:"language"`
	Name     names.Name         `json:"name,omitempty" yaml:"name,omitempty"`
	Chunks   []articulate.Chunk `json:"chunks,omitempty" yaml:"chunks,omitempty"`
}

func (r ArticulateResult) String() string {
	if r.Chunks == nil {
		return string(r.Name)
	}
	lines := make([]string, len(r.Chunks))
	for i, c := range r.Chunks {
		lines[i] = string(c.Name)
	}
	return strings.Join(lines, "\n")
}

// NewArticulateCommand creates the articulate command.
func NewArticulateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ArticulateOptions{}

	cmd := &cobra.Command{
		Use:   "articulate <file|->",
		Short: "Articulate text into a public name",
		Long: `Articulate a text file, or standard input with "-", into one public
name using the rule table of --lang.

With --chunk N the text is split into chunks of at most N bytes along the
rule boundaries and every chunk is articulated on its own.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runArticulate(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Lang, "lang", "l", "EN", "language code of the rule table")
	cmd.Flags().IntVar(&opts.Chunk, "chunk", 0, "articulate chunks of at most N bytes (0 disables)")

	return cmd
}

func runArticulate(rootOpts *RootOptions, opts *ArticulateOptions, path string, cmd *cobra.Command) error {
	formatter := rootOpts.formatter(cmd)

	reg, err := rootOpts.registry()
	if err != nil {
		return outputLoadError(formatter, err)
	}
	table, ok := reg.Lookup(opts.Lang)
	if !ok {
		return outputError(formatter, ErrCodeUnknownLang, fmt.Sprintf("unknown language %q", opts.Lang),
			map[string]any{"languages": reg.Codes()})
	}

	text, err := readInput(path, cmd.InOrStdin())
	if err != nil {
		return outputError(formatter, ErrCodeReadFailed, err.Error(), nil)
	}
	formatter.VerboseLog("Articulating %d byte(s) with %s (%d rules)", len(text), table.Code, len(table.Rules))

	a := articulate.New(table, articulate.WithHorizon(rootOpts.horizon()))
	result := ArticulateResult{Language: table.Code}
	if opts.Chunk > 0 {
		result.Chunks = a.Chunks(text, opts.Chunk)
		if len(result.Chunks) == 0 {
			return outputError(formatter, ErrCodeBadInput, "nothing to articulate", nil)
		}
		return formatter.Success(result)
	}

	name, ok := a.Name(text)
	if !ok {
		return outputError(formatter, ErrCodeBadInput, "nothing to articulate", nil)
	}
	result.Name = name
	return formatter.Success(result)
}

// readInput reads path, or stdin when path is "-".
func readInput(path string, stdin io.Reader) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}
