package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/pns/internal/netunicode"
)

// DecodeOptions holds flags for the decode command.
type DecodeOptions struct {
	Strict    bool
	KeepEmpty bool
}

// DecodeResult is the output of the decode command.
type DecodeResult struct {
	Strings  []string `json:"strings" yaml:"strings"`
	Consumed int      `json:"consumed" yaml:"consumed"`
	Complete bool     `json:"complete" yaml:"complete"`
}

func (r DecodeResult) String() string {
	return strings.Join(r.Strings, "\n")
}

// NewDecodeCommand creates the decode command.
func NewDecodeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DecodeOptions{}

	cmd := &cobra.Command{
		Use:   "decode <buffer>",
		Short: "Decode a netunicode buffer",
		Long: `Decode a netunicode buffer into its strings, one per line.

Decoding stops silently at the first malformed record and reports how many
bytes were consumed. With --strict a malformed buffer is an error.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "fail unless the whole buffer decodes")
	cmd.Flags().BoolVar(&opts.KeepEmpty, "keep-empty", false, "keep zero-length strings")

	return cmd
}

func runDecode(rootOpts *RootOptions, opts *DecodeOptions, buf string, cmd *cobra.Command) error {
	formatter := rootOpts.formatter(cmd)

	var decodeOpts []netunicode.Option
	if opts.KeepEmpty {
		decodeOpts = append(decodeOpts, netunicode.KeepEmpty())
	}

	strs, consumed := netunicode.Decode(buf, decodeOpts...)
	if opts.Strict {
		if _, err := netunicode.DecodeStrict(buf, decodeOpts...); err != nil {
			var syntaxErr *netunicode.SyntaxError
			if errors.As(err, &syntaxErr) {
				return outputError(formatter, ErrCodeBadInput, err.Error(), map[string]any{
					"offset": syntaxErr.Offset,
					"reason": string(syntaxErr.Reason),
				})
			}
			return outputError(formatter, ErrCodeBadInput, err.Error(), nil)
		}
	}

	formatter.VerboseLog("Decoded %d string(s) from %d of %d byte(s)", len(strs), consumed, len(buf))
	if strs == nil {
		strs = []string{}
	}
	return formatter.Success(DecodeResult{
		Strings:  strs,
		Consumed: consumed,
		Complete: consumed == len(buf),
	})
}
