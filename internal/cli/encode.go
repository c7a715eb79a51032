package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/pns/internal/netunicode"
)

// EncodeResult is the output of the encode command.
type EncodeResult struct {
	Strings []string `json:"strings" yaml:"strings"`
	Encoded string   `json:"encoded" yaml:"encoded"`
}

func (r EncodeResult) String() string {
	return r.Encoded
}

// NewEncodeCommand creates the encode command.
func NewEncodeCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <string>...",
		Short: "Encode strings as a netunicode sequence",
		Long: `Encode the arguments, in order, as one netunicode buffer of
<length>:<bytes>, records. Lengths count bytes.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runEncode(opts *RootOptions, args []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	return formatter.Success(EncodeResult{
		Strings: args,
		Encoded: netunicode.Encode(args),
	})
}
