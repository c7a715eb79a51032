package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/pns/internal/names"
)

// CanonOptions holds flags for the canon command.
type CanonOptions struct {
	HTML bool
}

// CanonResult is the output of the canon command.
type CanonResult struct {
	Name     names.Name   `json:"name" yaml:"name"`
	ID       string       `json:"id" yaml:"id"`
	Members  []names.Name `json:"members,omitempty" yaml:"members,omitempty"`
	Count    int          `json:"count" yaml:"count"`
	Exceeded bool         `json:"exceeded,omitempty" yaml:"exceeded,omitempty"`
	HTML     string       `json:"html,omitempty" yaml:"html,omitempty"`
}

func (r CanonResult) String() string {
	if r.HTML != "" {
		return r.HTML
	}
	return string(r.Name)
}

// NewCanonCommand creates the canon command.
func NewCanonCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CanonOptions{}

	cmd := &cobra.Command{
		Use:   "canon <name>...",
		Short: "Canonicalize names into one public name",
		Long: `Canonicalize the arguments into one public name.

Arguments that decode as netunicode are compounds and are canonicalized
recursively; anything else is a leaf. Members are deduplicated and sorted,
and canonicalization stops once more than --horizon names were visited.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCanon(rootOpts, opts, args, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.HTML, "html", false, "render the name as nested HTML spans")

	return cmd
}

func runCanon(rootOpts *RootOptions, opts *CanonOptions, args []string, cmd *cobra.Command) error {
	formatter := rootOpts.formatter(cmd)

	field := names.NewField(rootOpts.horizon())
	name, ok := names.Validate(args, field)
	if !ok {
		return outputError(formatter, ErrCodeBadInput, "no name left after canonicalization", nil)
	}
	if overflow, exceeded := field.Overflow(); exceeded {
		formatter.VerboseLog("Horizon %d exceeded at %q", field.Horizon(), overflow)
	}

	result := CanonResult{
		Name:     name,
		ID:       name.ID(),
		Members:  name.Members(),
		Count:    field.Count(),
		Exceeded: field.Exceeded(),
	}
	if opts.HTML {
		var b strings.Builder
		if err := names.RenderHTML(&b, name); err != nil {
			return outputError(formatter, ErrCodeOutputFailed, err.Error(), nil)
		}
		result.HTML = b.String()
	}
	return formatter.Success(result)
}
