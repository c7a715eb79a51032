package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// LanguageInfo describes one rule table.
type LanguageInfo struct {
	Code  string   `json:"code" yaml:"code"`
	Rules []string `json:"rules" yaml:"rules"`
}

// LanguagesResult is the output of the languages command.
type LanguagesResult struct {
	Languages []LanguageInfo `json:"languages" yaml:"languages"`
	patterns  bool
}

func (r LanguagesResult) String() string {
	var b strings.Builder
	for i, l := range r.Languages {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s\t%d rules", l.Code, len(l.Rules))
		if r.patterns {
			for _, p := range l.Rules {
				fmt.Fprintf(&b, "\n  %s", p)
			}
		}
	}
	return b.String()
}

// NewLanguagesCommand creates the languages command.
func NewLanguagesCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "languages [code]...",
		Short: "List the available rule tables",
		Long: `List the built-in rule tables and the ones loaded with --languages.

Given codes, only those tables are shown, with their patterns.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLanguages(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runLanguages(opts *RootOptions, codes []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	reg, err := opts.registry()
	if err != nil {
		return outputLoadError(formatter, err)
	}

	result := LanguagesResult{patterns: len(codes) > 0 || opts.Verbose}
	if len(codes) == 0 {
		codes = reg.Codes()
	}
	for _, code := range codes {
		table, ok := reg.Lookup(code)
		if !ok {
			return outputError(formatter, ErrCodeUnknownLang, fmt.Sprintf("unknown language %q", code),
				map[string]any{"languages": reg.Codes()})
		}
		result.Languages = append(result.Languages, LanguageInfo{Code: table.Code, Rules: table.Patterns()})
	}
	return formatter.Success(result)
}
