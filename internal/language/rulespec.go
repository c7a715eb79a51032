package language

import (
	"errors"

	"gopkg.in/yaml.v3"
)

// ruleSpec is the file form of a rule: a bare pattern or a word list.
type ruleSpec struct {
	Pattern string   `yaml:"pattern" json:"pattern,omitempty"`
	Words   []string `yaml:"words" json:"words,omitempty"`
}

// UnmarshalYAML accepts either a scalar pattern or a mapping.
func (r *ruleSpec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		r.Pattern = value.Value
		return nil
	}
	type plain ruleSpec
	return value.Decode((*plain)(r))
}

func (r ruleSpec) compile() (Rule, error) {
	switch {
	case len(r.Words) > 0 && r.Pattern != "":
		return Rule{}, errors.New("rule has both pattern and words")
	case len(r.Words) > 0:
		return Words(r.Words...), nil
	case r.Pattern != "":
		return NewRule(r.Pattern)
	default:
		return Rule{}, errors.New("rule has neither pattern nor words")
	}
}

// buildTable compiles the rule specs of one language.
func buildTable(code string, specs []ruleSpec) (Table, error) {
	if len(specs) == 0 {
		return Table{}, &LoadError{Code: ErrCodeBadRule, Message: "language has no rules", Language: code, Index: -1}
	}
	t := Table{Code: code, Rules: make([]Rule, 0, len(specs))}
	for i, s := range specs {
		rule, err := s.compile()
		if err != nil {
			code := ErrCodeBadRule
			if s.Pattern != "" && len(s.Words) == 0 {
				code = ErrCodeBadPattern
			}
			return Table{}, &LoadError{Code: code, Message: "invalid rule", Language: t.Code, Index: i, Err: err}
		}
		t.Rules = append(t.Rules, rule)
	}
	return t, nil
}
