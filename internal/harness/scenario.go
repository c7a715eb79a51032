package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/roach88/pns/internal/names"
	"github.com/roach88/pns/internal/store"
)

// Scenario defines a store test scenario: a sequence of steps and the
// assertions the final store must satisfy.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Languages lists rule table files (CUE or YAML) to register on top of
	// the built-in tables. Relative paths are resolved against the
	// scenario file's directory.
	Languages []string `yaml:"languages,omitempty"`

	// Horizon overrides the store horizon when positive.
	Horizon int `yaml:"horizon,omitempty"`

	// Context is a fixed context for steps that give none. If empty,
	// steps get ctx-1, ctx-2, ... in order.
	Context string `yaml:"context,omitempty"`

	// Steps are executed in order against a fresh store.
	Steps []Step `yaml:"steps"`

	// Assertions validate the final store.
	Assertions []Assertion `yaml:"assertions"`
}

// Step is one store operation. Exactly one of Statement, Index and
// Articulate is set.
type Step struct {
	Statement  *StatementStep  `yaml:"statement,omitempty"`
	Index      *IndexStep      `yaml:"index,omitempty"`
	Articulate *ArticulateStep `yaml:"articulate,omitempty"`

	// ExpectError is the error kind the step must fail with
	// (empty_name, unknown_language). Empty means the step must succeed.
	ExpectError string `yaml:"expect_error,omitempty"`
}

// op names the step's operation.
func (s Step) op() string {
	switch {
	case s.Statement != nil:
		return OpStatement
	case s.Index != nil:
		return OpIndex
	case s.Articulate != nil:
		return OpArticulate
	}
	return ""
}

// StatementStep calls Store.Statement.
type StatementStep struct {
	Subject   NameSpec `yaml:"subject"`
	Predicate string   `yaml:"predicate"`
	Object    string   `yaml:"object,omitempty"`
	Context   string   `yaml:"context,omitempty"`
}

// IndexStep calls Store.Index.
type IndexStep struct {
	Subject NameSpec `yaml:"subject"`
	Context string   `yaml:"context,omitempty"`
}

// ArticulateStep articulates text into the store. With HTML set the text
// is parsed as an HTML document; with Chunk > 0 it is articulated in
// chunks.
type ArticulateStep struct {
	Text    string `yaml:"text"`
	Lang    string `yaml:"lang"`
	Chunk   int    `yaml:"chunk,omitempty"`
	HTML    bool   `yaml:"html,omitempty"`
	Context string `yaml:"context,omitempty"`
}

// NameSpec is a name written in YAML. A scalar is a leaf, a sequence a
// compound and a mapping a set of key/value pairs; nesting is allowed.
type NameSpec struct {
	item names.Item
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (n *NameSpec) UnmarshalYAML(value *yaml.Node) error {
	item, err := itemFromNode(value)
	if err != nil {
		return err
	}
	n.item = item
	return nil
}

func itemFromNode(node *yaml.Node) (names.Item, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return names.L(node.Value), nil
	case yaml.SequenceNode:
		items := make([]names.Item, 0, len(node.Content))
		for _, child := range node.Content {
			item, err := itemFromNode(child)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return names.C(items...), nil
	case yaml.MappingNode:
		pairs := make(names.Pairs, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			if key.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: name keys must be scalars", key.Line)
			}
			item, err := itemFromNode(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			pairs[key.Value] = item
		}
		return pairs, nil
	case yaml.AliasNode:
		return itemFromNode(node.Alias)
	}
	return nil, fmt.Errorf("line %d: unsupported name", node.Line)
}

// Name returns the canonical form of the written name. ok is false when
// nothing was written or nothing survives canonicalization.
func (n NameSpec) Name() (names.Name, bool) {
	if n.item == nil {
		return "", false
	}
	return names.Canonical(n.item)
}

// Assertion validates the final store. Which fields apply depends on Type.
type Assertion struct {
	// Type specifies the assertion type:
	// - "canonical": Name canonicalizes to Expect
	// - "articulation": Text articulated with Lang yields Expect
	// - "entry": the entry of Name holds Subjects, or is closed
	// - "routes": the routes of Name equal Contexts
	// - "objects": the objects of (Name, Predicate) equal Objects
	// - "search": searching for Query yields Subjects
	// - "stats": the store counts equal Stats
	Type string `yaml:"type"`

	Name      NameSpec          `yaml:"name,omitempty"`
	Predicate string            `yaml:"predicate,omitempty"`
	Text      string            `yaml:"text,omitempty"`
	Lang      string            `yaml:"lang,omitempty"`
	Query     []NameSpec        `yaml:"query,omitempty"`
	Expect    string            `yaml:"expect,omitempty"`
	Subjects  []string          `yaml:"subjects,omitempty"`
	Closed    bool              `yaml:"closed,omitempty"`
	Contexts  []string          `yaml:"contexts,omitempty"`
	Objects   map[string]string `yaml:"objects,omitempty"`
	Stats     *store.Stats      `yaml:"stats,omitempty"`
}

// Assertion type constants.
const (
	AssertCanonical    = "canonical"
	AssertArticulation = "articulation"
	AssertEntry        = "entry"
	AssertRoutes       = "routes"
	AssertObjects      = "objects"
	AssertSearch       = "search"
	AssertStats        = "stats"
)

var assertionTypes = []string{
	AssertCanonical, AssertArticulation, AssertEntry, AssertRoutes,
	AssertObjects, AssertSearch, AssertStats,
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
// Language paths are resolved against the file's directory.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Parse YAML with strict field validation (catches typos like "assertion:" vs "assertions:")
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	base := filepath.Dir(path)
	for i, p := range scenario.Languages {
		if !filepath.IsAbs(p) {
			scenario.Languages[i] = filepath.Join(base, p)
		}
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.Horizon < 0 {
		return fmt.Errorf("horizon must not be negative")
	}

	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	for i, step := range s.Steps {
		set := 0
		for _, present := range []bool{step.Statement != nil, step.Index != nil, step.Articulate != nil} {
			if present {
				set++
			}
		}
		if set != 1 {
			return fmt.Errorf("steps[%d]: exactly one of statement, index, articulate is required", i)
		}
		switch step.ExpectError {
		case "", ErrorEmptyName, ErrorUnknownLanguage:
		default:
			return fmt.Errorf("steps[%d]: unknown expect_error %q", i, step.ExpectError)
		}
	}

	for i, a := range s.Assertions {
		if !slices.Contains(assertionTypes, a.Type) {
			return fmt.Errorf("assertions[%d]: unknown type %q", i, a.Type)
		}
	}

	return nil
}
