package language

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"
	"gopkg.in/yaml.v3"
)

// yamlFile is the YAML document layout.
type yamlFile struct {
	Languages map[string][]ruleSpec `yaml:"languages"`
}

// LoadYAML reads tables from a YAML document. Tables are returned sorted
// by code.
func LoadYAML(r io.Reader) ([]Table, error) {
	var doc yamlFile
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, &LoadError{Code: ErrCodeLoadFailed, Message: "decoding YAML", Index: -1, Err: err}
	}
	if len(doc.Languages) == 0 {
		return nil, &LoadError{Code: ErrCodeLoadFailed, Message: "no languages", Index: -1}
	}

	codes := make([]string, 0, len(doc.Languages))
	for code := range doc.Languages {
		codes = append(codes, code)
	}
	slices.Sort(codes)

	tables := make([]Table, 0, len(codes))
	for _, code := range codes {
		t, err := buildTable(code, doc.Languages[code])
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, nil
}

// LoadCUE reads tables from a CUE file or from the CUE package in a
// directory. Tables live under the top-level "language" struct and are
// returned in declaration order.
func LoadCUE(path string) ([]Table, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("language source not found: %s", path), Index: -1, Err: err}
	}

	ctx := cuecontext.New()
	var value cue.Value
	if info.IsDir() {
		instances := load.Instances([]string{"."}, &load.Config{Dir: path})
		if len(instances) == 0 {
			return nil, &LoadError{Code: ErrCodeLoadFailed, Message: "no CUE instances loaded", Index: -1}
		}
		if inst := instances[0]; inst.Err != nil {
			return nil, &LoadError{Code: ErrCodeLoadFailed, Message: "loading CUE files", Index: -1, Err: inst.Err}
		}
		value = ctx.BuildInstance(instances[0])
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, &LoadError{Code: ErrCodeLoadFailed, Message: "reading CUE file", Index: -1, Err: err}
		}
		value = ctx.CompileBytes(data, cue.Filename(path))
	}
	if err := value.Err(); err != nil {
		return nil, &LoadError{Code: ErrCodeBuildFailed, Message: "building CUE value", Index: -1, Err: err}
	}

	return tablesFromCUE(value)
}

func tablesFromCUE(value cue.Value) ([]Table, error) {
	langs := value.LookupPath(cue.ParsePath("language"))
	if !langs.Exists() {
		return nil, &LoadError{Code: ErrCodeLoadFailed, Message: "no language field", Index: -1}
	}
	iter, err := langs.Fields()
	if err != nil {
		return nil, &LoadError{Code: ErrCodeBuildFailed, Message: "iterating languages", Index: -1, Err: err}
	}

	var tables []Table
	for iter.Next() {
		code := iter.Label()
		specs, err := ruleSpecsFromCUE(code, iter.Value())
		if err != nil {
			return nil, err
		}
		t, err := buildTable(code, specs)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, nil
}

func ruleSpecsFromCUE(code string, v cue.Value) ([]ruleSpec, error) {
	list, err := v.List()
	if err != nil {
		return nil, &LoadError{Code: ErrCodeBadRule, Message: "rules must be a list", Language: code, Index: -1, Err: err}
	}

	var specs []ruleSpec
	for i := 0; list.Next(); i++ {
		el := list.Value()
		var spec ruleSpec
		switch el.Kind() {
		case cue.StringKind:
			spec.Pattern, _ = el.String()
		case cue.StructKind:
			if err := el.Decode(&spec); err != nil {
				return nil, &LoadError{Code: ErrCodeBadRule, Message: "decoding rule", Language: code, Index: i, Err: err}
			}
		default:
			return nil, &LoadError{Code: ErrCodeBadRule, Message: fmt.Sprintf("unsupported rule kind %s", el.Kind()), Language: code, Index: i}
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// LoadFile loads tables from a YAML file (.yaml, .yml) or a CUE file or
// directory.
func LoadFile(path string) ([]Table, error) {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		f, err := os.Open(path)
		if err != nil {
			return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("language source not found: %s", path), Index: -1, Err: err}
		}
		defer f.Close()
		return LoadYAML(f)
	default:
		return LoadCUE(path)
	}
}
