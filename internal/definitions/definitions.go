// Package definitions loads enum set definitions from YAML files for the
// CLI. A definitions file looks like:
//
//	enums:
//	  - name: Color
//	    version: "1.0.0"
//	    access_level: public
//	    metadata:
//	      source: design-system
//	    values:
//	      - name: Red
//	        value: 1
//	      - name: Green
//	        value: 2
package definitions

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/enumium/enum"
	"github.com/zjrosen/enumium/internal/log"
)

// File is the top-level shape of a definitions file.
type File struct {
	Enums []EnumDef `yaml:"enums"`
}

// EnumDef declares one enum set.
type EnumDef struct {
	Name        string         `yaml:"name"`
	Version     string         `yaml:"version"`
	AccessLevel string         `yaml:"access_level"`
	Metadata    map[string]any `yaml:"metadata"`
	Values      []ValueDef     `yaml:"values"`
}

// ValueDef declares one member.
type ValueDef struct {
	Name     string         `yaml:"name"`
	Value    any            `yaml:"value"`
	Metadata map[string]any `yaml:"metadata"`
}

// Load reads and parses a definitions file. Structural problems (empty
// enum names, enums without values) are rejected here so Build only has
// to surface the library's own errors.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from the user's --file flag
	if err != nil {
		return nil, fmt.Errorf("reading definitions: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing definitions: %w", err)
	}

	for i, e := range f.Enums {
		if e.Name == "" {
			return nil, fmt.Errorf("definitions: enum %d has no name", i)
		}
		if len(e.Values) == 0 {
			return nil, fmt.Errorf("definitions: enum %q has no values", e.Name)
		}
		for j, v := range e.Values {
			if v.Name == "" {
				return nil, fmt.Errorf("definitions: enum %q value %d has no name", e.Name, j)
			}
		}
	}

	log.Debug(log.CatConfig, "definitions loaded", "path", path, "enums", len(f.Enums))
	return &f, nil
}

// Build constructs the declared sets in file order, registering each into
// reg. Member order follows the file.
func (f *File) Build(reg *enum.Registry) ([]*enum.Set, error) {
	sets := make([]*enum.Set, 0, len(f.Enums))
	for _, def := range f.Enums {
		opts := []enum.Option{enum.WithRegistry(reg)}
		if def.Version != "" {
			opts = append(opts, enum.WithVersion(def.Version))
		}
		if def.Metadata != nil {
			opts = append(opts, enum.WithMetadata(def.Metadata))
		}
		if def.AccessLevel != "" {
			level, err := enum.ParseAccessLevel(def.AccessLevel)
			if err != nil {
				return nil, fmt.Errorf("enum %q: %w", def.Name, err)
			}
			opts = append(opts, enum.WithAccessLevel(level))
		}

		s, err := enum.New(def.Name, opts...)
		if err != nil {
			return nil, fmt.Errorf("enum %q: %w", def.Name, err)
		}
		for _, v := range def.Values {
			if _, err := s.AddValueWithMetadata(v.Name, v.Value, v.Metadata); err != nil {
				return nil, fmt.Errorf("enum %q: %w", def.Name, err)
			}
		}
		sets = append(sets, s)
	}
	return sets, nil
}
