package enum

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// Built-in plugins shared through every Registry. They are ordinary
// plugins invoked through ExecutePlugin, not special-cased anywhere.
func registerBuiltins(r *Registry) {
	_ = r.RegisterPlugin("Validation", PluginFunc(validationPlugin))
	_ = r.RegisterPlugin("Math", PluginFunc(mathPlugin))
	_ = r.RegisterPlugin("Search", PluginFunc(searchPlugin))
	_ = r.RegisterPlugin("Export", PluginFunc(exportPlugin))
}

// validationPlugin checks membership of args[0]. An optional second
// argument selects the mode: "strict" (structural equality, the default)
// or "loose" (stringified comparison).
func validationPlugin(s *Set, args ...any) (any, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("validation plugin needs a payload argument")
	}
	mode := "strict"
	if len(args) > 1 {
		m, err := cast.ToStringE(args[1])
		if err != nil {
			return nil, fmt.Errorf("validation mode: %w", err)
		}
		mode = m
	}

	switch mode {
	case "strict":
		return s.Validate(args[0]), nil
	case "loose":
		want := cast.ToString(args[0])
		for _, v := range s.Values() {
			if cast.ToString(v.Payload()) == want {
				return true, nil
			}
		}
		return false, nil
	default:
		return nil, fmt.Errorf("unknown validation mode %q", mode)
	}
}

// mathPlugin runs "sum" or "average" over the members whose payloads are
// numeric; non-numeric members are skipped.
func mathPlugin(s *Set, args ...any) (any, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("math plugin needs an operation argument")
	}
	op, err := cast.ToStringE(args[0])
	if err != nil {
		return nil, fmt.Errorf("math operation: %w", err)
	}

	var sum float64
	var count int
	for _, v := range s.Values() {
		n, err := cast.ToFloat64E(v.Payload())
		if err != nil {
			continue
		}
		sum += n
		count++
	}

	switch op {
	case "sum":
		return sum, nil
	case "average":
		if count == 0 {
			return nil, fmt.Errorf("no numeric members in %s", s.Name())
		}
		return sum / float64(count), nil
	default:
		return nil, fmt.Errorf("unknown math operation %q", op)
	}
}

// searchPlugin returns the members whose name or stringified payload
// contains args[0], case-insensitively, in insertion order.
func searchPlugin(s *Set, args ...any) (any, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("search plugin needs a query argument")
	}
	query, err := cast.ToStringE(args[0])
	if err != nil {
		return nil, fmt.Errorf("search query: %w", err)
	}
	query = strings.ToLower(query)

	matches := make([]*Value, 0)
	for _, v := range s.Values() {
		if strings.Contains(strings.ToLower(v.Name()), query) ||
			strings.Contains(strings.ToLower(cast.ToString(v.Payload())), query) {
			matches = append(matches, v)
		}
	}
	return matches, nil
}

// exportPlugin renders the set. Formats: "json" (default), "yaml", or
// "text" (the String form).
func exportPlugin(s *Set, args ...any) (any, error) {
	format := "json"
	if len(args) > 0 {
		f, err := cast.ToStringE(args[0])
		if err != nil {
			return nil, fmt.Errorf("export format: %w", err)
		}
		format = f
	}

	switch format {
	case "json":
		data, err := json.MarshalIndent(s.Serialize(), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("exporting %s as json: %w", s.Name(), err)
		}
		return string(data), nil
	case "yaml":
		data, err := yaml.Marshal(s.Serialize())
		if err != nil {
			return nil, fmt.Errorf("exporting %s as yaml: %w", s.Name(), err)
		}
		return string(data), nil
	case "text":
		return s.String(), nil
	default:
		return nil, fmt.Errorf("unknown export format %q", format)
	}
}
