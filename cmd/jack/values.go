package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/guynir/jack/pkg/message"
)

// valueFlags are the --values and --set flags shared by commands that render.
type valueFlags struct {
	file string
	set  []string
}

// load reads the values file, then applies --set pairs on top. Both are
// decoded as YAML scalars, so 60 is an int, 1.44 a float64 and anything
// unparsable a string. JSON files are valid YAML.
func (f *valueFlags) load() (message.M, error) {
	values := message.M{}

	if f.file != "" {
		data, err := os.ReadFile(f.file)
		if err != nil {
			return nil, fmt.Errorf("reading values: %w", err)
		}
		if err := yaml.Unmarshal(data, &values); err != nil {
			return nil, fmt.Errorf("parsing values %q: %w", f.file, err)
		}
		if values == nil {
			values = message.M{}
		}
	}

	for _, pair := range f.set {
		name, raw, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --set %q: want name=value", pair)
		}
		values[name] = scalar(raw)
	}
	return values, nil
}

func scalar(raw string) any {
	var v any
	if err := yaml.Unmarshal([]byte(raw), &v); err != nil || v == nil {
		return raw
	}
	switch v.(type) {
	case map[string]any, []any:
		return raw
	}
	return v
}
