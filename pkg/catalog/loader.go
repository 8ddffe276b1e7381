package catalog

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// WithJSONDir loads templates from JSON files in fsys. The root of fsys holds
// one directory per language tag and one file per namespace:
//
//	en/common.json
//	en/errors.json
//	de/common.json
func WithJSONDir(fsys fs.FS) Option {
	return func(c *Catalog) error {
		return c.loadDir(fsys, json.Unmarshal, ".json")
	}
}

// WithYAMLDir loads templates from YAML files in fsys, laid out like
// WithJSONDir with .yaml or .yml extensions.
func WithYAMLDir(fsys fs.FS) Option {
	return func(c *Catalog) error {
		return c.loadDir(fsys, yaml.Unmarshal, ".yaml", ".yml")
	}
}

func (c *Catalog) loadDir(fsys fs.FS, unmarshal func([]byte, any) error, exts ...string) error {
	return fs.WalkDir(fsys, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(name))
		matched := false
		for _, e := range exts {
			matched = matched || ext == e
		}
		if !matched {
			return nil
		}

		dir := path.Dir(name)
		if dir == "." {
			return fmt.Errorf("%w: file %q must be inside a language directory", ErrInvalidFile, name)
		}
		lang, err := language.Parse(path.Base(dir))
		if err != nil {
			return fmt.Errorf("%w: directory of %q is not a language tag: %s", ErrInvalidFile, name, err)
		}
		namespace := strings.TrimSuffix(path.Base(name), path.Ext(name))

		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading %q: %w", name, err)
		}

		var templates map[string]any
		if err := unmarshal(data, &templates); err != nil {
			return fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, name, err)
		}

		return c.add(lang, namespace, templates)
	})
}
