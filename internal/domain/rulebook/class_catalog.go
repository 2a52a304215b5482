package rulebook

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data/classes.yaml
var classesYAML []byte

// ClassCatalog resolves class ids to their rules tables.
// Constructed explicitly and injected so tests can supply their own tables.
type ClassCatalog struct {
	classes map[string]*Class
}

type classFile struct {
	Classes []*Class `yaml:"classes"`
}

// NewClassCatalog parses the embedded class tables
func NewClassCatalog() (*ClassCatalog, error) {
	return NewClassCatalogFromYAML(classesYAML)
}

// NewClassCatalogFromYAML builds a catalog from raw YAML class tables
func NewClassCatalogFromYAML(data []byte) (*ClassCatalog, error) {
	var file classFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing class tables: %w", err)
	}

	classes := make(map[string]*Class, len(file.Classes))
	for _, class := range file.Classes {
		if class.Key == "" {
			return nil, fmt.Errorf("class table with empty key")
		}
		if class.HitDie == 0 {
			return nil, fmt.Errorf("class %q has no hit die", class.Key)
		}
		classes[class.Key] = class
	}

	return &ClassCatalog{classes: classes}, nil
}

// ByKey returns the class table for the given class id, or nil when unknown
func (c *ClassCatalog) ByKey(key string) *Class {
	return c.classes[key]
}

// Keys returns all known class ids
func (c *ClassCatalog) Keys() []string {
	keys := make([]string, 0, len(c.classes))
	for k := range c.classes {
		keys = append(keys, k)
	}
	return keys
}
