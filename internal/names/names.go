// Package names maps stored joint names to display labels. Model files
// frequently carry blank or tool-generated joint names; a small YAML file
// lets users override what list and diagram output shows.
package names

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Table maps stored joint names to display labels.
type Table map[string]string

// Load reads a YAML label file mapping stored names to labels. A missing
// file is not an error and yields an empty table.
func Load(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Table{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("names: read %s: %w", path, err)
	}

	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("names: parse %s: %w", path, err)
	}
	if t == nil {
		t = Table{}
	}
	return t, nil
}

// Label returns the display label for a joint: the override if present,
// the stored name otherwise, or "joint<idx>" when the name is blank.
func (t Table) Label(name string, idx int) string {
	if l, ok := t[name]; ok && l != "" {
		return l
	}
	if name != "" {
		return name
	}
	return fmt.Sprintf("joint%d", idx)
}
