// Package statecode provides the GST state-code lookup table. The
// table maps the 2-digit code that prefixes every GSTIN to a state
// name. Codes are occasionally amended by the tax authority, so the
// registry is an explicitly constructed value loadable from a data
// file rather than package-level constant data.
package statecode

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

//go:embed states.json
var defaultTable []byte

// Registry is an immutable code → state name lookup. Safe for
// concurrent use; never mutated after construction.
type Registry struct {
	names map[string]string
}

// New builds a Registry from an explicit table. The map is copied.
func New(table map[string]string) *Registry {
	names := make(map[string]string, len(table))
	for code, name := range table {
		names[code] = name
	}
	return &Registry{names: names}
}

// Default returns a Registry built from the embedded authority table.
// The embedded table carries the authority's legacy entries as-is,
// including the pre-merger Daman and Diu (25) and the duplicate
// Andhra Pradesh mapping (28 and 37).
func Default() *Registry {
	r, err := parse(defaultTable)
	if err != nil {
		// The embedded table is fixed at build time.
		panic(fmt.Sprintf("statecode: embedded table invalid: %v", err))
	}
	return r
}

// LoadFile builds a Registry from a JSON file of code → name pairs,
// for deployments tracking an amended authority table.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading state table: %w", err)
	}
	r, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing state table %s: %w", path, err)
	}
	return r, nil
}

func parse(data []byte) (*Registry, error) {
	var table map[string]string
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, err
	}
	if len(table) == 0 {
		return nil, fmt.Errorf("state table is empty")
	}
	for code := range table {
		if len(code) != 2 {
			return nil, fmt.Errorf("state code %q is not 2 digits", code)
		}
	}
	return New(table), nil
}

// Name returns the state name for a 2-digit code.
func (r *Registry) Name(code string) (string, bool) {
	name, ok := r.names[code]
	return name, ok
}

// Known reports whether code is present in the table.
func (r *Registry) Known(code string) bool {
	_, ok := r.names[code]
	return ok
}

// Len returns the number of entries.
func (r *Registry) Len() int { return len(r.names) }

// Codes returns all codes in ascending order.
func (r *Registry) Codes() []string {
	codes := make([]string, 0, len(r.names))
	for code := range r.names {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
