package attrfmt

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrorTable maps non-negative error codes to descriptive strings for
// the %e conversion. Gaps are valid: a missing or empty entry means the
// code has no description and %e falls back to its numeric message.
// The table is data owned by the embedding environment; nothing in the
// engine ever mutates it.
type ErrorTable map[int]string

// Lookup resolves code to its description. Negative codes are
// equivalent to their absolute value, so -3 and 3 name the same entry.
func (t ErrorTable) Lookup(code int) (string, bool) {
	if code < 0 {
		code = -code
	}
	s, ok := t[code]
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// DefaultErrors returns the table the package-level functions start
// with: the six classic codes of the original console environment.
func DefaultErrors() ErrorTable {
	return ErrorTable{
		1: "unspecified error",
		2: "bad environment",
		3: "invalid parameter",
		4: "out of memory",
		5: "out of environments",
		6: "segmentation fault",
	}
}

// ParseErrorTable decodes a YAML mapping of code to description:
//
//	3: invalid parameter
//	4: out of memory
//
// Codes must be non-negative; Lookup already folds negative inputs onto
// their positive entries.
func ParseErrorTable(data []byte) (ErrorTable, error) {
	var t ErrorTable
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("error table: %w", err)
	}
	for code := range t {
		if code < 0 {
			return nil, fmt.Errorf("error table: %w: code %d", ErrInvalidArgument, code)
		}
	}
	return t, nil
}

// LoadErrorTable reads a YAML error table from path.
func LoadErrorTable(path string) (ErrorTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error table: %w", err)
	}
	return ParseErrorTable(data)
}
