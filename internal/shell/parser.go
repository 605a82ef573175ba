package shell

import "strings"

type Parser interface {
	Parse(line string) []string
}

// FieldsParser splits a line on runs of whitespace. Quoting and escaping are
// not recognised, so names with embedded spaces cannot be expressed.
type FieldsParser struct{}

func (FieldsParser) Parse(line string) []string {
	return strings.Fields(line)
}
