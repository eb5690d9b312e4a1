package field

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Sentinel errors for schema parsing.
var (
	// ErrInvalidFieldDefinition indicates a malformed schema segment.
	ErrInvalidFieldDefinition = errors.New("scaffold: invalid field definition")
	// ErrDuplicateFieldName indicates a field name declared twice.
	ErrDuplicateFieldName = errors.New("scaffold: duplicate field name")
)

// ParseError describes a schema segment that could not be parsed.
type ParseError struct {
	Position   int    // 1-based index of the definition in the schema
	Definition string // raw definition text
	Field      string // field name, if known
	Message    string
	kind       error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString(e.kind.Error())
	fmt.Fprintf(&b, " at position %d", e.Position)
	if e.Field != "" {
		fmt.Fprintf(&b, " (field %q)", e.Field)
	} else if e.Definition != "" {
		fmt.Fprintf(&b, " (%q)", e.Definition)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Is reports whether the target matches the sentinel of this error.
func (e *ParseError) Is(target error) bool {
	return target == e.kind
}

// Parse parses a schema string into an ordered list of descriptors.
// An empty schema yields an empty list. Empty segments are skipped.
func Parse(schema string) ([]*Descriptor, error) {
	fields := make([]*Descriptor, 0)
	seen := make(map[string]struct{})
	pos := 0
	for part := range strings.SplitSeq(schema, ",") {
		def := strings.TrimSpace(part)
		if def == "" {
			continue
		}
		pos++
		d, err := parseDefinition(pos, def)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[d.Name]; ok {
			return nil, &ParseError{
				Position:   pos,
				Definition: def,
				Field:      d.Name,
				Message:    "field is already declared",
				kind:       ErrDuplicateFieldName,
			}
		}
		seen[d.Name] = struct{}{}
		fields = append(fields, d)
	}
	return fields, nil
}

// MustParse is like Parse but panics on error.
func MustParse(schema string) []*Descriptor {
	fields, err := Parse(schema)
	if err != nil {
		panic(err)
	}
	return fields
}

func parseDefinition(pos int, def string) (*Descriptor, error) {
	segs := strings.Split(def, ":")
	for i := range segs {
		segs[i] = strings.TrimSpace(segs[i])
	}
	d := &Descriptor{Name: segs[0], Type: TypeString}
	if d.Name == "" {
		return nil, &ParseError{Position: pos, Definition: def, Message: "field name is empty", kind: ErrInvalidFieldDefinition}
	}
	if strings.ContainsFunc(d.Name, isSpace) {
		return nil, &ParseError{Position: pos, Definition: def, Field: d.Name, Message: "field name contains whitespace", kind: ErrInvalidFieldDefinition}
	}
	if len(segs) > 1 && segs[1] != "" {
		d.Type = segs[1]
	}
	for i := 2; i < len(segs); i++ {
		m := segs[i]
		if m == "" {
			continue
		}
		if slices.Contains(valueKeys, m) {
			if i+1 >= len(segs) {
				return nil, &ParseError{Position: pos, Definition: def, Field: d.Name, Message: fmt.Sprintf("modifier %q requires a value", m), kind: ErrInvalidFieldDefinition}
			}
			i++
			m += ":" + segs[i]
		}
		d.Modifiers = append(d.Modifiers, m)
	}
	return d, nil
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
