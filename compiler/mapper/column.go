package mapper

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/syssam/scaffold/schema/field"
)

// columnTypes are the schema types that map 1:1 to a column method.
var columnTypes = map[string]bool{
	field.TypeString:             true,
	field.TypeChar:               true,
	field.TypeText:               true,
	field.TypeMediumText:         true,
	field.TypeLongText:           true,
	field.TypeInteger:            true,
	field.TypeTinyInteger:        true,
	field.TypeSmallInteger:       true,
	field.TypeMediumInteger:      true,
	field.TypeBigInteger:         true,
	field.TypeUnsignedInteger:    true,
	field.TypeUnsignedBigInteger: true,
	field.TypeFloat:              true,
	field.TypeDouble:             true,
	field.TypeBoolean:            true,
	field.TypeDate:               true,
	field.TypeDateTime:           true,
	field.TypeTimestamp:          true,
	field.TypeTime:               true,
	field.TypeYear:               true,
	field.TypeJSON:               true,
	field.TypeJSONB:              true,
	field.TypeUUID:               true,
	"binary":                     true,
	"ipAddress":                  true,
	"macAddress":                 true,
	"ulid":                       true,
}

// Column returns the migration column statement of f.
//
//	$table->string('title')->nullable();
//	$table->foreignId('user_id')->constrained('users')->cascadeOnDelete();
func (m *Mapper) Column(f *field.Descriptor) string {
	var b strings.Builder
	b.WriteString("$table->")
	switch {
	case f.IsForeignKey() && f.Type == field.TypeUUID:
		fmt.Fprintf(&b, "foreignUuid(%s)", quote(f.Name))
	case f.IsForeignKey():
		fmt.Fprintf(&b, "foreignId(%s)", quote(f.Name))
	case f.Type == field.TypeDecimal:
		fmt.Fprintf(&b, "decimal(%s, 8, 2)", quote(f.Name))
	case columnTypes[f.Type]:
		fmt.Fprintf(&b, "%s(%s)", f.Type, quote(f.Name))
	default:
		fmt.Fprintf(&b, "string(%s)", quote(f.Name))
	}
	for _, mod := range f.Modifiers {
		b.WriteString(qualifier(mod))
	}
	if f.IsForeignKey() {
		fmt.Fprintf(&b, "->constrained(%s)->cascadeOnDelete()", quote(m.RelatedNames(f).Table))
	}
	b.WriteByte(';')
	return b.String()
}

// qualifier returns the column method chained for a modifier. Unknown
// modifiers produce nothing.
func qualifier(mod string) string {
	if key, value, ok := field.SplitModifier(mod); ok {
		switch key {
		case field.ModDefault:
			return "->default(" + literal(value) + ")"
		case field.ModComment:
			return "->comment(" + quote(value) + ")"
		}
		return ""
	}
	switch mod {
	case field.ModNullable, field.ModUnique, field.ModIndex, field.ModUnsigned:
		return "->" + mod + "()"
	}
	return ""
}

var numeric = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

// literal renders a default value: numbers, booleans and null stay bare,
// anything else is quoted.
func literal(v string) string {
	switch strings.ToLower(v) {
	case "true", "false", "null":
		return strings.ToLower(v)
	}
	if numeric.MatchString(v) {
		return v
	}
	return quote(v)
}

// quote renders s as a single-quoted PHP string.
func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}
