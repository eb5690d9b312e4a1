package mapper

import (
	"fmt"

	"github.com/syssam/scaffold/compiler/naming"
	"github.com/syssam/scaffold/schema/field"
)

// Cast returns the model cast of f. String-like fields need no cast and
// report false.
func Cast(f *field.Descriptor) (string, bool) {
	switch f.Family() {
	case field.FamilyInteger:
		return "integer", true
	case field.FamilyDecimal:
		return "float", true
	case field.FamilyBoolean:
		return "boolean", true
	case field.FamilyDate:
		return "date", true
	case field.FamilyDateTime:
		return "datetime", true
	case field.FamilyJSON:
		return "array", true
	default:
		return "", false
	}
}

// Relation is a belongs-to relation stub derived from a foreign key.
type Relation struct {
	// Method name on the model, e.g. "user" for user_id.
	Method string
	// Entity is the studly name of the related model.
	Entity string
	// Column is the foreign-key column.
	Column string
}

// Relations returns one belongs-to relation per declared foreign key.
func (m *Mapper) Relations(fields []*field.Descriptor) []Relation {
	var rels []Relation
	for _, f := range field.Declared(fields) {
		if !f.IsForeignKey() {
			continue
		}
		rels = append(rels, Relation{
			Method: naming.Camel(f.RelationName()),
			Entity: m.RelatedEntity(f),
			Column: f.Name,
		})
	}
	return rels
}

// Fillable returns the mass-assignable field names.
func Fillable(fields []*field.Descriptor) []string {
	return field.Names(field.Declared(fields))
}

// SerializationNames returns the keys of the serialized entity: identity
// first, declared fields in schema order, timestamps last.
func SerializationNames(fields []*field.Descriptor) []string {
	names := []string{"id"}
	names = append(names, field.Names(field.Declared(fields))...)
	return append(names, "created_at", "updated_at")
}

// SerializationEntry renders one resource entry.
//
//	'title' => $this->title,
func SerializationEntry(name string) string {
	return fmt.Sprintf("%s => $this->%s,", quote(name), name)
}

// ListColumns returns the declared fields shown in list views. Long text
// fields are left out.
func ListColumns(fields []*field.Descriptor) []*field.Descriptor {
	var out []*field.Descriptor
	for _, f := range field.Declared(fields) {
		if f.Family() != field.FamilyText && PurposeOf(f.Name) != PurposePassword {
			out = append(out, f)
		}
	}
	return out
}
