package field

import (
	"slices"
	"strings"
)

// Well-known type names.
const (
	TypeString             = "string"
	TypeChar               = "char"
	TypeText               = "text"
	TypeMediumText         = "mediumText"
	TypeLongText           = "longText"
	TypeInteger            = "integer"
	TypeTinyInteger        = "tinyInteger"
	TypeSmallInteger       = "smallInteger"
	TypeMediumInteger      = "mediumInteger"
	TypeBigInteger         = "bigInteger"
	TypeUnsignedInteger    = "unsignedInteger"
	TypeUnsignedBigInteger = "unsignedBigInteger"
	TypeDecimal            = "decimal"
	TypeFloat              = "float"
	TypeDouble             = "double"
	TypeBoolean            = "boolean"
	TypeDate               = "date"
	TypeDateTime           = "dateTime"
	TypeTimestamp          = "timestamp"
	TypeTime               = "time"
	TypeYear               = "year"
	TypeJSON               = "json"
	TypeJSONB              = "jsonb"
	TypeForeignID          = "foreignId"
	TypeUUID               = "uuid"
	TypeEmail              = "email"
	TypeURL                = "url"
)

// Well-known modifiers.
const (
	ModNullable = "nullable"
	ModUnique   = "unique"
	ModIndex    = "index"
	ModUnsigned = "unsigned"
	ModDefault  = "default"
	ModComment  = "comment"
)

// valueKeys are modifiers that carry a value in the following segment.
var valueKeys = []string{ModDefault, ModComment}

// Family groups type names that share generated fragments.
type Family int

// Type families.
const (
	FamilyOther Family = iota
	FamilyString
	FamilyText
	FamilyInteger
	FamilyDecimal
	FamilyBoolean
	FamilyDate
	FamilyDateTime
	FamilyTime
	FamilyYear
	FamilyJSON
	FamilyForeign
	FamilyUUID
)

var familyNames = [...]string{
	FamilyOther:    "other",
	FamilyString:   "string",
	FamilyText:     "text",
	FamilyInteger:  "integer",
	FamilyDecimal:  "decimal",
	FamilyBoolean:  "boolean",
	FamilyDate:     "date",
	FamilyDateTime: "dateTime",
	FamilyTime:     "time",
	FamilyYear:     "year",
	FamilyJSON:     "json",
	FamilyForeign:  "foreign",
	FamilyUUID:     "uuid",
}

// String returns the family name.
func (f Family) String() string {
	if f >= 0 && int(f) < len(familyNames) {
		return familyNames[f]
	}
	return familyNames[FamilyOther]
}

// FamilyOf returns the family of the given type name.
func FamilyOf(typ string) Family {
	switch typ {
	case TypeString, TypeChar:
		return FamilyString
	case TypeText, TypeMediumText, TypeLongText:
		return FamilyText
	case TypeInteger, TypeTinyInteger, TypeSmallInteger, TypeMediumInteger,
		TypeBigInteger, TypeUnsignedInteger, TypeUnsignedBigInteger:
		return FamilyInteger
	case TypeDecimal, TypeFloat, TypeDouble:
		return FamilyDecimal
	case TypeBoolean:
		return FamilyBoolean
	case TypeDate:
		return FamilyDate
	case TypeDateTime, TypeTimestamp:
		return FamilyDateTime
	case TypeTime:
		return FamilyTime
	case TypeYear:
		return FamilyYear
	case TypeJSON, TypeJSONB:
		return FamilyJSON
	case TypeForeignID:
		return FamilyForeign
	case TypeUUID:
		return FamilyUUID
	default:
		return FamilyOther
	}
}

// auditNames are the identity and timestamp columns injected by the
// generators themselves.
var auditNames = []string{"id", "created_at", "updated_at", "deleted_at"}

// IsAuditName reports whether name is an identity or audit timestamp column.
func IsAuditName(name string) bool {
	return slices.Contains(auditNames, name)
}

// Descriptor is one parsed schema entry. Descriptors are immutable once
// returned by Parse.
type Descriptor struct {
	// Name of the field, snake_case by convention.
	Name string `json:"name" yaml:"name"`
	// Type of the field. Never empty after parsing.
	Type string `json:"type" yaml:"type"`
	// Modifiers in encounter order. Value modifiers are stored as "key:value".
	Modifiers []string `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
}

// Family returns the type family of the field.
func (d *Descriptor) Family() Family {
	return FamilyOf(d.Type)
}

// IsForeignKey reports whether the field references another entity.
func (d *Descriptor) IsForeignKey() bool {
	return strings.HasSuffix(d.Name, "_id") || d.Type == TypeForeignID
}

// RelationName returns the field name without its "_id" suffix.
func (d *Descriptor) RelationName() string {
	return strings.TrimSuffix(d.Name, "_id")
}

// IsAudit reports whether the field is an identity or audit timestamp.
func (d *Descriptor) IsAudit() bool {
	return IsAuditName(d.Name)
}

// Has reports whether the bare modifier is present.
func (d *Descriptor) Has(mod string) bool {
	return slices.Contains(d.Modifiers, mod)
}

// Nullable reports whether the nullable modifier is present.
func (d *Descriptor) Nullable() bool { return d.Has(ModNullable) }

// Unique reports whether the unique modifier is present.
func (d *Descriptor) Unique() bool { return d.Has(ModUnique) }

// Indexed reports whether the index modifier is present.
func (d *Descriptor) Indexed() bool { return d.Has(ModIndex) }

// Value returns the value of the first key:value modifier with the given key.
func (d *Descriptor) Value(key string) (string, bool) {
	for _, m := range d.Modifiers {
		if k, v, ok := SplitModifier(m); ok && k == key {
			return v, true
		}
	}
	return "", false
}

// Default returns the default value of the field, if any.
func (d *Descriptor) Default() (string, bool) { return d.Value(ModDefault) }

// Comment returns the column comment of the field, if any.
func (d *Descriptor) Comment() (string, bool) { return d.Value(ModComment) }

// String formats the descriptor back into the schema mini-language.
// The type is always written, so "name" formats as "name:string".
func (d *Descriptor) String() string {
	var b strings.Builder
	b.WriteString(d.Name)
	b.WriteByte(':')
	b.WriteString(d.Type)
	for _, m := range d.Modifiers {
		b.WriteByte(':')
		b.WriteString(m)
	}
	return b.String()
}

// SplitModifier splits a value modifier into its key and value.
func SplitModifier(m string) (key, value string, ok bool) {
	key, value, ok = strings.Cut(m, ":")
	if !ok || !slices.Contains(valueKeys, key) {
		return m, "", false
	}
	return key, value, true
}

// Format joins descriptors back into a schema string.
func Format(fields []*Descriptor) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.String()
	}
	return strings.Join(parts, ",")
}

// Names returns the names of the given fields in order.
func Names(fields []*Descriptor) []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}

// Declared returns the fields that are not identity or audit columns.
func Declared(fields []*Descriptor) []*Descriptor {
	out := make([]*Descriptor, 0, len(fields))
	for _, f := range fields {
		if !f.IsAudit() {
			out = append(out, f)
		}
	}
	return out
}
