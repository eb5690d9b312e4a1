// Package mapper maps field descriptors to per-artifact code fragments:
// validation rules, migration column expressions, model casts, factory
// expressions, form controls and serialization entries.
//
// Every mapping is a pure function of the field and the Mapper's context.
// Name heuristics (see Heuristics) are consulted before the type-based
// fallback of each artifact.
package mapper

import (
	"fmt"

	"github.com/syssam/scaffold/compiler/naming"
	"github.com/syssam/scaffold/schema/field"
)

// Artifact selects the fragment produced by Map.
type Artifact int

// Fragment artifacts.
const (
	ArtifactValidation Artifact = iota + 1
	ArtifactColumn
	ArtifactCast
	ArtifactFake
	ArtifactForm
	ArtifactLivewireForm
	ArtifactDisplay
	ArtifactSerialization
)

// Mapper maps fields of one entity.
type Mapper struct {
	// Entity is the naming bundle of the entity owning the fields.
	Entity naming.Names
	// ModelNamespace qualifies related model classes, e.g. App\Models.
	ModelNamespace string
	// Inflector resolves related entities of foreign keys.
	Inflector *naming.Inflector
}

// New returns a Mapper for the given entity.
func New(entity naming.Names, modelNamespace string, in *naming.Inflector) *Mapper {
	if in == nil {
		in = naming.Default()
	}
	return &Mapper{Entity: entity, ModelNamespace: modelNamespace, Inflector: in}
}

// Map returns the fragment of f for the given artifact.
func (m *Mapper) Map(f *field.Descriptor, a Artifact) (string, error) {
	switch a {
	case ArtifactValidation:
		return m.RuleEntry(f), nil
	case ArtifactColumn:
		return m.Column(f), nil
	case ArtifactCast:
		cast, ok := Cast(f)
		if !ok {
			return "", nil
		}
		return fmt.Sprintf("'%s' => '%s',", f.Name, cast), nil
	case ArtifactFake:
		return fmt.Sprintf("'%s' => %s,", f.Name, m.Fake(f)), nil
	case ArtifactForm:
		return m.FormField(f, false), nil
	case ArtifactLivewireForm:
		return m.LivewireField(f), nil
	case ArtifactDisplay:
		return m.DisplayField(f), nil
	case ArtifactSerialization:
		return SerializationEntry(f.Name), nil
	default:
		return "", fmt.Errorf("scaffold: unknown artifact %d", a)
	}
}

// RelatedEntity returns the studly name of the entity referenced by f.
func (m *Mapper) RelatedEntity(f *field.Descriptor) string {
	return m.Inflector.ForeignEntity(f.Name)
}

// RelatedNames returns the naming bundle of the entity referenced by f.
func (m *Mapper) RelatedNames(f *field.Descriptor) naming.Names {
	return m.Inflector.Derive(m.RelatedEntity(f))
}
