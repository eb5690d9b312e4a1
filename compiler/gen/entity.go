package gen

import (
	"fmt"
	"strings"
	"time"

	"github.com/syssam/scaffold/compiler/mapper"
	"github.com/syssam/scaffold/compiler/naming"
	"github.com/syssam/scaffold/compiler/stub"
	"github.com/syssam/scaffold/compiler/writer"
	"github.com/syssam/scaffold/schema/field"
)

// entity is the read-only state shared by the generators of one batch.
// Cross-generator data flows through it, never through freshly written
// files.
type entity struct {
	cfg *Config
	req Request
	// names are derived from the requested name and name the artifacts.
	names naming.Names
	// model names the model the artifacts bind to.
	model    naming.Names
	fields   []*field.Descriptor
	declared []*field.Descriptor
	mapper   *mapper.Mapper
	stubs    *stub.Renderer
	fs       *writer.Writer
	now      time.Time
}

func newEntity(cfg *Config, req Request, fields []*field.Descriptor, stubs *stub.Renderer, w *writer.Writer) *entity {
	in := cfg.Inflector()
	model := req.Options.ModelName
	if model == "" {
		model = req.Name
	}
	e := &entity{
		cfg:      cfg,
		req:      req,
		names:    in.Derive(req.Name),
		model:    in.Derive(model),
		fields:   fields,
		declared: field.Declared(fields),
		stubs:    stubs,
		fs:       w,
		now:      cfg.now(),
	}
	e.mapper = mapper.New(e.model, cfg.Namespaces.Models, in)
	return e
}

// Class names.
func (e *entity) modelClass() string      { return e.model.Studly }
func (e *entity) controllerClass() string { return e.names.Studly + "Controller" }
func (e *entity) requestClass() string    { return e.names.Studly + "Request" }
func (e *entity) resourceClass() string   { return e.names.Studly + "Resource" }
func (e *entity) collectionClass() string { return e.names.Studly + "Collection" }
func (e *entity) factoryClass() string    { return e.model.Studly + "Factory" }
func (e *entity) seederClass() string     { return e.model.Studly + "Seeder" }
func (e *entity) testClass() string       { return e.names.Studly + "Test" }
func (e *entity) livewireClass() string   { return e.names.Studly + "Component" }

// policy is the overwrite policy of generated files.
func (e *entity) policy() writer.Policy {
	if e.req.Options.Force {
		return writer.Overwrite
	}
	return writer.FailIfExists
}

// file returns a write effect under the request policy.
func (e *entity) file(path, content string) writer.File {
	return writer.File{Path: path, Content: content, Policy: e.policy()}
}

// render fills the named stub and strips trailing whitespace left by empty
// placeholders.
func (e *entity) render(name string, vars map[string]string) (string, error) {
	out, err := e.stubs.Render(name, vars)
	if err != nil {
		return "", err
	}
	return tidy(out), nil
}

// fragments maps every declared field to its fragment of artifact a.
func (e *entity) fragments(a mapper.Artifact) ([]string, error) {
	return e.fragmentsOf(e.declared, a)
}

func (e *entity) fragmentsOf(fields []*field.Descriptor, a mapper.Artifact) ([]string, error) {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		s, err := e.mapper.Map(f, a)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		if s != "" {
			out = append(out, s)
		}
	}
	return out, nil
}

// quotedNames renders field names as a PHP list body: 'a', 'b'.
func quotedNames(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "'" + n + "'"
	}
	return strings.Join(quoted, ", ")
}

// tidy removes trailing spaces and tabs from every line.
func tidy(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t")
	}
	return strings.Join(lines, "\n")
}

// indent levels used by the stubs.
const (
	indent1 = "    "
	indent2 = indent1 + indent1
	indent3 = indent2 + indent1
	indent4 = indent3 + indent1
	indent5 = indent4 + indent1
)
