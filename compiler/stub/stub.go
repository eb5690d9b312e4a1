// Package stub loads named templates and fills their placeholders.
//
// Templates ("stubs") are looked up first in a custom override directory,
// when one is configured and preferred, and then in the catalog embedded in
// the binary. Placeholders have the form {{ key }}; whitespace inside the
// braces is optional. A placeholder whose key is not in the substitution map
// is left verbatim so a half-filled template is visible in the output.
package stub

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
)

//go:embed stubs/*.stub
var builtin embed.FS

// Ext is the file extension of stub files.
const Ext = ".stub"

// Catalog names.
const (
	Model              = "model"
	Controller         = "controller"
	APIController      = "api-controller"
	Migration          = "migration"
	Factory            = "factory"
	Request            = "request"
	Resource           = "resource"
	ResourceCollection = "resource-collection"
	Seeder             = "seeder"
	FeatureTest        = "feature-test"
	UnitTest           = "unit-test"
	Livewire           = "livewire"
	LivewireView       = "livewire-view"
	ViewIndex          = "view-index"
	ViewCreate         = "view-create"
	ViewEdit           = "view-edit"
	ViewShow           = "view-show"
	ViewLayout         = "view-layout"
)

// Catalog returns the names of all built-in stubs in sorted order.
func Catalog() []string {
	entries, err := fs.ReadDir(builtin, "stubs")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), Ext))
	}
	slices.Sort(names)
	return names
}

// ErrTemplateNotFound indicates that a stub is missing from every source.
var ErrTemplateNotFound = errors.New("scaffold: template not found")

// NotFoundError reports a stub missing from every configured source.
type NotFoundError struct {
	Name     string
	Searched []string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("scaffold: template %q not found (searched: %s)", e.Name, strings.Join(e.Searched, ", "))
}

// Is reports whether the target is ErrTemplateNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrTemplateNotFound
}

// Renderer loads stubs and renders them.
type Renderer struct {
	dir    string
	custom bool
	fsys   fs.FS
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithCustomDir makes the renderer prefer stubs found in dir.
func WithCustomDir(dir string) Option {
	return func(r *Renderer) {
		r.dir = dir
		r.custom = dir != ""
	}
}

// WithBuiltin replaces the built-in catalog. A nil fsys disables it.
func WithBuiltin(fsys fs.FS) Option {
	return func(r *Renderer) {
		r.fsys = fsys
	}
}

// New returns a Renderer backed by the embedded catalog.
func New(opts ...Option) *Renderer {
	sub, _ := fs.Sub(builtin, "stubs")
	r := &Renderer{fsys: sub}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Load returns the text of the named stub.
func (r *Renderer) Load(name string) (string, error) {
	var searched []string
	if r.custom {
		path := filepath.Join(r.dir, name+Ext)
		searched = append(searched, path)
		b, err := os.ReadFile(path)
		switch {
		case err == nil:
			return string(b), nil
		case !errors.Is(err, fs.ErrNotExist):
			return "", fmt.Errorf("read stub %s: %w", path, err)
		}
	}
	if r.fsys != nil {
		searched = append(searched, "builtin:"+name+Ext)
		b, err := fs.ReadFile(r.fsys, name+Ext)
		if err == nil {
			return string(b), nil
		}
	}
	return "", &NotFoundError{Name: name, Searched: searched}
}

// Render loads the named stub and substitutes its placeholders.
func (r *Renderer) Render(name string, vars map[string]string) (string, error) {
	text, err := r.Load(name)
	if err != nil {
		return "", err
	}
	return Substitute(text, vars), nil
}

// Builtin returns the text of a built-in stub.
func Builtin(name string) (string, error) {
	b, err := builtin.ReadFile("stubs/" + name + Ext)
	if err != nil {
		return "", &NotFoundError{Name: name, Searched: []string{"builtin:" + name + Ext}}
	}
	return string(b), nil
}

var placeholder = regexp.MustCompile(`\{\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*\}\}`)

// Substitute replaces every {{ key }} placeholder with vars[key] in a single
// pass. Substituted values are not scanned again. Unknown keys are kept.
func Substitute(text string, vars map[string]string) string {
	return placeholder.ReplaceAllStringFunc(text, func(m string) string {
		key := placeholder.FindStringSubmatch(m)[1]
		if v, ok := vars[key]; ok {
			return v
		}
		return m
	})
}

// Placeholders returns the distinct placeholder keys of text in order of
// first appearance.
func Placeholders(text string) []string {
	var keys []string
	for _, m := range placeholder.FindAllStringSubmatch(text, -1) {
		if !slices.Contains(keys, m[1]) {
			keys = append(keys, m[1])
		}
	}
	return keys
}
