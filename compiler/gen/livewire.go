package gen

import (
	"fmt"
	"strings"

	"github.com/syssam/scaffold/compiler/mapper"
	"github.com/syssam/scaffold/compiler/naming"
	"github.com/syssam/scaffold/compiler/stub"
	"github.com/syssam/scaffold/compiler/writer"
	"github.com/syssam/scaffold/schema/field"
)

func (e *entity) livewirePath() string {
	return join(e.cfg.Paths.Livewire, e.livewireClass()+".php")
}

func (e *entity) livewireViewPath() string {
	return join(e.cfg.Paths.LivewireViews, e.names.Kebab+".blade.php")
}

// livewireView returns the dotted view name of the component view.
func (e *entity) livewireView() string {
	dir := strings.TrimPrefix(e.cfg.Paths.LivewireViews, strings.TrimSuffix(e.cfg.Paths.Views, "/")+"/")
	if dir == e.cfg.Paths.LivewireViews {
		dir = "livewire"
	}
	return strings.ReplaceAll(strings.Trim(dir, "/"), "/", ".") + "." + e.names.Kebab
}

// findLayout returns the first existing layout view. It reports false when
// the project has none.
func (e *entity) findLayout() (string, bool) {
	for _, view := range []string{componentLayout, appLayout, guestLayout} {
		if e.fs.Exists(e.viewFile(view)) {
			return view, true
		}
	}
	return appLayout, false
}

func (e *entity) genLivewire() ([]writer.Effect, error) {
	var effects []writer.Effect
	layout, found := e.findLayout()
	if !found {
		f, err := e.layoutFile(layout)
		if err != nil {
			return nil, err
		}
		effects = append(effects, f)
	}
	rules, err := e.fragments(mapper.ArtifactValidation)
	if err != nil {
		return nil, err
	}
	var properties, fill, names, headers, cells []string
	for _, f := range e.declared {
		properties = append(properties, fmt.Sprintf("public $%s = %s;", f.Name, zeroValue(f)))
		fill = append(fill, fmt.Sprintf("$this->%s = $%s->%s;", f.Name, e.model.Camel, f.Name))
		names = append(names, f.Name)
	}
	for _, f := range mapper.ListColumns(e.fields) {
		headers = append(headers, "<th>"+naming.Label(f.Name)+"</th>")
		value := strings.ReplaceAll(e.mapper.DisplayValue(f), "$"+e.model.Camel+"->", "$item->")
		cells = append(cells, "<td>{{ "+value+" }}</td>")
	}
	component, err := e.render(stub.Livewire, map[string]string{
		"namespace":           e.cfg.Namespaces.Livewire,
		"modelNamespace":      qualify(e.cfg.Namespaces.Models, e.modelClass()),
		"class":               e.livewireClass(),
		"model":               e.modelClass(),
		"modelVariable":       e.model.Camel,
		"modelVariablePlural": e.model.CamelPlural,
		"modelLabel":          e.model.Label,
		"properties":          stub.Lines(properties, indent1),
		"rules":               stub.Lines(rules, indent3),
		"fill":                stub.Lines(fill, indent2),
		"resetFields":         quotedNames(names),
		"view":                e.livewireView(),
		"layoutCall":          "->layout('" + layout + "')",
	})
	if err != nil {
		return nil, err
	}
	form, err := e.fragments(mapper.ArtifactLivewireForm)
	if err != nil {
		return nil, err
	}
	view, err := e.render(stub.LivewireView, map[string]string{
		"modelLabel":          e.model.Label,
		"modelLabelPlural":    e.model.LabelPlural,
		"modelVariable":       e.model.Camel,
		"modelVariablePlural": e.model.CamelPlural,
		"fields":              stub.Blocks(form, indent3),
		"headers":             stub.Lines(headers, indent4),
		"cells":               stub.Lines(cells, indent5),
	})
	if err != nil {
		return nil, err
	}
	return append(effects,
		e.file(e.livewirePath(), component),
		e.file(e.livewireViewPath(), view),
	), nil
}

// zeroValue is the initial value of a component property.
func zeroValue(f *field.Descriptor) string {
	switch {
	case f.Nullable() || f.IsForeignKey():
		return "null"
	case f.Family() == field.FamilyBoolean:
		return "false"
	case f.Family() == field.FamilyJSON:
		return "[]"
	default:
		return "''"
	}
}
