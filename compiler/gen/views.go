package gen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/syssam/scaffold/compiler/mapper"
	"github.com/syssam/scaffold/compiler/naming"
	"github.com/syssam/scaffold/compiler/stub"
	"github.com/syssam/scaffold/compiler/writer"
)

// Layout view names, in lookup order.
const (
	componentLayout = "components.layouts.app"
	appLayout       = "layouts.app"
	guestLayout     = "layouts.guest"
)

// viewDir is the directory of the entity view set below the views path,
// also used as the dotted view prefix.
func (e *entity) viewDir() string { return e.names.KebabPlural }

func (e *entity) viewsPath() string {
	return join(e.cfg.Paths.Views, e.viewDir())
}

// viewFile returns the file of a dotted view name.
func (e *entity) viewFile(view string) string {
	return join(e.cfg.Paths.Views, strings.ReplaceAll(view, ".", "/")+".blade.php")
}

// viewSet lists the templates of the view set with their file names.
var viewSet = []struct{ stub, file string }{
	{stub.ViewIndex, "index.blade.php"},
	{stub.ViewCreate, "create.blade.php"},
	{stub.ViewEdit, "edit.blade.php"},
	{stub.ViewShow, "show.blade.php"},
}

func (e *entity) genViews() ([]writer.Effect, error) {
	var effects []writer.Effect
	if e.cfg.FeatureEnabled(FeatureViewLayout) {
		layout, err := e.layoutFile(appLayout)
		if err != nil {
			return nil, err
		}
		effects = append(effects, layout)
	}
	vars, fields, err := e.viewVars(appLayout)
	if err != nil {
		return nil, err
	}
	for _, v := range viewSet {
		vars["fields"] = fields[v.stub]
		out, err := e.render(v.stub, vars)
		if err != nil {
			return nil, err
		}
		effects = append(effects, e.file(join(e.viewsPath(), v.file), out))
	}
	return effects, nil
}

// layoutFile returns the effect creating the named layout unless it exists.
func (e *entity) layoutFile(view string) (writer.File, error) {
	out, err := e.render(stub.ViewLayout, nil)
	if err != nil {
		return writer.File{}, err
	}
	return writer.File{Path: e.viewFile(view), Content: out, Policy: writer.KeepExisting}, nil
}

// viewVars returns the substitutions shared by the view set, and the form
// and detail fragments keyed by the stub using them.
func (e *entity) viewVars(layout string) (vars, fields map[string]string, err error) {
	columns := mapper.ListColumns(e.fields)
	headers := make([]string, len(columns))
	cells := make([]string, len(columns))
	for i, f := range columns {
		headers[i] = fmt.Sprintf(`<th class="py-2 px-4 border-b text-left">%s</th>`, naming.Label(f.Name))
		cells[i] = fmt.Sprintf(`<td class="py-2 px-4 border-b">{{ %s }}</td>`, e.mapper.DisplayValue(f))
	}
	create, err := e.fragments(mapper.ArtifactForm)
	if err != nil {
		return nil, nil, err
	}
	edit := make([]string, len(e.declared))
	for i, f := range e.declared {
		edit[i] = e.mapper.FormField(f, true)
	}
	show, err := e.fragments(mapper.ArtifactDisplay)
	if err != nil {
		return nil, nil, err
	}
	vars = map[string]string{
		"layout":              layout,
		"modelLabel":          e.model.Label,
		"modelLabelPlural":    e.model.LabelPlural,
		"modelVariable":       e.model.Camel,
		"modelVariablePlural": e.model.CamelPlural,
		"routeName":           e.names.Route,
		"headers":             stub.Lines(headers, indent3),
		"cells":               stub.Lines(cells, indent4),
		"colspan":             strconv.Itoa(len(columns) + 2),
	}
	fields = map[string]string{
		stub.ViewCreate: stub.Blocks(create, indent1),
		stub.ViewEdit:   stub.Blocks(edit, indent1),
		stub.ViewShow:   stub.Lines(show, indent1),
	}
	return vars, fields, nil
}
