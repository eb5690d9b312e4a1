package gen

import (
	"strconv"

	"github.com/syssam/scaffold/compiler/editor"
	"github.com/syssam/scaffold/compiler/stub"
	"github.com/syssam/scaffold/compiler/writer"
)

func (e *entity) seederPath() string {
	return join(e.cfg.Paths.Seeders, e.seederClass()+".php")
}

func (e *entity) genSeeder() ([]writer.Effect, error) {
	out, err := e.render(stub.Seeder, map[string]string{
		"namespace":      e.cfg.Namespaces.Seeders,
		"modelNamespace": qualify(e.cfg.Namespaces.Models, e.modelClass()),
		"class":          e.seederClass(),
		"model":          e.modelClass(),
		"count":          strconv.Itoa(e.cfg.Seeder.Count),
	})
	if err != nil {
		return nil, err
	}
	return []writer.Effect{
		e.file(e.seederPath(), out),
		writer.Merge{
			Path:   e.cfg.Seeder.Registry,
			Marker: e.seederClass(),
			Patch:  e.registerSeeder,
		},
	}, nil
}

// seederCall is the registry statement calling the seeder.
func (e *entity) seederCall() string {
	return "$this->call(" + e.seederClass() + "::class);"
}

// seederImport is the registry use statement of the seeder.
func (e *entity) seederImport() string {
	return "use " + qualify(e.cfg.Namespaces.Seeders, e.seederClass()) + ";"
}

// registerSeeder adds the seeder call as the last statement of the registry
// method unless the method already references the seeder class, then
// imports the class.
func (e *entity) registerSeeder(src string) (string, bool, error) {
	out, called, err := editor.EnsureMethodStatement(src, e.cfg.Seeder.Method, e.seederClass()+"::class", e.seederCall())
	if err != nil {
		return src, false, err
	}
	out, imported, err := editor.EnsureImport(out, e.seederImport())
	if err != nil {
		return src, false, err
	}
	return out, called || imported, nil
}

// unregisterSeeder removes the seeder call and import from the registry.
func (e *entity) unregisterSeeder(src string) (string, bool, error) {
	out, called := editor.RemoveMethodStatement(src, e.cfg.Seeder.Method, e.seederCall())
	out, imported := editor.RemoveImport(out, e.seederImport())
	return out, called || imported, nil
}
