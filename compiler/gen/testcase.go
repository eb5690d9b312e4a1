package gen

import (
	"github.com/syssam/scaffold/compiler/mapper"
	"github.com/syssam/scaffold/compiler/stub"
	"github.com/syssam/scaffold/compiler/writer"
)

func (e *entity) featureTestPath() string {
	return join(e.cfg.Paths.Tests, "Feature", e.testClass()+".php")
}

func (e *entity) unitTestPath() string {
	return join(e.cfg.Paths.Tests, "Unit", e.testClass()+".php")
}

// testURI is the URI the feature test exercises.
func (e *entity) testURI() string {
	if !e.req.Options.API {
		return "/" + e.names.Route
	}
	uri := "/api"
	if e.cfg.Routes.APIPrefix != "" {
		uri += "/" + e.cfg.Routes.APIPrefix
	}
	return uri + "/" + e.names.Route
}

// genTest renders the HTTP feature test, or the model unit test when the
// unit shape is requested.
func (e *entity) genTest() ([]writer.Effect, error) {
	vars := map[string]string{
		"modelNamespace": qualify(e.cfg.Namespaces.Models, e.modelClass()),
		"class":          e.testClass(),
		"model":          e.modelClass(),
		"modelVariable":  e.model.Camel,
		"modelSnake":     e.model.Snake,
		"tableName":      e.model.Table,
	}
	if e.req.Options.Unit {
		vars["namespace"] = qualify(e.cfg.Namespaces.Tests, "Unit")
		vars["fillable"] = quotedNames(mapper.Fillable(e.fields))
		out, err := e.render(stub.UnitTest, vars)
		if err != nil {
			return nil, err
		}
		return []writer.Effect{e.file(e.unitTestPath(), out)}, nil
	}
	vars["namespace"] = qualify(e.cfg.Namespaces.Tests, "Feature")
	vars["uri"] = e.testURI()
	if e.req.Options.API {
		vars["jsonSuffix"] = "Json"
		vars["storeAssertion"] = "assertCreated()"
		vars["destroyAssertion"] = "assertNoContent()"
	} else {
		vars["jsonSuffix"] = ""
		vars["storeAssertion"] = "assertRedirect()"
		vars["destroyAssertion"] = "assertRedirect()"
	}
	out, err := e.render(stub.FeatureTest, vars)
	if err != nil {
		return nil, err
	}
	return []writer.Effect{e.file(e.featureTestPath(), out)}, nil
}
