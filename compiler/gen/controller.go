package gen

import (
	"github.com/syssam/scaffold/compiler/stub"
	"github.com/syssam/scaffold/compiler/writer"
)

func (e *entity) controllerPath() string {
	return join(e.cfg.Paths.Controllers, e.controllerClass()+".php")
}

// genController renders the browser controller, or the API controller
// returning resources in API mode.
func (e *entity) genController() ([]writer.Effect, error) {
	vars := map[string]string{
		"namespace":           e.cfg.Namespaces.Controllers,
		"modelNamespace":      qualify(e.cfg.Namespaces.Models, e.modelClass()),
		"requestNamespace":    qualify(e.cfg.Namespaces.Requests, e.requestClass()),
		"class":               e.controllerClass(),
		"model":               e.modelClass(),
		"modelVariable":       e.model.Camel,
		"modelVariablePlural": e.model.CamelPlural,
		"modelLabel":          e.model.Label,
		"request":             e.requestClass(),
		"viewPath":            e.viewDir(),
		"routeName":           e.names.Route,
	}
	name := stub.Controller
	if e.req.Options.API {
		name = stub.APIController
		vars["resourceNamespace"] = qualify(e.cfg.Namespaces.Resources, e.resourceClass())
		vars["resource"] = e.resourceClass()
	}
	out, err := e.render(name, vars)
	if err != nil {
		return nil, err
	}
	return []writer.Effect{e.file(e.controllerPath(), out)}, nil
}
