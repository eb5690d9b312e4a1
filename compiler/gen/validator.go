package gen

import (
	"github.com/syssam/scaffold/compiler/mapper"
	"github.com/syssam/scaffold/compiler/stub"
	"github.com/syssam/scaffold/compiler/writer"
)

func (e *entity) requestPath() string {
	return join(e.cfg.Paths.Requests, e.requestClass()+".php")
}

func (e *entity) genRequest() ([]writer.Effect, error) {
	rules, err := e.fragments(mapper.ArtifactValidation)
	if err != nil {
		return nil, err
	}
	out, err := e.render(stub.Request, map[string]string{
		"namespace": e.cfg.Namespaces.Requests,
		"class":     e.requestClass(),
		"rules":     stub.Lines(rules, indent3),
	})
	if err != nil {
		return nil, err
	}
	return []writer.Effect{e.file(e.requestPath(), out)}, nil
}
