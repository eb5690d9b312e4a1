package gen

import (
	"github.com/syssam/scaffold/compiler/mapper"
	"github.com/syssam/scaffold/compiler/stub"
	"github.com/syssam/scaffold/compiler/writer"
)

func (e *entity) factoryPath() string {
	return join(e.cfg.Paths.Factories, e.factoryClass()+".php")
}

func (e *entity) genFactory() ([]writer.Effect, error) {
	fields, err := e.fragments(mapper.ArtifactFake)
	if err != nil {
		return nil, err
	}
	out, err := e.render(stub.Factory, map[string]string{
		"namespace":      e.cfg.Namespaces.Factories,
		"modelNamespace": qualify(e.cfg.Namespaces.Models, e.modelClass()),
		"class":          e.factoryClass(),
		"model":          e.modelClass(),
		"fields":         stub.Lines(fields, indent3),
	})
	if err != nil {
		return nil, err
	}
	return []writer.Effect{e.file(e.factoryPath(), out)}, nil
}
