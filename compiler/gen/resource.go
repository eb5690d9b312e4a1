package gen

import (
	"github.com/syssam/scaffold/compiler/mapper"
	"github.com/syssam/scaffold/compiler/stub"
	"github.com/syssam/scaffold/compiler/writer"
)

func (e *entity) resourcePath() string {
	return join(e.cfg.Paths.Resources, e.resourceClass()+".php")
}

func (e *entity) collectionPath() string {
	return join(e.cfg.Paths.Resources, e.collectionClass()+".php")
}

func (e *entity) genResource() ([]writer.Effect, error) {
	names := mapper.SerializationNames(e.fields)
	entries := make([]string, len(names))
	for i, n := range names {
		entries[i] = mapper.SerializationEntry(n)
	}
	out, err := e.render(stub.Resource, map[string]string{
		"namespace":      e.cfg.Namespaces.Resources,
		"modelNamespace": qualify(e.cfg.Namespaces.Models, e.modelClass()),
		"class":          e.resourceClass(),
		"fields":         stub.Lines(entries, indent3),
	})
	if err != nil {
		return nil, err
	}
	effects := []writer.Effect{e.file(e.resourcePath(), out)}
	if !e.req.Options.Collection {
		return effects, nil
	}
	out, err = e.render(stub.ResourceCollection, map[string]string{
		"namespace": e.cfg.Namespaces.Resources,
		"class":     e.collectionClass(),
		"resource":  e.resourceClass(),
	})
	if err != nil {
		return nil, err
	}
	return append(effects, e.file(e.collectionPath(), out)), nil
}
