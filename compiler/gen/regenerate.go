package gen

import (
	"context"

	"go.uber.org/zap"

	"github.com/syssam/scaffold/compiler/stub"
	"github.com/syssam/scaffold/compiler/writer"
	"github.com/syssam/scaffold/schema/field"
)

// FieldSource returns the declared fields of a table, such as a live
// database read by introspect.Inspector.
type FieldSource interface {
	Fields(ctx context.Context, table string) ([]*field.Descriptor, error)
}

// RegenerateViews rebuilds the view set of the named model from the columns
// of its table, overwriting the existing views. An empty table defaults to
// the model table name.
func (g *Engine) RegenerateViews(ctx context.Context, name, table string, src FieldSource) (*Report, error) {
	req := Request{Name: name, Kinds: []Kind{KindViews}, Options: Options{Force: true}}
	if err := req.validate(); err != nil {
		return nil, err
	}
	if table == "" {
		table = g.cfg.Inflector().Derive(req.Name).Table
	}
	fields, err := src.Fields(ctx, table)
	if err != nil {
		return nil, NewGenerationError(KindViews, req.Name, "read columns of "+table, err)
	}
	e := newEntity(g.cfg, req, fields, g.stubs, g.fs)
	report := g.report(OpRegenerate, e)
	log := g.log(report)
	log.Debug("regenerate views", zap.String("table", table), zap.String("schema", field.Format(fields)))

	effects, err := e.genViews()
	if err != nil {
		report.fail(KindViews, NewGenerationError(KindViews, e.names.Studly, "", err))
	} else {
		report.add(KindViews, g.fs.ApplyAll(effects)...)
	}
	g.logReport(log, report)
	return report, nil
}

// PublishStubs copies the built-in stub catalog into the custom stub
// directory so it can be edited. Existing stubs conflict unless force is
// set.
func (g *Engine) PublishStubs(force bool) (*Report, error) {
	report := g.report(OpPublish, nil)
	policy := writer.FailIfExists
	if force {
		policy = writer.Overwrite
	}
	for _, name := range stub.Catalog() {
		text, err := stub.Builtin(name)
		if err != nil {
			report.fail(NoKind, err)
			continue
		}
		report.add(NoKind, g.fs.Apply(writer.File{
			Path:    join(g.cfg.Stubs.CustomPath, name+stub.Ext),
			Content: text,
			Policy:  policy,
		}))
	}
	g.logReport(g.log(report), report)
	return report, nil
}
