package gen

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/syssam/scaffold/compiler/writer"
)

// Confirm is asked before a rollback removes anything. It receives the
// targets of the planned effects and reports whether to proceed.
type Confirm func(targets []string) bool

// Rollback removes the artifacts a generation batch for req would have
// produced, undoing the route and seeder registrations. The schema of req
// is not used. Unless req.Options.Force is set, confirm must approve the
// planned targets; a missing or declining confirmation returns
// ErrRollbackAborted with nothing touched. Artifacts already absent are
// reported as not found.
func (g *Engine) Rollback(ctx context.Context, req Request, confirm Confirm) (*Report, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	e := newEntity(g.cfg, req, nil, g.stubs, g.fs)
	kinds, _ := g.plan(req)
	report := g.report(OpRollback, e)
	log := g.log(report)

	effects, errs, err := g.render(ctx, e, kinds, func(k Kind) func(*entity) ([]writer.Effect, error) {
		return generators[k].rollback
	})
	if err != nil {
		return nil, err
	}
	var targets []string
	for _, es := range effects {
		for _, eff := range es {
			targets = append(targets, eff.Target())
		}
	}
	if !req.Options.Force && (confirm == nil || !confirm(targets)) {
		log.Info("rollback declined", zap.Strings("targets", targets))
		return nil, ErrRollbackAborted
	}
	for i, k := range kinds {
		if errs[i] != nil {
			report.fail(k, NewGenerationError(k, e.names.Studly, "plan rollback", errs[i]))
			continue
		}
		report.add(k, g.fs.ApplyAll(effects[i])...)
	}
	g.logReport(log, report)
	return report, nil
}

// IsRollbackAborted reports whether err is a declined rollback.
func IsRollbackAborted(err error) bool {
	return errors.Is(err, ErrRollbackAborted)
}

func (e *entity) dropModel() ([]writer.Effect, error) {
	return []writer.Effect{writer.Delete{Path: e.modelPath()}}, nil
}

// dropMigration removes every migration creating the table. With none
// present the pattern is reported as not found.
func (e *entity) dropMigration() ([]writer.Effect, error) {
	names, err := findMigrations(e.fs.Abs(e.cfg.Paths.Migrations), e.model.Table)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		pattern := join(e.cfg.Paths.Migrations, "*_create_"+e.model.Table+"_table.php")
		return []writer.Effect{writer.Delete{Path: pattern}}, nil
	}
	effects := make([]writer.Effect, len(names))
	for i, n := range names {
		effects[i] = writer.Delete{Path: join(e.cfg.Paths.Migrations, n)}
	}
	return effects, nil
}

func (e *entity) dropFactory() ([]writer.Effect, error) {
	return []writer.Effect{writer.Delete{Path: e.factoryPath()}}, nil
}

func (e *entity) dropSeeder() ([]writer.Effect, error) {
	return []writer.Effect{
		writer.Delete{Path: e.seederPath()},
		writer.Merge{
			Path:   e.cfg.Seeder.Registry,
			Marker: e.seederClass(),
			Patch:  e.unregisterSeeder,
			Remove: true,
		},
	}, nil
}

func (e *entity) dropRequest() ([]writer.Effect, error) {
	return []writer.Effect{writer.Delete{Path: e.requestPath()}}, nil
}

// dropResource removes the resource, and its collection when one exists or
// was requested.
func (e *entity) dropResource() ([]writer.Effect, error) {
	effects := []writer.Effect{writer.Delete{Path: e.resourcePath()}}
	if e.req.Options.Collection || e.fs.Exists(e.collectionPath()) {
		effects = append(effects, writer.Delete{Path: e.collectionPath()})
	}
	return effects, nil
}

func (e *entity) dropController() ([]writer.Effect, error) {
	return []writer.Effect{writer.Delete{Path: e.controllerPath()}}, nil
}

func (e *entity) dropRoutes() ([]writer.Effect, error) {
	return []writer.Effect{writer.Merge{
		Path:   e.routeFile(),
		Marker: e.names.Route,
		Patch:  e.unregisterRoutes,
		Remove: true,
	}}, nil
}

// dropViews removes the view set directory. Shared layouts stay.
func (e *entity) dropViews() ([]writer.Effect, error) {
	return []writer.Effect{writer.Delete{Path: e.viewsPath(), Dir: true}}, nil
}

func (e *entity) dropLivewire() ([]writer.Effect, error) {
	return []writer.Effect{
		writer.Delete{Path: e.livewirePath()},
		writer.Delete{Path: e.livewireViewPath()},
	}, nil
}

func (e *entity) dropTest() ([]writer.Effect, error) {
	if e.req.Options.Unit {
		return []writer.Effect{writer.Delete{Path: e.unitTestPath()}}, nil
	}
	return []writer.Effect{writer.Delete{Path: e.featureTestPath()}}, nil
}
