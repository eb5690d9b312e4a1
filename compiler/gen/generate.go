package gen

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/syssam/scaffold/compiler/stub"
	"github.com/syssam/scaffold/compiler/writer"
	"github.com/syssam/scaffold/schema/field"
)

// generator renders the effects of one kind, and plans their removal.
type generator struct {
	generate func(*entity) ([]writer.Effect, error)
	rollback func(*entity) ([]writer.Effect, error)
}

var generators = [numKinds]generator{
	KindModel:      {(*entity).genModel, (*entity).dropModel},
	KindMigration:  {(*entity).genMigration, (*entity).dropMigration},
	KindFactory:    {(*entity).genFactory, (*entity).dropFactory},
	KindSeeder:     {(*entity).genSeeder, (*entity).dropSeeder},
	KindRequest:    {(*entity).genRequest, (*entity).dropRequest},
	KindResource:   {(*entity).genResource, (*entity).dropResource},
	KindController: {(*entity).genController, (*entity).dropController},
	KindRoutes:     {(*entity).genRoutes, (*entity).dropRoutes},
	KindViews:      {(*entity).genViews, (*entity).dropViews},
	KindLivewire:   {(*entity).genLivewire, (*entity).dropLivewire},
	KindTest:       {(*entity).genTest, (*entity).dropTest},
}

// Engine runs batches against one project.
//
// Rendering is pure and runs on a worker pool; file effects are applied
// sequentially in kind order afterwards, so merges into shared files such
// as routes and the seeder registry never race.
type Engine struct {
	cfg   *Config
	stubs *stub.Renderer
	fs    *writer.Writer
}

// NewEngine returns an Engine for the validated configuration. A nil
// configuration uses the defaults.
func NewEngine(cfg *Config) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w := writer.New(cfg.Root, writer.WithDryRun(cfg.DryRun))
	var opts []stub.Option
	if cfg.Stubs.UseCustom {
		opts = append(opts, stub.WithCustomDir(w.Abs(cfg.Stubs.CustomPath)))
	}
	return &Engine{cfg: cfg, stubs: stub.New(opts...), fs: w}, nil
}

// Config returns the engine configuration.
func (g *Engine) Config() *Config { return g.cfg }

// Writer returns the file writer of the engine.
func (g *Engine) Writer() *writer.Writer { return g.fs }

// Generate runs one generation batch. The schema is parsed before anything
// is rendered: an invalid schema aborts the batch with no file touched.
// Per-artifact failures are reported in the returned Report and never stop
// the remaining kinds; the error is reserved for requests that cannot be
// served and for cancellation.
func (g *Engine) Generate(ctx context.Context, req Request) (*Report, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	fields, err := field.Parse(req.Schema)
	if err != nil {
		return nil, err
	}
	e := newEntity(g.cfg, req, fields, g.stubs, g.fs)
	kinds, implied := g.plan(req)
	report := g.report(OpGenerate, e)
	log := g.log(report)
	log.Debug("generate", zap.Stringers("kinds", kinds), zap.Int("fields", len(fields)))

	effects, errs, err := g.render(ctx, e, kinds, func(k Kind) func(*entity) ([]writer.Effect, error) {
		return generators[k].generate
	})
	if err != nil {
		return nil, err
	}
	written := false
	for i, k := range kinds {
		if errs[i] != nil {
			report.fail(k, NewGenerationError(k, e.names.Studly, "", errs[i]))
			continue
		}
		if k == KindRoutes && implied && !written {
			report.add(k, writer.Result{
				Path:   e.routeFile(),
				Status: writer.Skipped,
				Detail: "controller not written",
			})
			continue
		}
		results := g.fs.ApplyAll(effects[i])
		if k == KindController {
			written = controllerWritten(results)
		}
		report.add(k, results...)
	}
	g.logReport(log, report)
	return report, nil
}

// plan returns the kinds of the batch in order. A controller implies its
// routes unless the request opts out or automatic routes are disabled.
func (g *Engine) plan(req Request) (kinds []Kind, implied bool) {
	kinds = sortKinds(req.Kinds)
	if req.has(KindController) && !req.has(KindRoutes) &&
		!req.Options.NoRoutes && g.cfg.FeatureEnabled(FeatureAutoRoutes) {
		kinds = sortKinds(append(kinds, KindRoutes))
		implied = true
	}
	return kinds, implied
}

// render runs the generator picked for every kind on the worker pool and
// collects the effects and failures by kind index. Only cancellation is
// returned as an error.
func (g *Engine) render(ctx context.Context, e *entity, kinds []Kind, pick func(Kind) func(*entity) ([]writer.Effect, error)) ([][]writer.Effect, []error, error) {
	effects := make([][]writer.Effect, len(kinds))
	errs := make([]error, len(kinds))
	errg, ctx := errgroup.WithContext(ctx)
	errg.SetLimit(g.cfg.workers())
	for i, k := range kinds {
		errg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			effects[i], errs[i] = pick(k)(e)
			return nil
		})
	}
	if err := errg.Wait(); err != nil {
		return nil, nil, err
	}
	return effects, errs, nil
}

func (g *Engine) report(op Operation, e *entity) *Report {
	r := &Report{Run: uuid.NewString(), Operation: op}
	if e != nil {
		r.Entity = e.names.Studly
	}
	return r
}

func (g *Engine) log(r *Report) *zap.Logger {
	log := g.cfg.logger().With(zap.String("run", r.Run), zap.String("op", string(r.Operation)))
	if r.Entity != "" {
		log = log.With(zap.String("entity", r.Entity))
	}
	if g.cfg.DryRun {
		log = log.With(zap.Bool("dry_run", true))
	}
	return log
}

// logReport logs every item, warning on the ones that did not succeed.
func (g *Engine) logReport(log *zap.Logger, r *Report) {
	for _, it := range r.Items {
		fields := []zap.Field{zap.String("path", it.Path), zap.Stringer("status", it.Status)}
		if it.Kind.Valid() {
			fields = append(fields, zap.Stringer("kind", it.Kind))
		}
		if it.Detail != "" {
			fields = append(fields, zap.String("detail", it.Detail))
		}
		if it.Err != nil {
			fields = append(fields, zap.Error(it.Err))
		}
		if it.Status.OK() {
			log.Debug("artifact", fields...)
		} else {
			log.Warn("artifact", fields...)
		}
	}
	log.Info("batch done", zap.Int("items", len(r.Items)), zap.Bool("ok", r.OK()))
}

// controllerWritten reports whether the controller file was written by the
// batch, either fresh or over an existing file.
func controllerWritten(results []writer.Result) bool {
	for _, res := range results {
		if res.Status == writer.Written || res.Status == writer.Overwritten {
			return true
		}
	}
	return false
}
