// Package gen generates Laravel application artifacts from an entity name
// and a field schema.
//
// # Architecture
//
// A batch flows through these stages:
//
//	Request (name, schema, kinds, options)
//	        ↓
//	   field.Parse (aborts the batch before any side effect)
//	        ↓
//	   entity (derived names, field mapper, stub renderer)
//	        ↓
//	   generators, one per Kind, rendered in parallel
//	        ↓
//	   writer effects applied in Kind order
//	        ↓
//	   Report
//
// Rendering never touches the project tree. Effects are applied one after
// the other, so merges into shared files (routes, the seeder registry)
// always re-read the current content.
//
// # Kinds
//
//   - model, migration, factory, seeder
//   - request, resource (and --collection)
//   - controller, routes
//   - views, livewire
//   - test (feature, or unit with Options.Unit)
//
// A controller written by the batch triggers its routes unless
// Options.NoRoutes is set or the routes/auto feature is disabled.
//
// # Error Handling
//
// Per-artifact failures are reported in the Report and never stop the
// batch. Errors returned by the Engine are reserved for batches that cannot
// run:
//
//   - ConfigError: invalid configuration
//   - RequestError: invalid request
//   - field.ParseError: invalid schema
//   - GenerationError: wraps the failure of one kind inside a Report
//
// IsStructural separates the failures that should fail a CLI invocation
// from conflicts and missing merge targets, which are reported only.
//
//	report, err := engine.Generate(ctx, gen.Request{
//	    Name:   "Post",
//	    Schema: "title:string, user_id:foreignId",
//	    Kinds:  gen.DefaultKinds(),
//	})
//	if err != nil {
//	    return err
//	}
//	if report.HasStructuralFailure() {
//	    return report.Err()
//	}
//
// # Configuration
//
// Configuration is loaded from YAML or built with functional options:
//
//	cfg, err := gen.NewConfig(
//	    gen.WithRoot("./blog"),
//	    gen.WithFeatures(gen.FeatureSoftDeletes),
//	    gen.WithLogger(logger),
//	)
//	engine, err := gen.NewEngine(cfg)
package gen
