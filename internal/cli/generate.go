package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/syssam/scaffold/compiler/gen"
)

// kindFlags selects artifact kinds with one boolean flag per kind.
type kindFlags struct {
	all   bool
	kinds map[gen.Kind]*bool
}

func addKindFlags(fs *pflag.FlagSet, verb string) *kindFlags {
	kf := &kindFlags{kinds: make(map[gen.Kind]*bool)}
	for _, k := range gen.AllKinds() {
		kf.kinds[k] = fs.Bool(k.String(), false, verb+" the "+k.String()+" artifact")
	}
	fs.BoolVar(&kf.all, "all", false, verb+" every artifact except livewire; routes follow the controller")
	return kf
}

// selected returns the chosen kinds in kind order.
func (kf *kindFlags) selected() []gen.Kind {
	var kinds []gen.Kind
	if kf.all {
		kinds = gen.DefaultKinds()
	}
	for _, k := range gen.AllKinds() {
		if *kf.kinds[k] {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// optionFlags are the typed generator options.
type optionFlags struct {
	opts gen.Options
}

func addOptionFlags(fs *pflag.FlagSet) *optionFlags {
	of := &optionFlags{}
	fs.BoolVar(&of.opts.Force, "force", false, "Overwrite existing files")
	fs.BoolVar(&of.opts.API, "api", false, "Generate the API variant of controllers, routes and tests")
	fs.BoolVar(&of.opts.Collection, "collection", false, "Also emit a resource collection")
	fs.BoolVar(&of.opts.Unit, "unit", false, "Generate a model unit test instead of a feature test")
	fs.StringVar(&of.opts.ModelName, "model-name", "", "Model the artifacts bind to (defaults to the entity name)")
	fs.BoolVar(&of.opts.NoRoutes, "no-routes", false, "Do not register routes for a generated controller")
	return of
}

func generateCmd(g *globals) *cobra.Command {
	var schema string
	cmd := &cobra.Command{
		Use:   "generate <name>",
		Short: "Generate artifacts for an entity",
		Long: `Generate the selected artifacts for an entity from a field schema.

The schema is a comma separated list of name:type:modifier segments:

  title:string, body:text:nullable, slug:string:unique, user_id:foreignId

Examples:
  scaffold generate Post --schema "title:string, user_id:foreignId" --all
  scaffold generate Post --schema "title" --model --migration --force
  scaffold generate Post --schema "title" --controller --api`,
		Aliases: []string{"gen", "make"},
		Args:    cobra.ExactArgs(1),
	}
	cmd.Flags().StringVarP(&schema, "schema", "s", "", "Field schema")
	kinds := addKindFlags(cmd.Flags(), "Generate")
	options := addOptionFlags(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		engine, err := g.engine(cmd)
		if err != nil {
			return err
		}
		report, err := engine.Generate(cmd.Context(), gen.Request{
			Name:    args[0],
			Schema:  schema,
			Kinds:   kinds.selected(),
			Options: options.opts,
		})
		if err != nil {
			return err
		}
		return g.finish(cmd, report)
	}
	return cmd
}

func routesCmd(g *globals) *cobra.Command {
	var api bool
	cmd := &cobra.Command{
		Use:   "routes <name>",
		Short: "Register the resource routes of an entity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := g.engine(cmd)
			if err != nil {
				return err
			}
			report, err := engine.Generate(cmd.Context(), gen.Request{
				Name:    args[0],
				Kinds:   []gen.Kind{gen.KindRoutes},
				Options: gen.Options{API: api},
			})
			if err != nil {
				return err
			}
			return g.finish(cmd, report)
		},
	}
	cmd.Flags().BoolVar(&api, "api", false, "Register API resource routes")
	return cmd
}
