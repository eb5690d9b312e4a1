package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/syssam/scaffold/compiler/introspect"
)

func publishStubsCmd(g *globals) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "publish-stubs",
		Short: "Copy the built-in stubs to the custom stub directory",
		Long: `Copy the built-in stubs to the custom stub directory of the configuration
(stubs.custom_path) so they can be edited. Enable stubs.use_custom to make
the generators prefer them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, err := g.engine(cmd)
			if err != nil {
				return err
			}
			report, err := engine.PublishStubs(force)
			if err != nil {
				return err
			}
			return g.finish(cmd, report)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite published stubs")
	return cmd
}

func regenerateViewsCmd(g *globals) *cobra.Command {
	var driver, dsn, table string
	cmd := &cobra.Command{
		Use:   "regenerate-views <model>",
		Short: "Rebuild the view set of a model from its database table",
		Long: fmt.Sprintf(`Read the columns of the model table from a live database and rebuild the
index, create, edit and show views, overwriting the existing ones.

Drivers: %s

Examples:
  scaffold regenerate-views Post --driver sqlite --dsn database/database.sqlite
  scaffold regenerate-views Post --driver mysql --dsn "user:pass@tcp(127.0.0.1:3306)/blog"`,
			strings.Join(introspect.DriverNames(), ", ")),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := g.engine(cmd)
			if err != nil {
				return err
			}
			inspector, err := introspect.Open(driver, dsn)
			if err != nil {
				return err
			}
			defer inspector.Close()
			report, err := engine.RegenerateViews(cmd.Context(), args[0], table, inspector)
			if err != nil {
				return err
			}
			return g.finish(cmd, report)
		},
	}
	cmd.Flags().StringVar(&driver, "driver", "sqlite", "Database driver")
	cmd.Flags().StringVar(&dsn, "dsn", "", "Data source name")
	cmd.Flags().StringVar(&table, "table", "", "Table name (defaults to the model table)")
	_ = cmd.MarkFlagRequired("dsn")
	return cmd
}
