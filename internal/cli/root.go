// Package cli implements the scaffold command line.
//
// Every command builds one gen.Config from the config file and the global
// flags, runs one batch through a gen.Engine and prints its report. Only
// structural failures (an invalid schema, a missing template, an invalid
// configuration or request) make the process exit non-zero; conflicts and
// other per-artifact outcomes are reported.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/syssam/scaffold/compiler/gen"
)

// globals are the persistent flags shared by every command.
type globals struct {
	config  string
	root    string
	verbose bool
	noColor bool
	json    bool
	dryRun  bool

	stdin  io.Reader
	logger *zap.Logger
}

// errFailed marks a batch whose report holds a structural failure. The
// report has been printed already.
var errFailed = errors.New("scaffold: batch failed")

// Execute runs the command line and returns the process exit code.
func Execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := NewRootCmd(stdin)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintln(stderr, color.New(color.FgRed).Sprint("error:"), err)
		}
		return 1
	}
	return 0
}

// NewRootCmd returns the root command with every subcommand attached.
func NewRootCmd(stdin io.Reader) *cobra.Command {
	g := &globals{stdin: stdin}
	cmd := &cobra.Command{
		Use:     "scaffold",
		Short:   "Generate Laravel application scaffolding from a field schema",
		Version: VersionString(),
		Long: `scaffold generates the artifacts of a Laravel resource from an entity name
and a compact field schema:

  scaffold generate Post --schema "title:string, content:text, user_id:foreignId" --all

Models, migrations, factories, seeders, form requests, API resources,
controllers, routes, Blade views, Livewire components and tests are rendered
from stubs. Existing files are never replaced without --force, and shared
files (routes, the database seeder) are patched in place.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if g.noColor {
				color.NoColor = true
			}
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if g.logger != nil {
				_ = g.logger.Sync()
			}
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&g.config, "config", "scaffold.yaml", "Configuration file, relative to the project root")
	flags.StringVar(&g.root, "root", ".", "Project root directory")
	flags.BoolVarP(&g.verbose, "verbose", "V", false, "Enable debug logging")
	flags.BoolVar(&g.noColor, "no-color", false, "Disable colored output")
	flags.BoolVar(&g.json, "json", false, "Print reports as JSON")
	flags.BoolVar(&g.dryRun, "dry-run", false, "Report outcomes without touching files")

	cmd.AddCommand(
		generateCmd(g),
		rollbackCmd(g),
		routesCmd(g),
		publishStubsCmd(g),
		regenerateViewsCmd(g),
		applyCmd(g),
		versionCmd(),
	)
	return cmd
}

// engine loads the configuration and returns an engine for it. The config
// file is resolved against the project root unless it is absolute.
func (g *globals) engine(cmd *cobra.Command) (*gen.Engine, error) {
	file := g.config
	if !filepath.IsAbs(file) {
		file = filepath.Join(g.root, file)
	}
	cfg, err := gen.LoadConfig(file)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("root") || cfg.Root == "" || cfg.Root == "." {
		cfg.Root = g.root
	}
	if err := cfg.Apply(
		gen.WithLogger(g.log(cmd.ErrOrStderr())),
		gen.WithDryRun(g.dryRun),
	); err != nil {
		return nil, err
	}
	return gen.NewEngine(cfg)
}

// log returns the logger of the invocation: a console logger at debug level
// with --verbose and a JSON logger at info level otherwise.
func (g *globals) log(w io.Writer) *zap.Logger {
	if g.logger != nil {
		return g.logger
	}
	encCfg := zap.NewProductionEncoderConfig()
	encoder := zapcore.NewJSONEncoder(encCfg)
	level := zapcore.InfoLevel
	if g.verbose {
		encCfg = zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		if g.noColor {
			encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		}
		encoder = zapcore.NewConsoleEncoder(encCfg)
		level = zapcore.DebugLevel
	}
	g.logger = zap.New(zapcore.NewCore(encoder, zapcore.AddSync(w), level))
	return g.logger
}

// finish prints the report and turns a structural failure into errFailed.
func (g *globals) finish(cmd *cobra.Command, r *gen.Report) error {
	if err := printReport(cmd.OutOrStdout(), r, g.json); err != nil {
		return err
	}
	if r.HasStructuralFailure() {
		return errFailed
	}
	return nil
}
