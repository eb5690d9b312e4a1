package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/syssam/scaffold/compiler/gen"
)

// debounce coalesces the burst of events an editor save produces.
const debounce = 200 * time.Millisecond

func applyCmd(g *globals) *cobra.Command {
	var (
		file  string
		watch bool
	)
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Run one generation batch per entity of a manifest",
		Long: `Run one generation batch per entity listed in a manifest file:

  entities:
    - name: Post
      schema: "title:string, user_id:foreignId"
      all: true
    - name: Tag
      schema: "name:string:unique"
      kinds: [model, migration]

With --watch the manifest is re-applied whenever it changes, until
interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, err := g.engine(cmd)
			if err != nil {
				return err
			}
			if !filepath.IsAbs(file) {
				file = filepath.Join(g.root, file)
			}
			run := func() error {
				m, err := gen.LoadManifest(file)
				if err != nil {
					return err
				}
				reports, err := engine.Apply(cmd.Context(), m)
				if perr := printReports(cmd.OutOrStdout(), reports, g.json); perr != nil {
					return perr
				}
				if err != nil {
					return err
				}
				for _, r := range reports {
					if r.HasStructuralFailure() {
						return errFailed
					}
				}
				return nil
			}
			if !watch {
				return run()
			}
			return watchFile(cmd.Context(), g.log(cmd.ErrOrStderr()), file, func() {
				if err := run(); err != nil && !errors.Is(err, errFailed) {
					fmt.Fprintln(cmd.ErrOrStderr(), "error:", err)
				}
			})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "scaffold.entities.yaml", "Manifest file, relative to the project root")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-apply the manifest when it changes")
	return cmd
}

// watchFile calls fn once, then again after every change of file until ctx
// is done. The parent directory is watched so that editors replacing the
// file on save are noticed.
func watchFile(ctx context.Context, log *zap.Logger, file string, fn func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("scaffold: watch: %w", err)
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(file)); err != nil {
		return fmt.Errorf("scaffold: watch %s: %w", file, err)
	}
	fn()

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != filepath.Clean(file) || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			log.Debug("manifest changed", zap.String("file", ev.Name), zap.Stringer("op", ev.Op))
			timer.Reset(debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", zap.Error(err))
		case <-timer.C:
			fn()
		}
	}
}
