package gen

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/syssam/scaffold/compiler/mapper"
	"github.com/syssam/scaffold/compiler/stub"
	"github.com/syssam/scaffold/compiler/writer"
)

// migrationLayout is the timestamp prefix of migration file names.
const migrationLayout = "2006_01_02_150405"

func (e *entity) genMigration() ([]writer.Effect, error) {
	table := e.model.Table
	columns, err := e.fragments(mapper.ArtifactColumn)
	if err != nil {
		return nil, err
	}
	if e.cfg.FeatureEnabled(FeatureTimestamps) {
		columns = append(columns, "$table->timestamps();")
	}
	if e.cfg.FeatureEnabled(FeatureSoftDeletes) {
		columns = append(columns, "$table->softDeletes();")
	}
	out, err := e.render(stub.Migration, map[string]string{
		"table":   table,
		"columns": stub.Lines(columns, indent3),
	})
	if err != nil {
		return nil, err
	}
	existing, err := findMigrations(e.fs.Abs(e.cfg.Paths.Migrations), table)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		// Replace the first migration of the table in place rather than
		// adding a second one with a new timestamp.
		return []writer.Effect{e.file(join(e.cfg.Paths.Migrations, existing[0]), out)}, nil
	}
	name := fmt.Sprintf("%s_create_%s_table.php", e.now.Format(migrationLayout), table)
	return []writer.Effect{e.file(join(e.cfg.Paths.Migrations, name), out)}, nil
}

// findMigrations returns the sorted names of the migrations in dir that
// create table, matched by file name or by content. A missing directory
// has no migrations.
func findMigrations(dir, table string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan migrations: %w", err)
	}
	suffix := "_create_" + table + "_table.php"
	signatures := []string{
		"Schema::create('" + table + "'",
		`Schema::create("` + table + `"`,
	}
	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".php") {
			continue
		}
		if strings.HasSuffix(name, suffix) {
			names = append(names, name)
			continue
		}
		b, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("scan migrations: %w", err)
		}
		for _, sig := range signatures {
			if strings.Contains(string(b), sig) {
				names = append(names, name)
				break
			}
		}
	}
	slices.Sort(names)
	return names, nil
}
