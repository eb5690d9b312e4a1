package cli

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func run(t *testing.T, root, stdin string, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	args = append(args, "--root", root, "--no-color")
	code := Execute(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func writeFile(t *testing.T, root, path, content string) {
	t.Helper()
	abs := filepath.Join(root, path)
	require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0o755))
	require.NoError(t, os.WriteFile(abs, []byte(content), 0o644))
}

func TestGenerateCommand(t *testing.T) {
	root := t.TempDir()
	res := run(t, root, "", "generate", "Post", "--schema", "title:string, user_id:foreignId", "--model", "--migration")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Post (generate)")
	assert.Contains(t, res.stdout, "app/Models/Post.php")
	assert.Contains(t, res.stdout, "2 written")
	assert.Contains(t, res.stderr, `"msg":"batch done"`)
	assert.FileExists(t, filepath.Join(root, "app/Models/Post.php"))

	res = run(t, root, "", "generate", "Post", "--schema", "title", "--model")
	assert.Equal(t, 0, res.code, "conflicts are not structural")
	assert.Contains(t, res.stdout, "conflict")
	assert.Contains(t, res.stdout, "1 conflict")
}

func TestGenerateCommandFailures(t *testing.T) {
	root := t.TempDir()
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"duplicate field", []string{"generate", "Post", "--schema", "title, title", "--model"}, "duplicate"},
		{"no kinds", []string{"generate", "Post", "--schema", "title"}, "no artifact kinds"},
		{"missing name", []string{"generate"}, "accepts 1 arg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, root, "", tt.args...)
			assert.Equal(t, 1, res.code)
			assert.Contains(t, res.stderr, tt.want)
		})
	}
	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGenerateCommandJSON(t *testing.T) {
	root := t.TempDir()
	res := run(t, root, "", "generate", "Post", "--schema", "title", "--request", "--json", "--dry-run")
	require.Equal(t, 0, res.code, res.stderr)

	var report struct {
		Operation string `json:"operation"`
		Entity    string `json:"entity"`
		Items     []struct {
			Kind   string `json:"kind"`
			Path   string `json:"path"`
			Status string `json:"status"`
			DryRun bool   `json:"dry_run"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &report))
	assert.Equal(t, "generate", report.Operation)
	require.Len(t, report.Items, 1)
	assert.Equal(t, "request", report.Items[0].Kind)
	assert.Equal(t, "app/Http/Requests/PostRequest.php", report.Items[0].Path)
	assert.True(t, report.Items[0].DryRun)
	assert.NoFileExists(t, filepath.Join(root, "app/Http/Requests/PostRequest.php"))
}

func TestRollbackCommand(t *testing.T) {
	root := t.TempDir()
	require.Equal(t, 0, run(t, root, "", "generate", "Post", "--schema", "title", "--model").code)

	res := run(t, root, "n\n", "rollback", "Post", "--model")
	assert.Equal(t, 0, res.code)
	assert.Contains(t, res.stdout, "app/Models/Post.php")
	assert.Contains(t, res.stdout, "Proceed? [y/N]")
	assert.Contains(t, res.stdout, "Rollback aborted")
	assert.FileExists(t, filepath.Join(root, "app/Models/Post.php"))

	res = run(t, root, "", "rollback", "Post", "--model")
	assert.Contains(t, res.stdout, "Rollback aborted")

	res = run(t, root, "yes\n", "rollback", "Post", "--model", "--factory")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "1 deleted, 1 not-found")
	assert.NoFileExists(t, filepath.Join(root, "app/Models/Post.php"))

	res = run(t, root, "", "rollback", "Post", "--model", "--force")
	assert.Contains(t, res.stdout, "1 not-found")
	assert.NotContains(t, res.stdout, "Proceed?")
}

func TestRoutesCommand(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "routes/api.php", "<?php\n")
	res := run(t, root, "", "routes", "Post", "--api")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "merged")
	b, err := os.ReadFile(filepath.Join(root, "routes/api.php"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "Route::apiResource('posts'")

	res = run(t, root, "", "routes", "Post", "--api")
	assert.Contains(t, res.stdout, "already-present")
}

func TestGenerateAllNoRoutes(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "routes/web.php", "<?php\n")
	res := run(t, root, "", "generate", "Post", "--schema", "title", "--all", "--no-routes")
	require.Equal(t, 0, res.code, res.stderr)
	assert.FileExists(t, filepath.Join(root, "app/Http/Controllers/PostController.php"))
	b, err := os.ReadFile(filepath.Join(root, "routes/web.php"))
	require.NoError(t, err)
	assert.Equal(t, "<?php\n", string(b))
}

func TestPublishStubsCommand(t *testing.T) {
	root := t.TempDir()
	res := run(t, root, "", "publish-stubs")
	require.Equal(t, 0, res.code, res.stderr)
	assert.FileExists(t, filepath.Join(root, "stubs/scaffold/model.stub"))

	res = run(t, root, "", "publish-stubs")
	assert.Equal(t, 0, res.code)
	assert.Contains(t, res.stdout, "conflict")
	assert.Contains(t, run(t, root, "", "publish-stubs", "--force").stdout, "overwritten")
}

func TestRegenerateViewsCommand(t *testing.T) {
	root := t.TempDir()
	dsn := filepath.Join(root, "database.sqlite")
	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE posts (
		id INTEGER PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		body TEXT,
		published BOOLEAN NOT NULL,
		created_at DATETIME
	)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	res := run(t, root, "", "regenerate-views", "Post", "--driver", "sqlite", "--dsn", dsn)
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Post (regenerate-views)")

	b, err := os.ReadFile(filepath.Join(root, "resources/views/posts/index.blade.php"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "Title")
	assert.Contains(t, string(b), "$post->published ? 'Yes' : 'No'")
	assert.NotContains(t, string(b), "Created At")
	b, err = os.ReadFile(filepath.Join(root, "resources/views/posts/show.blade.php"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "<h5 class=\"font-bold\">Body</h5>")

	res = run(t, root, "", "regenerate-views", "Post", "--driver", "oracle", "--dsn", dsn)
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "invalid database driver")
}

func TestApplyCommand(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "scaffold.entities.yaml", `
entities:
  - name: Tag
    schema: name:string:unique
    kinds: [model, migration]
  - name: Category
    schema: name
    kinds: [model]
`)
	res := run(t, root, "", "apply")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Tag (generate)")
	assert.Contains(t, res.stdout, "Category (generate)")
	assert.FileExists(t, filepath.Join(root, "app/Models/Category.php"))

	res = run(t, root, "", "apply", "--json")
	var reports []map[string]any
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &reports))
	assert.Len(t, reports, 2)

	assert.Equal(t, 1, run(t, root, "", "apply", "-f", "missing.yaml").code)
}

func TestConfigFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "scaffold.yaml", "paths:\n  models: src/Models\n")
	res := run(t, root, "", "generate", "Post", "--schema", "title", "--model")
	require.Equal(t, 0, res.code, res.stderr)
	assert.FileExists(t, filepath.Join(root, "src/Models/Post.php"))

	writeFile(t, root, "scaffold.yaml", "modles: src\n")
	res = run(t, root, "", "generate", "Post", "--schema", "title", "--model")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "config error")
}

func TestVersionCommand(t *testing.T) {
	res := run(t, t.TempDir(), "", "version")
	assert.Equal(t, 0, res.code)
	assert.Contains(t, res.stdout, "scaffold dev")
}

func TestPrompt(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"y\n", true},
		{"Yes\n", true},
		{"y", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		assert.Equal(t, tt.want, prompt(strings.NewReader(tt.in), &out, []string{"a.php"}), "%q", tt.in)
		assert.Contains(t, out.String(), "a.php")
	}
	assert.False(t, prompt(nil, &bytes.Buffer{}, nil))
}

func TestWatchFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "scaffold.entities.yaml")
	require.NoError(t, os.WriteFile(file, []byte("entities: []\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	calls := make(chan struct{}, 8)
	done := make(chan error, 1)
	go func() {
		done <- watchFile(ctx, zap.NewNop(), file, func() { calls <- struct{}{} })
	}()

	select {
	case <-calls:
	case <-time.After(5 * time.Second):
		t.Fatal("initial run not called")
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(file, []byte("entities: []\n# changed\n"), 0o644))
	select {
	case <-calls:
	case <-time.After(5 * time.Second):
		t.Fatal("change not noticed")
	}
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}
