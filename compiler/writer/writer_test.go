package writer

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilePolicies(t *testing.T) {
	tests := []struct {
		name     string
		existing bool
		policy   Policy
		want     Status
		content  string
		err      error
	}{
		{name: "create", policy: FailIfExists, want: Written, content: "new"},
		{name: "conflict", existing: true, policy: FailIfExists, want: Conflict, content: "old", err: ErrWriteConflict},
		{name: "overwrite", existing: true, policy: Overwrite, want: Overwritten, content: "new"},
		{name: "keep", existing: true, policy: KeepExisting, want: Kept, content: "old"},
		{name: "keep missing", policy: KeepExisting, want: Written, content: "new"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			path := filepath.Join("app", "Models", "Post.php")
			if tt.existing {
				require.NoError(t, os.MkdirAll(filepath.Join(root, "app", "Models"), 0o755))
				require.NoError(t, os.WriteFile(filepath.Join(root, path), []byte("old"), 0o644))
			}
			w := New(root)
			res := w.Apply(File{Path: path, Content: "new", Policy: tt.policy})
			assert.Equal(t, tt.want, res.Status)
			if tt.err != nil {
				assert.ErrorIs(t, res.Err, tt.err)
				assert.False(t, res.Status.OK())
			} else {
				assert.NoError(t, res.Err)
				assert.True(t, res.Status.OK())
			}
			got, err := w.Read(path)
			require.NoError(t, err)
			assert.Equal(t, tt.content, got)
		})
	}
}

func TestFileCreatesParents(t *testing.T) {
	root := t.TempDir()
	w := New(root)
	res := w.Apply(File{Path: "resources/views/posts/index.blade.php", Content: "x"})
	require.Equal(t, Written, res.Status)
	info, err := os.Stat(filepath.Join(root, "resources", "views", "posts"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestMerge(t *testing.T) {
	root := t.TempDir()
	w := New(root)
	require.NoError(t, os.WriteFile(filepath.Join(root, "web.php"), []byte("<?php\n"), 0o644))
	appendLine := func(src string) (string, bool, error) {
		if strings.Contains(src, "Route::") {
			return src, false, nil
		}
		return src + "Route::get('/');\n", true, nil
	}
	res := w.Apply(Merge{Path: "web.php", Marker: "home", Patch: appendLine})
	assert.Equal(t, Merged, res.Status)
	assert.Equal(t, "home", res.Detail)

	res = w.Apply(Merge{Path: "web.php", Patch: appendLine})
	assert.Equal(t, AlreadyPresent, res.Status)
	got, err := w.Read("web.php")
	require.NoError(t, err)
	assert.Equal(t, "<?php\nRoute::get('/');\n", got)
}

func TestMergeReadsCurrentContent(t *testing.T) {
	root := t.TempDir()
	w := New(root)
	path := filepath.Join(root, "web.php")
	require.NoError(t, os.WriteFile(path, []byte("a\n"), 0o644))
	suffix := func(s string) func(string) (string, bool, error) {
		return func(src string) (string, bool, error) { return src + s, true, nil }
	}
	effects := []Effect{
		Merge{Path: "web.php", Patch: suffix("b\n")},
		Merge{Path: "web.php", Patch: suffix("c\n")},
	}
	for _, res := range w.ApplyAll(effects) {
		require.Equal(t, Merged, res.Status)
	}
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\nc\n", string(got))
}

func TestMergeFailures(t *testing.T) {
	root := t.TempDir()
	w := New(root)
	res := w.Apply(Merge{Path: "routes/api.php", Patch: func(src string) (string, bool, error) {
		t.Fatal("patch called for a missing file")
		return src, false, nil
	}})
	assert.Equal(t, Skipped, res.Status)
	assert.ErrorIs(t, res.Err, ErrMergeTargetMissing)
	assert.False(t, w.Exists("routes/api.php"))

	require.NoError(t, os.WriteFile(filepath.Join(root, "f.php"), []byte("x"), 0o644))
	boom := errors.New("boom")
	res = w.Apply(Merge{Path: "f.php", Patch: func(string) (string, bool, error) { return "", false, boom }})
	assert.Equal(t, Failed, res.Status)
	assert.ErrorIs(t, res.Err, boom)
	got, _ := w.Read("f.php")
	assert.Equal(t, "x", got)
}

func TestDelete(t *testing.T) {
	root := t.TempDir()
	w := New(root)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "views", "posts"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "views", "posts", "index.blade.php"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "Post.php"), nil, 0o644))

	results := w.ApplyAll([]Effect{
		Delete{Path: "Post.php"},
		Delete{Path: "Missing.php"},
		Delete{Path: "views/posts"},
		Delete{Path: "views/posts", Dir: true},
	})
	require.Len(t, results, 4)
	assert.Equal(t, Deleted, results[0].Status)
	assert.Equal(t, NotFound, results[1].Status)
	assert.Equal(t, Failed, results[2].Status)
	assert.Equal(t, Deleted, results[3].Status)
	assert.False(t, w.Exists("Post.php"))
	assert.False(t, w.Exists("views/posts"))
}

func TestDryRun(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "web.php"), []byte("<?php\n"), 0o644))
	w := New(root, WithDryRun(true))
	results := w.ApplyAll([]Effect{
		File{Path: "Post.php", Content: "x"},
		Merge{Path: "web.php", Patch: func(src string) (string, bool, error) { return src + "y", true, nil }},
		Delete{Path: "web.php"},
	})
	for _, res := range results {
		assert.True(t, res.DryRun)
		assert.True(t, res.Status.OK())
	}
	assert.False(t, w.Exists("Post.php"))
	got, _ := w.Read("web.php")
	assert.Equal(t, "<?php\n", got)
}

func TestResultJSON(t *testing.T) {
	res := Result{Path: "a.php", Status: Conflict, Err: &PathError{Op: "write", Path: "a.php", Err: ErrWriteConflict}}
	b, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{"path":"a.php","status":"conflict","error":"write a.php: scaffold: write conflict"}`, string(b))
	assert.Equal(t, "status(99)", Status(99).String())
}

func TestRel(t *testing.T) {
	w := New("/srv/app")
	assert.Equal(t, "routes/web.php", w.Rel("/srv/app/routes/web.php"))
	assert.Equal(t, "/etc/hosts", w.Rel("/etc/hosts"))
	assert.Equal(t, "/srv/app/routes/web.php", w.Abs("routes/web.php"))
}

func TestMergeRemove(t *testing.T) {
	root := t.TempDir()
	w := New(root)
	drop := func(src string) (string, bool, error) {
		out := strings.ReplaceAll(src, "x\n", "")
		return out, out != src, nil
	}
	res := w.Apply(Merge{Path: "missing.php", Remove: true, Patch: drop})
	assert.Equal(t, NotFound, res.Status)
	assert.NoError(t, res.Err)

	require.NoError(t, os.WriteFile(filepath.Join(root, "f.php"), []byte("a\nx\n"), 0o644))
	res = w.Apply(Merge{Path: "f.php", Remove: true, Patch: drop})
	assert.Equal(t, Deleted, res.Status)
	res = w.Apply(Merge{Path: "f.php", Remove: true, Patch: drop})
	assert.Equal(t, NotFound, res.Status)
	got, _ := w.Read("f.php")
	assert.Equal(t, "a\n", got)
}
