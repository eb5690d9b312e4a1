// Package writer applies file effects to a project tree: creating files
// under an overwrite policy, merging into existing aggregate files and
// deleting generated files.
//
// A failing effect never aborts its siblings. Every effect produces one
// Result that says what happened to its target.
package writer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors reported in results.
var (
	// ErrWriteConflict indicates that a target exists and overwriting was not requested.
	ErrWriteConflict = errors.New("scaffold: write conflict")
	// ErrMergeTargetMissing indicates that the aggregate file of a merge does not exist.
	ErrMergeTargetMissing = errors.New("scaffold: merge target missing")
)

// PathError records an error and the operation and path that caused it.
type PathError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface.
func (e *PathError) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *PathError) Unwrap() error { return e.Err }

// Policy decides what happens when a file target already exists.
type Policy int

const (
	// FailIfExists reports a conflict and leaves the file untouched.
	FailIfExists Policy = iota
	// Overwrite replaces the file content.
	Overwrite
	// KeepExisting leaves the file untouched without reporting a conflict.
	KeepExisting
)

// Effect is one intended change to the project tree.
type Effect interface {
	// Target returns the path the effect applies to.
	Target() string
	apply(w *Writer) Result
}

// File creates or replaces a file.
type File struct {
	Path    string
	Content string
	Policy  Policy
}

// Target implements Effect.
func (f File) Target() string { return f.Path }

// Merge patches an existing aggregate file. Patch receives the current
// content, read right before patching, and reports whether it changed it.
type Merge struct {
	Path string
	// Marker names the registration for reporting.
	Marker string
	Patch  func(src string) (string, bool, error)
	// Remove marks a patch that takes a registration out. Its outcomes are
	// Deleted and NotFound, and a missing file is not an error.
	Remove bool
}

// Target implements Effect.
func (m Merge) Target() string { return m.Path }

// Delete removes a file, or a directory tree when Dir is set.
type Delete struct {
	Path string
	Dir  bool
}

// Target implements Effect.
func (d Delete) Target() string { return d.Path }

// Writer applies effects relative to a root directory.
type Writer struct {
	root   string
	dryRun bool
}

// Option configures a Writer.
type Option func(*Writer)

// WithDryRun makes the writer report outcomes without touching the tree.
func WithDryRun(dry bool) Option {
	return func(w *Writer) { w.dryRun = dry }
}

// New returns a Writer rooted at root.
func New(root string, opts ...Option) *Writer {
	w := &Writer{root: root}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Root returns the root directory of the writer.
func (w *Writer) Root() string { return w.root }

// Abs resolves path against the writer root.
func (w *Writer) Abs(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(w.root, path)
}

// Rel returns path relative to the writer root when possible.
func (w *Writer) Rel(path string) string {
	if rel, err := filepath.Rel(w.root, path); err == nil && !strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(rel)
	}
	return path
}

// Exists reports whether path exists under the root.
func (w *Writer) Exists(path string) bool {
	_, err := os.Stat(w.Abs(path))
	return err == nil
}

// Read returns the content of path under the root.
func (w *Writer) Read(path string) (string, error) {
	b, err := os.ReadFile(w.Abs(path))
	return string(b), err
}

// Apply applies one effect.
func (w *Writer) Apply(e Effect) Result {
	return e.apply(w)
}

// ApplyAll applies effects in order. A failing effect does not stop the
// ones after it.
func (w *Writer) ApplyAll(effects []Effect) []Result {
	results := make([]Result, 0, len(effects))
	for _, e := range effects {
		results = append(results, w.Apply(e))
	}
	return results
}

func (f File) apply(w *Writer) Result {
	abs := w.Abs(f.Path)
	_, err := os.Stat(abs)
	exists := err == nil
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return failed(f.Path, "stat", err)
	}
	status := Written
	if exists {
		switch f.Policy {
		case KeepExisting:
			return Result{Path: f.Path, Status: Kept}
		case Overwrite:
			status = Overwritten
		default:
			return Result{Path: f.Path, Status: Conflict, Err: &PathError{Op: "write", Path: f.Path, Err: ErrWriteConflict}}
		}
	}
	if w.dryRun {
		return Result{Path: f.Path, Status: status, DryRun: true}
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return failed(f.Path, "create directory", err)
	}
	if err := os.WriteFile(abs, []byte(f.Content), 0o644); err != nil {
		return failed(f.Path, "write", err)
	}
	return Result{Path: f.Path, Status: status}
}

func (m Merge) apply(w *Writer) Result {
	abs := w.Abs(m.Path)
	// Read immediately before patching; never reuse content from an earlier check.
	b, err := os.ReadFile(abs)
	switch {
	case errors.Is(err, fs.ErrNotExist) && m.Remove:
		return Result{Path: m.Path, Status: NotFound, Detail: m.Marker}
	case errors.Is(err, fs.ErrNotExist):
		return Result{Path: m.Path, Status: Skipped, Detail: m.Marker, Err: &PathError{Op: "merge", Path: m.Path, Err: ErrMergeTargetMissing}}
	case err != nil:
		return failed(m.Path, "read", err)
	}
	done, unchanged := Merged, AlreadyPresent
	if m.Remove {
		done, unchanged = Deleted, NotFound
	}
	out, changed, err := m.Patch(string(b))
	if err != nil {
		return Result{Path: m.Path, Status: Failed, Detail: m.Marker, Err: &PathError{Op: "merge", Path: m.Path, Err: err}}
	}
	if !changed {
		return Result{Path: m.Path, Status: unchanged, Detail: m.Marker}
	}
	if w.dryRun {
		return Result{Path: m.Path, Status: done, Detail: m.Marker, DryRun: true}
	}
	if err := os.WriteFile(abs, []byte(out), 0o644); err != nil {
		return failed(m.Path, "write", err)
	}
	return Result{Path: m.Path, Status: done, Detail: m.Marker}
}

func (d Delete) apply(w *Writer) Result {
	abs := w.Abs(d.Path)
	info, err := os.Stat(abs)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return Result{Path: d.Path, Status: NotFound}
	case err != nil:
		return failed(d.Path, "stat", err)
	case info.IsDir() && !d.Dir:
		return failed(d.Path, "delete", fmt.Errorf("%s is a directory", d.Path))
	}
	if w.dryRun {
		return Result{Path: d.Path, Status: Deleted, DryRun: true}
	}
	if d.Dir {
		err = os.RemoveAll(abs)
	} else {
		err = os.Remove(abs)
	}
	if err != nil {
		return failed(d.Path, "delete", err)
	}
	return Result{Path: d.Path, Status: Deleted}
}

func failed(path, op string, err error) Result {
	return Result{Path: path, Status: Failed, Err: &PathError{Op: op, Path: path, Err: err}}
}
