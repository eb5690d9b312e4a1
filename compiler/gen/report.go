package gen

import (
	"encoding/json"
	"errors"

	"github.com/syssam/scaffold/compiler/writer"
)

// Operation names the action of a batch.
type Operation string

// Batch operations.
const (
	OpGenerate   Operation = "generate"
	OpRollback   Operation = "rollback"
	OpRegenerate Operation = "regenerate-views"
	OpPublish    Operation = "publish-stubs"
)

// Item is the outcome of one effect of a batch, or the failure of a kind
// that produced no effects. Items of batches that are not about an artifact
// kind, such as publishing stubs, carry NoKind.
type Item struct {
	Kind Kind
	writer.Result
}

// MarshalJSON implements json.Marshaler.
func (i Item) MarshalJSON() ([]byte, error) {
	type item struct {
		Kind   string        `json:"kind,omitempty"`
		Path   string        `json:"path,omitempty"`
		Status writer.Status `json:"status"`
		Detail string        `json:"detail,omitempty"`
		DryRun bool          `json:"dry_run,omitempty"`
		Error  string        `json:"error,omitempty"`
	}
	out := item{Path: i.Path, Status: i.Status, Detail: i.Detail, DryRun: i.DryRun}
	if i.Kind.Valid() {
		out.Kind = i.Kind.String()
	}
	if i.Err != nil {
		out.Error = i.Err.Error()
	}
	return json.Marshal(out)
}

// Report is the per-item outcome of one batch.
type Report struct {
	Run       string    `json:"run"`
	Operation Operation `json:"operation"`
	Entity    string    `json:"entity,omitempty"`
	Items     []Item    `json:"items"`
}

func (r *Report) add(kind Kind, results ...writer.Result) {
	for _, res := range results {
		r.Items = append(r.Items, Item{Kind: kind, Result: res})
	}
}

func (r *Report) fail(kind Kind, err error) {
	r.Items = append(r.Items, Item{Kind: kind, Result: writer.Result{Status: writer.Failed, Err: err}})
}

// Count returns the number of items with the given status.
func (r *Report) Count(s writer.Status) int {
	n := 0
	for _, it := range r.Items {
		if it.Status == s {
			n++
		}
	}
	return n
}

// Kind returns the items of the given kind.
func (r *Report) Kind(k Kind) []Item {
	var items []Item
	for _, it := range r.Items {
		if it.Kind == k {
			items = append(items, it)
		}
	}
	return items
}

// OK reports whether every item succeeded.
func (r *Report) OK() bool {
	for _, it := range r.Items {
		if !it.Status.OK() {
			return false
		}
	}
	return true
}

// HasStructuralFailure reports whether an item failed structurally, see
// IsStructural. Conflicts, missing merge targets and patch failures are
// reported but are not structural.
func (r *Report) HasStructuralFailure() bool {
	for _, it := range r.Items {
		if it.Err != nil && IsStructural(it.Err) {
			return true
		}
	}
	return false
}

// Err joins the errors of every item.
func (r *Report) Err() error {
	var errs []error
	for _, it := range r.Items {
		if it.Err != nil {
			errs = append(errs, it.Err)
		}
	}
	return errors.Join(errs...)
}

// JSON renders the report as indented JSON.
func (r *Report) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
