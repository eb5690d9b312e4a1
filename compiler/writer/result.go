package writer

import (
	"encoding/json"
	"fmt"
)

// Status is the outcome of one effect.
type Status int

// Effect outcomes.
const (
	Written Status = iota + 1
	Overwritten
	Conflict
	Kept
	Merged
	AlreadyPresent
	Deleted
	NotFound
	Skipped
	Failed
)

var statusNames = map[Status]string{
	Written:        "written",
	Overwritten:    "overwritten",
	Conflict:       "conflict",
	Kept:           "kept",
	Merged:         "merged",
	AlreadyPresent: "already-present",
	Deleted:        "deleted",
	NotFound:       "not-found",
	Skipped:        "skipped",
	Failed:         "failed",
}

// String returns the status name.
func (s Status) String() string {
	if n, ok := statusNames[s]; ok {
		return n
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// OK reports whether the status is a successful outcome. Conflicts,
// skipped merges and failures are not.
func (s Status) OK() bool {
	switch s {
	case Conflict, Skipped, Failed:
		return false
	default:
		return true
	}
}

// Result is the outcome of applying one effect.
type Result struct {
	Path   string
	Status Status
	// Detail names the registration of a merge.
	Detail string
	// DryRun is set when the outcome was computed but not applied.
	DryRun bool
	Err    error
}

// MarshalJSON renders the error as a string.
func (r Result) MarshalJSON() ([]byte, error) {
	type result struct {
		Path   string `json:"path"`
		Status Status `json:"status"`
		Detail string `json:"detail,omitempty"`
		DryRun bool   `json:"dry_run,omitempty"`
		Error  string `json:"error,omitempty"`
	}
	out := result{Path: r.Path, Status: r.Status, Detail: r.Detail, DryRun: r.DryRun}
	if r.Err != nil {
		out.Error = r.Err.Error()
	}
	return json.Marshal(out)
}
