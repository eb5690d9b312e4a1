package gen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest describes several generation batches, one per entity.
//
//	entities:
//	  - name: Post
//	    schema: "title:string, user_id:foreignId"
//	    all: true
//	    api: true
//	  - name: Tag
//	    schema: "name:string:unique"
//	    kinds: [model, migration]
type Manifest struct {
	Entities []ManifestEntry `yaml:"entities"`
}

// ManifestEntry is the request of one entity. All selects DefaultKinds in
// addition to the listed kinds.
type ManifestEntry struct {
	Request `yaml:",inline"`
	All     bool `yaml:"all"`
}

// LoadManifest reads a manifest file.
func LoadManifest(file string) (*Manifest, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return ParseManifest(b)
}

// ParseManifest decodes a manifest. Unknown keys are ignored so manifests
// may carry options of newer versions.
func ParseManifest(b []byte) (*Manifest, error) {
	m := &Manifest{}
	if err := yaml.NewDecoder(bytes.NewReader(b)).Decode(m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return m, nil
}

// Requests returns the requests of the manifest in order.
func (m *Manifest) Requests() []Request {
	reqs := make([]Request, len(m.Entities))
	for i, e := range m.Entities {
		req := e.Request
		if e.All {
			req.Kinds = append(DefaultKinds(), req.Kinds...)
		}
		reqs[i] = req
	}
	return reqs
}

// Apply runs one Generate batch per manifest entity. A request that cannot
// be served does not stop the others; its error is joined into the
// returned error and it has no report.
func (g *Engine) Apply(ctx context.Context, m *Manifest) ([]*Report, error) {
	if len(m.Entities) == 0 {
		return nil, NewRequestError("", "manifest has no entities", nil)
	}
	var (
		reports []*Report
		errs    []error
	)
	for _, req := range m.Requests() {
		if err := ctx.Err(); err != nil {
			return reports, err
		}
		r, err := g.Generate(ctx, req)
		if err != nil {
			if ctx.Err() != nil {
				return reports, err
			}
			errs = append(errs, fmt.Errorf("entity %s: %w", req.Name, err))
			continue
		}
		reports = append(reports, r)
	}
	return reports, errors.Join(errs...)
}
