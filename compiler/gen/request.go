package gen

import (
	"strings"

	"github.com/syssam/scaffold/compiler/naming"
)

// Request is the instruction bundle of one batch.
type Request struct {
	// Name is the entity base name, e.g. "Post" or "BlogPost".
	Name string `yaml:"name" json:"name"`
	// Schema is the field definition string.
	Schema string `yaml:"schema" json:"schema"`
	// Kinds are the artifacts to generate.
	Kinds []Kind `yaml:"kinds" json:"kinds"`
	// Options tune the generators.
	Options Options `yaml:",inline" json:"options"`
}

// Options are the typed generator options. Every option defaults to its
// zero value.
type Options struct {
	// Force overwrites existing files.
	Force bool `yaml:"force" json:"force,omitempty"`
	// API selects the API controller and API routes, and makes feature
	// tests exercise the JSON endpoints.
	API bool `yaml:"api" json:"api,omitempty"`
	// ModelName is the model the artifacts bind to. Defaults to Name.
	ModelName string `yaml:"model" json:"model,omitempty"`
	// Collection also emits a resource collection.
	Collection bool `yaml:"collection" json:"collection,omitempty"`
	// Unit selects the isolated unit test shape over the HTTP feature test.
	Unit bool `yaml:"unit" json:"unit,omitempty"`
	// NoRoutes prevents a controller from registering routes.
	NoRoutes bool `yaml:"no_routes" json:"no_routes,omitempty"`
}

// validate normalizes the request and checks it can be served.
func (r *Request) validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Options.ModelName = strings.TrimSpace(r.Options.ModelName)
	if r.Name == "" {
		return NewRequestError("", "entity name cannot be empty", nil)
	}
	if naming.Studly(r.Name) == "" {
		return NewRequestError(r.Name, "entity name has no letters or digits", nil)
	}
	if len(sortKinds(r.Kinds)) == 0 {
		return NewRequestError(r.Name, "no artifact kinds requested", nil)
	}
	return nil
}

func (r *Request) has(k Kind) bool {
	for _, v := range r.Kinds {
		if v == k {
			return true
		}
	}
	return false
}
