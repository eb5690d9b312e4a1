package gen

import (
	"fmt"
	"slices"
	"strings"
)

// Kind is one category of generated artifact. Kinds are ordered: a batch
// generates and applies them in Kind order, so earlier kinds never depend
// on later ones.
type Kind int

// Artifact kinds in dependency order.
const (
	KindModel Kind = iota
	KindMigration
	KindFactory
	KindSeeder
	KindRequest
	KindResource
	KindController
	KindRoutes
	KindViews
	KindLivewire
	KindTest
	numKinds

	// NoKind marks report items that belong to no artifact kind.
	NoKind Kind = -1
)

var kindNames = [numKinds]string{
	KindModel:      "model",
	KindMigration:  "migration",
	KindFactory:    "factory",
	KindSeeder:     "seeder",
	KindRequest:    "request",
	KindResource:   "resource",
	KindController: "controller",
	KindRoutes:     "routes",
	KindViews:      "views",
	KindLivewire:   "livewire",
	KindTest:       "test",
}

// String returns the kind name.
func (k Kind) String() string {
	if k.Valid() {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool { return k >= 0 && k < numKinds }

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("scaffold: invalid kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	v, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// kindAliases are accepted spellings besides the kind names.
var kindAliases = map[string]Kind{
	"view":       KindViews,
	"route":      KindRoutes,
	"validator":  KindRequest,
	"serializer": KindResource,
	"tests":      KindTest,
}

// ParseKind returns the kind with the given name.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == s {
			return Kind(k), nil
		}
	}
	if k, ok := kindAliases[s]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("scaffold: unknown artifact kind %q", s)
}

// AllKinds returns every kind in dependency order.
func AllKinds() []Kind {
	kinds := make([]Kind, numKinds)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// DefaultKinds returns the kinds generated by --all. Livewire components
// are an alternative to the controller and view set and are only
// generated on request. Routes are left out: the controller implies them,
// subject to --no-routes and the routes/auto feature.
func DefaultKinds() []Kind {
	return slices.DeleteFunc(AllKinds(), func(k Kind) bool { return k == KindLivewire || k == KindRoutes })
}

// sortKinds returns the valid kinds of ks in dependency order without
// duplicates.
func sortKinds(ks []Kind) []Kind {
	out := slices.DeleteFunc(slices.Clone(ks), func(k Kind) bool { return !k.Valid() })
	slices.Sort(out)
	return slices.Compact(out)
}
