// Package naming derives every naming variant of an entity from its base
// name: singular and plural forms, casing styles, table names and route
// slugs.
//
// All derivations are pure. Deriving the same base name twice with the same
// Inflector yields identical Names.
//
//	names := naming.Default().Derive("BlogPost")
//	names.StudlyPlural // BlogPosts
//	names.Table        // blog_posts
//	names.Route        // blog-posts
//	names.CamelPlural  // blogPosts
package naming

import (
	"maps"
	"slices"
	"strings"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Names is the naming bundle of one entity.
type Names struct {
	Base         string `json:"base"`
	Studly       string `json:"studly"`
	StudlyPlural string `json:"studly_plural"`
	Snake        string `json:"snake"`
	SnakePlural  string `json:"snake_plural"`
	Kebab        string `json:"kebab"`
	KebabPlural  string `json:"kebab_plural"`
	Camel        string `json:"camel"`
	CamelPlural  string `json:"camel_plural"`
	Table        string `json:"table"`
	Route        string `json:"route"`
	Label        string `json:"label"`
	LabelPlural  string `json:"label_plural"`
}

// Inflector pluralizes and singularizes English words using a rule set
// extended with an exception table.
type Inflector struct {
	rules *inflect.Ruleset
}

// Irregular plurals added on top of the default rule set.
var irregulars = map[string]string{
	"person": "people",
	"child":  "children",
	"datum":  "data",
}

// New returns an Inflector whose exception table is extended with the given
// irregular pairs (singular to plural) and uncountable words.
func New(irregular map[string]string, uncountable []string) *Inflector {
	rules := inflect.NewDefaultRuleset()
	// Singular guards for words that already end in "s".
	for _, suffix := range []string{"us", "ss", "is"} {
		rules.AddSingular(suffix, suffix)
	}
	for _, s := range slices.Sorted(maps.Keys(irregulars)) {
		rules.AddIrregular(s, irregulars[s])
	}
	for _, s := range slices.Sorted(maps.Keys(irregular)) {
		rules.AddIrregular(strings.ToLower(s), strings.ToLower(irregular[s]))
	}
	for _, w := range uncountable {
		rules.AddUncountable(strings.ToLower(w))
	}
	return &Inflector{rules: rules}
}

var std = New(nil, nil)

// Default returns the Inflector with the built-in exception table.
func Default() *Inflector { return std }

// Plural returns the plural form of the last word of s, keeping the casing
// and separators of s.
func (in *Inflector) Plural(s string) string {
	return in.lastWord(s, in.rules.Pluralize)
}

// Singular returns the singular form of the last word of s.
func (in *Inflector) Singular(s string) string {
	return in.lastWord(s, in.rules.Singularize)
}

// lastWord applies fn to the lower-cased last word of s and restores the
// original capitalization of its first letter.
func (in *Inflector) lastWord(s string, fn func(string) string) string {
	if s == "" {
		return s
	}
	spans := wordSpans(s)
	if len(spans) == 0 {
		return s
	}
	last := spans[len(spans)-1]
	word := s[last[0]:last[1]]
	out := fn(strings.ToLower(word))
	switch {
	case isUpper(word):
		if len(word) > 1 {
			out = strings.ToUpper(out)
		} else {
			out = upperFirst(out)
		}
	case startsUpper(word):
		out = upperFirst(out)
	}
	return s[:last[0]] + out + s[last[1]:]
}

// Derive computes the naming bundle for base. The base name is taken to be
// singular.
func (in *Inflector) Derive(base string) Names {
	studly := Studly(base)
	plural := in.Plural(studly)
	return Names{
		Base:         base,
		Studly:       studly,
		StudlyPlural: plural,
		Snake:        Snake(studly),
		SnakePlural:  Snake(plural),
		Kebab:        Kebab(studly),
		KebabPlural:  Kebab(plural),
		Camel:        Camel(studly),
		CamelPlural:  Camel(plural),
		Table:        Snake(plural),
		Route:        Kebab(plural),
		Label:        Label(studly),
		LabelPlural:  Label(plural),
	}
}

// ForeignEntity resolves the entity referenced by a foreign-key field name:
// the "_id" suffix is stripped and the rest converted to studly singular.
//
//	ForeignEntity("category_id")   // Category
//	ForeignEntity("blog_posts_id") // BlogPost
func (in *Inflector) ForeignEntity(fieldName string) string {
	return Studly(in.Singular(strings.TrimSuffix(fieldName, "_id")))
}

// ForeignTable returns the table referenced by a foreign-key field name.
func (in *Inflector) ForeignTable(fieldName string) string {
	return in.Derive(in.ForeignEntity(fieldName)).Table
}

// Label returns a human readable title for an identifier.
//
//	Label("published_at") // Published At
func Label(s string) string {
	return cases.Title(language.English).String(strings.Join(Words(s), " "))
}

// Derive computes the naming bundle for base with the default Inflector.
func Derive(base string) Names { return std.Derive(base) }
