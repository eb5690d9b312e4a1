package gen

import (
	"fmt"
	"slices"
	"strings"

	"github.com/syssam/scaffold/compiler/mapper"
	"github.com/syssam/scaffold/compiler/stub"
	"github.com/syssam/scaffold/compiler/writer"
)

func (e *entity) modelPath() string {
	return join(e.cfg.Paths.Models, e.modelClass()+".php")
}

func (e *entity) genModel() ([]writer.Effect, error) {
	var imports, traits []string
	relations := e.mapper.Relations(e.fields)
	if len(relations) > 0 {
		imports = append(imports, `use Illuminate\Database\Eloquent\Relations\BelongsTo;`)
	}
	if e.cfg.FeatureEnabled(FeatureSoftDeletes) {
		imports = append(imports, `use Illuminate\Database\Eloquent\SoftDeletes;`)
		traits = append(traits, "use SoftDeletes;")
	}
	slices.Sort(imports)
	casts, err := e.fragments(mapper.ArtifactCast)
	if err != nil {
		return nil, err
	}
	fillable := make([]string, 0, len(e.declared))
	for _, name := range mapper.Fillable(e.fields) {
		fillable = append(fillable, "'"+name+"',")
	}
	out, err := e.render(stub.Model, map[string]string{
		"namespace":  e.cfg.Namespaces.Models,
		"imports":    lines(imports),
		"class":      e.modelClass(),
		"traits":     traitLines(traits),
		"table":      e.model.Table,
		"timestamps": fmt.Sprint(e.cfg.FeatureEnabled(FeatureTimestamps)),
		"fillable":   stub.Lines(fillable, indent2),
		"casts":      stub.Lines(casts, indent3),
		"relations":  e.relations(relations),
	})
	if err != nil {
		return nil, err
	}
	return []writer.Effect{e.file(e.modelPath(), out)}, nil
}

// relations renders one belongs-to method per relation. Each method is
// preceded by a blank line so the block can close the class body.
func (e *entity) relations(rels []mapper.Relation) string {
	var b strings.Builder
	for _, r := range rels {
		fmt.Fprintf(&b, `
    /**
     * Get the %s that owns the %s.
     */
    public function %s(): BelongsTo
    {
        return $this->belongsTo(%s::class, '%s');
    }
`, strings.ToLower(e.mapper.Inflector.Derive(r.Entity).Label), strings.ToLower(e.model.Label), r.Method, r.Entity, r.Column)
	}
	return b.String()
}

// traitLines renders trait uses at class body indentation.
func traitLines(traits []string) string {
	if len(traits) == 0 {
		return ""
	}
	return stub.Lines(traits, indent1) + "\n"
}

// lines renders statements one per line, each terminated by a newline.
func lines(stmts []string) string {
	if len(stmts) == 0 {
		return ""
	}
	return strings.Join(stmts, "\n") + "\n"
}
