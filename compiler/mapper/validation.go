package mapper

import (
	"fmt"
	"slices"
	"strings"

	"github.com/syssam/scaffold/schema/field"
)

// Rules returns the validation rules of f in order: presence, base rule of
// the type, name heuristic rules, uniqueness and the foreign-key existence
// check.
func (m *Mapper) Rules(f *field.Descriptor) []string {
	rules := []string{"required"}
	if f.Nullable() {
		rules[0] = "nullable"
	}
	if f.IsForeignKey() {
		return append(rules, fmt.Sprintf("exists:%s,id", m.RelatedNames(f).Table))
	}
	rules = append(rules, baseRules(f)...)
	var extra string
	switch PurposeOf(f.Name) {
	case PurposeEmail:
		extra = "email"
	case PurposePassword:
		extra = "min:8"
	case PurposeURL:
		extra = "url"
	}
	if extra != "" && !slices.Contains(rules, extra) {
		rules = append(rules, extra)
	}
	if f.Unique() {
		rules = append(rules, fmt.Sprintf("unique:%s,%s", m.Entity.Table, f.Name))
	}
	return rules
}

func baseRules(f *field.Descriptor) []string {
	switch f.Type {
	case field.TypeEmail:
		return []string{"email"}
	case field.TypeURL:
		return []string{"url"}
	}
	switch f.Family() {
	case field.FamilyString:
		return []string{"string", "max:255"}
	case field.FamilyText:
		return []string{"string"}
	case field.FamilyInteger:
		return []string{"integer"}
	case field.FamilyDecimal:
		return []string{"numeric"}
	case field.FamilyBoolean:
		return []string{"boolean"}
	case field.FamilyDate, field.FamilyDateTime:
		return []string{"date"}
	case field.FamilyTime:
		return []string{"date_format:H:i:s"}
	case field.FamilyYear:
		return []string{"date_format:Y"}
	case field.FamilyJSON:
		return []string{"json"}
	case field.FamilyUUID:
		return []string{"uuid"}
	default:
		return nil
	}
}

// RuleEntry renders the rules of f as a PHP array entry.
//
//	'title' => ['required', 'string', 'max:255'],
func (m *Mapper) RuleEntry(f *field.Descriptor) string {
	rules := m.Rules(f)
	quoted := make([]string, len(rules))
	for i, r := range rules {
		quoted[i] = quote(r)
	}
	return fmt.Sprintf("%s => [%s],", quote(f.Name), strings.Join(quoted, ", "))
}
