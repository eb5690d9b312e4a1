package mapper

import (
	"strings"

	"github.com/syssam/scaffold/schema/field"
)

// purposeFakes are checked after foreign keys and before type fallbacks.
var purposeFakes = map[Purpose]string{
	PurposeEmail:    "$this->faker->unique()->safeEmail()",
	PurposePassword: "bcrypt('password')",
	PurposeImage:    "$this->faker->imageUrl()",
	PurposeURL:      "$this->faker->url()",
	PurposePhone:    "$this->faker->phoneNumber()",
	PurposeAddress:  "$this->faker->address()",
	PurposeTitle:    "$this->faker->sentence()",
	PurposeBody:     "$this->faker->paragraph()",
}

var familyFakes = map[field.Family]string{
	field.FamilyString:   "$this->faker->word()",
	field.FamilyText:     "$this->faker->paragraph()",
	field.FamilyInteger:  "$this->faker->numberBetween(1, 1000)",
	field.FamilyDecimal:  "$this->faker->randomFloat(2, 0, 1000)",
	field.FamilyBoolean:  "$this->faker->boolean()",
	field.FamilyDate:     "$this->faker->date()",
	field.FamilyDateTime: "$this->faker->dateTime()",
	field.FamilyTime:     "$this->faker->time()",
	field.FamilyYear:     "$this->faker->year()",
	field.FamilyJSON:     "[]",
	field.FamilyUUID:     "$this->faker->uuid()",
}

// Fake returns the factory expression of f.
//
//	user_id  -> \App\Models\User::factory()
//	email    -> $this->faker->unique()->safeEmail()
//	price    -> $this->faker->randomFloat(2, 0, 1000)
func (m *Mapper) Fake(f *field.Descriptor) string {
	if f.IsForeignKey() {
		return m.QualifiedModel(m.RelatedEntity(f)) + "::factory()"
	}
	if expr, ok := purposeFakes[PurposeOf(f.Name)]; ok {
		return expr
	}
	if expr, ok := familyFakes[f.Family()]; ok {
		return expr
	}
	return familyFakes[field.FamilyString]
}

// QualifiedModel returns the fully qualified class of a model.
func (m *Mapper) QualifiedModel(entity string) string {
	ns := strings.Trim(m.ModelNamespace, `\`)
	if ns == "" {
		return `\` + entity
	}
	return `\` + ns + `\` + entity
}
