package field_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/scaffold/schema/field"
)

func TestFamilyOf(t *testing.T) {
	tests := []struct {
		typ  string
		want field.Family
	}{
		{"string", field.FamilyString},
		{"char", field.FamilyString},
		{"text", field.FamilyText},
		{"longText", field.FamilyText},
		{"bigInteger", field.FamilyInteger},
		{"unsignedInteger", field.FamilyInteger},
		{"decimal", field.FamilyDecimal},
		{"double", field.FamilyDecimal},
		{"boolean", field.FamilyBoolean},
		{"date", field.FamilyDate},
		{"timestamp", field.FamilyDateTime},
		{"time", field.FamilyTime},
		{"year", field.FamilyYear},
		{"jsonb", field.FamilyJSON},
		{"foreignId", field.FamilyForeign},
		{"uuid", field.FamilyUUID},
		{"geometry", field.FamilyOther},
	}
	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			assert.Equal(t, tt.want, field.FamilyOf(tt.typ))
		})
	}
	assert.Equal(t, "other", field.Family(99).String())
	assert.Equal(t, "dateTime", field.FamilyDateTime.String())
}

func TestDescriptor(t *testing.T) {
	fields := field.MustParse("user_id, owner:foreignId, status:string:nullable:default:draft:comment:State, id:integer")
	require.Len(t, fields, 4)

	userID := fields[0]
	assert.True(t, userID.IsForeignKey())
	assert.Equal(t, "user", userID.RelationName())
	assert.Equal(t, field.FamilyString, userID.Family())

	owner := fields[1]
	assert.True(t, owner.IsForeignKey())
	assert.Equal(t, "owner", owner.RelationName())

	status := fields[2]
	assert.False(t, status.IsForeignKey())
	assert.True(t, status.Nullable())
	assert.False(t, status.Unique())
	assert.False(t, status.Indexed())
	def, ok := status.Default()
	assert.True(t, ok)
	assert.Equal(t, "draft", def)
	comment, ok := status.Comment()
	assert.True(t, ok)
	assert.Equal(t, "State", comment)
	_, ok = owner.Default()
	assert.False(t, ok)

	assert.True(t, fields[3].IsAudit())
	assert.False(t, status.IsAudit())
	assert.Equal(t, []string{"user_id", "owner", "status"}, field.Names(field.Declared(fields)))
}

func TestSplitModifier(t *testing.T) {
	k, v, ok := field.SplitModifier("default:0")
	assert.True(t, ok)
	assert.Equal(t, "default", k)
	assert.Equal(t, "0", v)

	k, _, ok = field.SplitModifier("nullable")
	assert.False(t, ok)
	assert.Equal(t, "nullable", k)

	_, _, ok = field.SplitModifier("max:10")
	assert.False(t, ok, "only known value keys split")
}

func TestIsAuditName(t *testing.T) {
	for _, name := range []string{"id", "created_at", "updated_at", "deleted_at"} {
		assert.True(t, field.IsAuditName(name), name)
	}
	assert.False(t, field.IsAuditName("identity"))
}
