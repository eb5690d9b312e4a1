package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/scaffold/compiler/naming"
	"github.com/syssam/scaffold/schema/field"
)

func postMapper() *Mapper {
	return New(naming.Derive("Post"), `App\Models`, nil)
}

func one(t *testing.T, schema string) *field.Descriptor {
	t.Helper()
	fields, err := field.Parse(schema)
	require.NoError(t, err)
	require.Len(t, fields, 1)
	return fields[0]
}

func TestPurposeOf(t *testing.T) {
	tests := []struct {
		name string
		want Purpose
	}{
		{"email", PurposeEmail},
		{"user_email", PurposeEmail},
		{"email_address", PurposeEmail},
		{"password", PurposePassword},
		{"profile_photo", PurposeImage},
		{"avatar", PurposeImage},
		{"website_url", PurposeURL},
		{"link", PurposeURL},
		{"phone_number", PurposePhone},
		{"billing_address", PurposeAddress},
		{"title", PurposeTitle},
		{"name", PurposeTitle},
		{"subtitle", PurposeNone},
		{"body", PurposeBody},
		{"price", PurposeNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PurposeOf(tt.name))
		})
	}
	assert.Equal(t, "email", PurposeEmail.String())
}

func TestRules(t *testing.T) {
	m := postMapper()
	tests := []struct {
		schema string
		want   []string
	}{
		{"title:string", []string{"required", "string", "max:255"}},
		{"content:text", []string{"required", "string"}},
		{"views:integer:nullable", []string{"nullable", "integer"}},
		{"price:decimal", []string{"required", "numeric"}},
		{"active:boolean", []string{"required", "boolean"}},
		{"published_at:date", []string{"required", "date"}},
		{"starts:dateTime", []string{"required", "date"}},
		{"opens:time", []string{"required", "date_format:H:i:s"}},
		{"meta:json", []string{"required", "json"}},
		{"location:point", []string{"required"}},
		{"contact:email", []string{"required", "email"}},
		{"work_email:email:nullable", []string{"nullable", "email"}},
		{"site:url", []string{"required", "url"}},
		{"user_email:string", []string{"required", "string", "max:255", "email"}},
		{"password", []string{"required", "string", "max:255", "min:8"}},
		{"homepage_url", []string{"required", "string", "max:255", "url"}},
		{"slug:string:unique", []string{"required", "string", "max:255", "unique:posts,slug"}},
		{"user_id:foreignId", []string{"required", "exists:users,id"}},
		{"category_id:foreignId:nullable", []string{"nullable", "exists:categories,id"}},
	}
	for _, tt := range tests {
		t.Run(tt.schema, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Rules(one(t, tt.schema)))
		})
	}

	assert.Equal(t, "'title' => ['required', 'string', 'max:255'],", m.RuleEntry(one(t, "title")))
}

func TestColumn(t *testing.T) {
	m := postMapper()
	tests := []struct {
		schema string
		want   string
	}{
		{"title", "$table->string('title');"},
		{"content:text", "$table->text('content');"},
		{"price:decimal", "$table->decimal('price', 8, 2);"},
		{"location:point", "$table->string('location');"},
		{"published_at:date:nullable", "$table->date('published_at')->nullable();"},
		{"email:string:unique:index", "$table->string('email')->unique()->index();"},
		{"views:integer:default:0", "$table->integer('views')->default(0);"},
		{"active:boolean:default:true", "$table->boolean('active')->default(true);"},
		{"status:string:default:draft:comment:It's state", `$table->string('status')->default('draft')->comment('It\'s state');`},
		{"status:string:bogus", "$table->string('status');"},
		{"user_id:foreignId", "$table->foreignId('user_id')->constrained('users')->cascadeOnDelete();"},
		{"category_id", "$table->foreignId('category_id')->constrained('categories')->cascadeOnDelete();"},
		{"owner_id:uuid:nullable", "$table->foreignUuid('owner_id')->nullable()->constrained('owners')->cascadeOnDelete();"},
	}
	for _, tt := range tests {
		t.Run(tt.schema, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Column(one(t, tt.schema)))
		})
	}
}

func TestCast(t *testing.T) {
	tests := []struct {
		schema string
		want   string
		ok     bool
	}{
		{"views:bigInteger", "integer", true},
		{"price:double", "float", true},
		{"active:boolean", "boolean", true},
		{"born:date", "date", true},
		{"seen:timestamp", "datetime", true},
		{"meta:jsonb", "array", true},
		{"title", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.schema, func(t *testing.T) {
			got, ok := Cast(one(t, tt.schema))
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFake(t *testing.T) {
	m := postMapper()
	tests := []struct {
		schema string
		want   string
	}{
		{"user_id:foreignId", `\App\Models\User::factory()`},
		{"title", "$this->faker->sentence()"},
		{"email", "$this->faker->unique()->safeEmail()"},
		{"contact_email:text", "$this->faker->unique()->safeEmail()"},
		{"password", "bcrypt('password')"},
		{"cover_image", "$this->faker->imageUrl()"},
		{"website_url", "$this->faker->url()"},
		{"phone", "$this->faker->phoneNumber()"},
		{"address:text", "$this->faker->address()"},
		{"body:text", "$this->faker->paragraph()"},
		{"slug", "$this->faker->word()"},
		{"summary:longText", "$this->faker->paragraph()"},
		{"views:integer", "$this->faker->numberBetween(1, 1000)"},
		{"price:decimal", "$this->faker->randomFloat(2, 0, 1000)"},
		{"active:boolean", "$this->faker->boolean()"},
		{"born:date", "$this->faker->date()"},
		{"meta:json", "[]"},
		{"location:point", "$this->faker->word()"},
	}
	for _, tt := range tests {
		t.Run(tt.schema, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Fake(one(t, tt.schema)))
		})
	}

	bare := New(naming.Derive("Post"), "", nil)
	assert.Equal(t, `\User::factory()`, bare.Fake(one(t, "user_id")))
}

func TestControl(t *testing.T) {
	m := postMapper()
	tests := []struct {
		schema string
		want   Control
	}{
		{"title", Control{Widget: WidgetInput, InputType: "text"}},
		{"content:text", Control{Widget: WidgetTextarea}},
		{"active:boolean", Control{Widget: WidgetCheckbox, InputType: "checkbox"}},
		{"published_at:date", Control{Widget: WidgetInput, InputType: "date"}},
		{"starts_at:dateTime", Control{Widget: WidgetInput, InputType: "datetime-local"}},
		{"views:integer", Control{Widget: WidgetInput, InputType: "number"}},
		{"category_id:foreignId", Control{Widget: WidgetSelect, Options: "categories"}},
		{"contact_email:text", Control{Widget: WidgetInput, InputType: "email"}},
		{"password", Control{Widget: WidgetInput, InputType: "password"}},
		{"phone", Control{Widget: WidgetInput, InputType: "tel"}},
	}
	for _, tt := range tests {
		t.Run(tt.schema, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Control(one(t, tt.schema)))
		})
	}
}

func TestFormField(t *testing.T) {
	m := postMapper()

	create := m.FormField(one(t, "title"), false)
	assert.Contains(t, create, `<label class="block text-gray-700 text-sm font-bold mb-2" for="title">Title</label>`)
	assert.Contains(t, create, `type="text" name="title" value="{{ old('title') }}"`)
	assert.Contains(t, create, "@error('title')")

	edit := m.FormField(one(t, "title"), true)
	assert.Contains(t, edit, `value="{{ old('title', $post->title) }}"`)

	sel := m.FormField(one(t, "user_id:foreignId"), false)
	assert.Contains(t, sel, `<select`)
	assert.Contains(t, sel, `@foreach ($users as $option)`)
	assert.Contains(t, sel, `Select User`)

	pw := m.FormField(one(t, "password"), true)
	assert.Contains(t, pw, `type="password"`)
	assert.NotContains(t, pw, `value=`)

	box := m.FormField(one(t, "active:boolean"), true)
	assert.Contains(t, box, `@checked(old('active', $post->active))`)

	area := m.FormField(one(t, "content:text"), false)
	assert.Contains(t, area, `<textarea`)
	assert.Contains(t, area, `{{ old('content') }}</textarea>`)
}

func TestLivewireField(t *testing.T) {
	m := postMapper()
	assert.Contains(t, m.LivewireField(one(t, "title")), `wire:model="title"`)
	assert.Contains(t, m.LivewireField(one(t, "content:text")), `<textarea class="form-control" id="content" wire:model="content"`)
	assert.Contains(t, m.LivewireField(one(t, "active:boolean")), `form-check-input`)
	assert.Contains(t, m.LivewireField(one(t, "user_id")), `@foreach ($users as $option)`)
}

func TestDisplay(t *testing.T) {
	m := postMapper()
	assert.Contains(t, m.DisplayField(one(t, "published_at:date")), `<h5 class="font-bold">Published At</h5>`)
	assert.Contains(t, m.DisplayField(one(t, "published_at:date")), `{{ $post->published_at }}`)
	assert.Equal(t, "$post->active ? 'Yes' : 'No'", m.DisplayValue(one(t, "active:boolean")))
}

func TestModelFragments(t *testing.T) {
	m := postMapper()
	fields := field.MustParse("id:integer, title:string, content:text, published_at:date, user_id:foreignId, created_at:timestamp")

	assert.Equal(t, []string{"title", "content", "published_at", "user_id"}, Fillable(fields))
	assert.Equal(t, []Relation{{Method: "user", Entity: "User", Column: "user_id"}}, m.Relations(fields))
	assert.Equal(t,
		[]string{"id", "title", "content", "published_at", "user_id", "created_at", "updated_at"},
		SerializationNames(fields),
	)
	assert.Equal(t, "'title' => $this->title,", SerializationEntry("title"))
	assert.Equal(t, []string{"title", "published_at", "user_id"}, field.Names(ListColumns(fields)))
}

func TestMap(t *testing.T) {
	m := postMapper()
	f := one(t, "published_at:date:nullable")

	got, err := m.Map(f, ArtifactValidation)
	require.NoError(t, err)
	assert.Equal(t, "'published_at' => ['nullable', 'date'],", got)

	got, err = m.Map(f, ArtifactColumn)
	require.NoError(t, err)
	assert.Equal(t, "$table->date('published_at')->nullable();", got)

	got, err = m.Map(f, ArtifactCast)
	require.NoError(t, err)
	assert.Equal(t, "'published_at' => 'date',", got)

	got, err = m.Map(one(t, "title"), ArtifactCast)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = m.Map(f, ArtifactFake)
	require.NoError(t, err)
	assert.Equal(t, "'published_at' => $this->faker->date(),", got)

	got, err = m.Map(f, ArtifactSerialization)
	require.NoError(t, err)
	assert.Equal(t, "'published_at' => $this->published_at,", got)

	for _, a := range []Artifact{ArtifactForm, ArtifactLivewireForm, ArtifactDisplay} {
		got, err = m.Map(f, a)
		require.NoError(t, err)
		assert.Contains(t, got, "published_at")
	}

	_, err = m.Map(f, Artifact(0))
	assert.Error(t, err)
}
