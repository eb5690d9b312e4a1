package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()

	require.NoError(t, c.Validate())
	assert.Equal(t, "app/Models", c.Paths.Models)
	assert.Equal(t, `App\Http\Controllers`, c.Namespaces.Controllers)
	assert.Equal(t, "routes/web.php", c.Routes.File)
	assert.Equal(t, []string{"web"}, c.Routes.Middleware)
	assert.Equal(t, 10, c.Seeder.Count)
	assert.True(t, c.FeatureEnabled(FeatureTimestamps))
	assert.False(t, c.FeatureEnabled(FeatureSoftDeletes))
	assert.True(t, c.FeatureEnabled(FeatureAutoRoutes))
}

func TestParseConfig(t *testing.T) {
	t.Run("overrides defaults", func(t *testing.T) {
		c, err := ParseConfig([]byte(`
paths:
  models: app
routes:
  api_prefix: v2
seeder:
  count: 3
features:
  model/softdeletes: true
naming:
  irregular:
    cactus: cacti
`))
		require.NoError(t, err)
		assert.Equal(t, "app", c.Paths.Models)
		assert.Equal(t, "app/Http/Controllers", c.Paths.Controllers)
		assert.Equal(t, "v2", c.Routes.APIPrefix)
		assert.Equal(t, 3, c.Seeder.Count)
		assert.True(t, c.FeatureEnabled(FeatureSoftDeletes))
		assert.Equal(t, "cacti", c.Inflector().Plural("cactus"))
	})

	t.Run("empty document", func(t *testing.T) {
		c, err := ParseConfig(nil)
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig().Paths, c.Paths)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := ParseConfig([]byte("pathz:\n  models: app\n"))
		require.Error(t, err)
		assert.True(t, IsConfigError(err))
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := ParseConfig([]byte("seeder:\n  count: 0\nfeatures:\n  bogus: true\n"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.Contains(t, err.Error(), "seeder.count")
		assert.Contains(t, err.Error(), "bogus")
	})
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	c, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Paths, c.Paths)

	file := filepath.Join(dir, "scaffold.yaml")
	require.NoError(t, os.WriteFile(file, []byte("workers: 2\n"), 0o644))
	c, err = LoadConfig(file)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Workers)
}

func TestValidateEmptyPath(t *testing.T) {
	c := DefaultConfig()
	c.Paths.Views = " "
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "paths.views")
}

func TestQualify(t *testing.T) {
	assert.Equal(t, `App\Models\Post`, qualify(`App\Models`, "Post"))
	assert.Equal(t, `App\Models\Post`, qualify(`\App\Models\`, "Post"))
	assert.Equal(t, "Post", qualify("", "Post"))
}
