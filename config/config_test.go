package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv(EnvDatabase, "")
	t.Setenv(EnvIndex, "")
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv(EnvDatabase, "")
	t.Setenv(EnvIndex, "")
	path := filepath.Join(t.TempDir(), "nested", "conduit.yaml")
	cfg := DefaultConfig()
	cfg.Database.Index = "cover"
	cfg.Query.Neighbors = 7
	require.NoError(t, cfg.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	t.Setenv(EnvDatabase, "")
	t.Setenv(EnvIndex, "")
	path := filepath.Join(t.TempDir(), "conduit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("query:\n  neighbors: 10\n"), 0644))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Query.Neighbors)
	assert.Equal(t, "conduit.sqlite", got.Database.Path)
	assert.Equal(t, 5, got.Simulation.Steps)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvDatabase, "/tmp/other.sqlite")
	t.Setenv(EnvIndex, "sql")
	got, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/other.sqlite", got.Database.Path)
	assert.Equal(t, "sql", got.Database.Index)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv(EnvDatabase, "")
	t.Setenv(EnvIndex, "")
	dir := t.TempDir()
	cases := map[string]string{
		"bad index":      "database:\n  index: hnsw\n",
		"zero k":         "query:\n  neighbors: 0\n",
		"too many k":     "query:\n  neighbors: 101\n",
		"zero steps":     "simulation:\n  steps: 0\n",
		"bad level":      "logging:\n  level: loud\n",
		"zero epsilon":   "analysis:\n  epsilon: 0\n",
		"malformed yaml": "query: [\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}

	t.Run("env index", func(t *testing.T) {
		t.Setenv(EnvIndex, "faiss")
		_, err := Load(filepath.Join(dir, "absent.yaml"))
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Equal(t, "Index", verrs[0].Field())
	})
}
