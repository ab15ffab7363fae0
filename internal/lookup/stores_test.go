package lookup_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vasiliy-maslov/retail-ops/internal/lookup"
)

func TestStoreRegistry_Name(t *testing.T) {
	registry := lookup.NewStoreRegistry(map[string]string{"7": "Lakeside"})

	assert.Equal(t, "Lakeside", registry.Name(ptr(int64(7))))
	assert.Equal(t, "Store 999", registry.Name(ptr(int64(999))))
	assert.Equal(t, "N/A", registry.Name(nil))
}

func TestStoreRegistry_IsImmutable(t *testing.T) {
	names := map[string]string{"1": "Original"}
	registry := lookup.NewStoreRegistry(names)

	names["1"] = "Changed"
	names["2"] = "Added"

	assert.Equal(t, "Original", registry.Name(ptr(int64(1))))
	assert.Equal(t, "Store 2", registry.Name(ptr(int64(2))))
	assert.Equal(t, 1, registry.Len())
}

func TestLoadStoreRegistry(t *testing.T) {
	t.Run("empty_path_uses_defaults", func(t *testing.T) {
		registry, err := lookup.LoadStoreRegistry("")
		require.NoError(t, err)
		assert.Equal(t, lookup.DefaultStoreRegistry().Len(), registry.Len())
		assert.Equal(t, "Flagship Downtown", registry.Name(ptr(int64(1))))
	})

	t.Run("file_overrides_and_extends_defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "stores.yaml")
		content := "stores:\n  \"1\": Renamed Flagship\n  \"42\": Pop-up Kiosk\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		registry, err := lookup.LoadStoreRegistry(path)
		require.NoError(t, err)
		assert.Equal(t, "Renamed Flagship", registry.Name(ptr(int64(1))))
		assert.Equal(t, "Pop-up Kiosk", registry.Name(ptr(int64(42))))
		assert.Equal(t, "Westfield Mall", registry.Name(ptr(int64(2))))
	})

	t.Run("non_integer_id", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "stores.yaml")
		require.NoError(t, os.WriteFile(path, []byte("stores:\n  abc: Broken\n"), 0o600))

		_, err := lookup.LoadStoreRegistry(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be an integer")
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := lookup.LoadStoreRegistry(filepath.Join(t.TempDir(), "nope.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid_yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "stores.yaml")
		require.NoError(t, os.WriteFile(path, []byte("stores: [unterminated"), 0o600))

		_, err := lookup.LoadStoreRegistry(path)
		require.Error(t, err)
	})
}
