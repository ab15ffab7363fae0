package lookup

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const noStoreName = "N/A"

var defaultStores = map[string]string{
	"1": "Flagship Downtown",
	"2": "Westfield Mall",
	"3": "Harbour Point",
	"4": "Airport Terminal",
	"5": "Online Store",
}

// StoreRegistry maps a string-encoded store id to its display name.
// It is built once at startup and never mutated afterwards.
type StoreRegistry struct {
	names map[string]string
}

type storesFile struct {
	Stores map[string]string `yaml:"stores"`
}

// NewStoreRegistry copies names so later changes to the caller's map are not observed.
func NewStoreRegistry(names map[string]string) StoreRegistry {
	copied := make(map[string]string, len(names))
	for id, name := range names {
		copied[strings.TrimSpace(id)] = name
	}
	return StoreRegistry{names: copied}
}

func DefaultStoreRegistry() StoreRegistry {
	return NewStoreRegistry(defaultStores)
}

// LoadStoreRegistry merges the YAML file at path over the compiled-in defaults.
// An empty path yields the defaults.
func LoadStoreRegistry(path string) (StoreRegistry, error) {
	if path == "" {
		return DefaultStoreRegistry(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return StoreRegistry{}, fmt.Errorf("failed to read stores file: %w", err)
	}

	var file storesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return StoreRegistry{}, fmt.Errorf("invalid stores file %s: %w", path, err)
	}

	merged := make(map[string]string, len(defaultStores)+len(file.Stores))
	for id, name := range defaultStores {
		merged[id] = name
	}
	for id, name := range file.Stores {
		if _, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64); err != nil {
			return StoreRegistry{}, fmt.Errorf("invalid store id %q in %s: must be an integer", id, path)
		}
		merged[id] = name
	}

	return NewStoreRegistry(merged), nil
}

// Name resolves a store id. Unknown ids become "Store {id}", a nil id becomes "N/A".
func (r StoreRegistry) Name(id *int64) string {
	if id == nil {
		return noStoreName
	}

	key := strconv.FormatInt(*id, 10)
	if name, ok := r.names[key]; ok {
		return name
	}

	return "Store " + key
}

func (r StoreRegistry) Len() int {
	return len(r.names)
}
