// Package fixtures loads the seed data embedded in the binary.
package fixtures

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"github.com/deppfellow/echo-lessons/internal/model"
	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var raw []byte

// CatalogEntry is one row of the paginated item catalog.
type CatalogEntry struct {
	ItemName string `json:"item_name" yaml:"item_name"`
}

// Fixtures is the decoded seed file.
type Fixtures struct {
	Catalog        []CatalogEntry           `yaml:"catalog"`
	Things         map[string]model.Thing   `yaml:"things"`
	ErrorItems     map[string]string        `yaml:"error_items"`
	Vehicles       map[string]model.Vehicle `yaml:"vehicles"`
	ListedItems    []model.ListedItem       `yaml:"listed_items"`
	KeywordWeights map[string]float64       `yaml:"keyword_weights"`
	MediaIDs       map[string]string        `yaml:"media_ids"`
}

var (
	loaded  *Fixtures
	loadErr error
	once    sync.Once
)

// Load decodes the embedded file once. Callers must not mutate the result;
// stores copy what they seed.
func Load() (*Fixtures, error) {
	once.Do(func() {
		loaded, loadErr = Parse(raw)
	})
	return loaded, loadErr
}

// Parse decodes a fixtures document.
func Parse(data []byte) (*Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode fixtures: %w", err)
	}

	for id, thing := range f.Things {
		f.Things[id] = thing.Normalize()
	}

	return &f, nil
}

// MediaIDKeys returns the media ids in a stable order.
func (f *Fixtures) MediaIDKeys() []string {
	keys := make([]string, 0, len(f.MediaIDs))
	for k := range f.MediaIDs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
