package service

import (
	"math/rand/v2"

	"github.com/deppfellow/echo-lessons/internal/errs"
	"github.com/deppfellow/echo-lessons/internal/fixtures"
	"github.com/deppfellow/echo-lessons/internal/model"
)

// CatalogService serves the read-only fixture data several lessons share.
type CatalogService struct {
	seed *fixtures.Fixtures
}

func NewCatalogService(seed *fixtures.Fixtures) *CatalogService {
	return &CatalogService{seed: seed}
}

// Page returns catalog[skip:skip+limit], clamped to the catalog bounds.
// Negative values count as zero.
func (s *CatalogService) Page(skip, limit int) []fixtures.CatalogEntry {
	n := len(s.seed.Catalog)
	if skip < 0 {
		skip = 0
	}
	if limit < 0 {
		limit = 0
	}
	if skip > n {
		skip = n
	}

	end := n
	if limit < n-skip {
		end = skip + limit
	}

	out := make([]fixtures.CatalogEntry, end-skip)
	copy(out, s.seed.Catalog[skip:end])
	return out
}

// Vehicle looks up a vehicle by id.
func (s *CatalogService) Vehicle(id string) (model.Vehicle, error) {
	v, ok := s.seed.Vehicles[id]
	if !ok {
		return model.Vehicle{}, errs.NewNotFoundError("Vehicle not found", true, nil)
	}
	return v.Normalize(), nil
}

// ListedItems returns a copy of the listed items.
func (s *CatalogService) ListedItems() []model.ListedItem {
	return append([]model.ListedItem(nil), s.seed.ListedItems...)
}

// KeywordWeights returns a copy of the keyword weights.
func (s *CatalogService) KeywordWeights() map[string]float64 {
	out := make(map[string]float64, len(s.seed.KeywordWeights))
	for k, v := range s.seed.KeywordWeights {
		out[k] = v
	}
	return out
}

// ErrorItem returns the fixture value for id, or 404 "Information not available".
func (s *CatalogService) ErrorItem(id string) (string, error) {
	v, ok := s.seed.ErrorItems[id]
	if !ok {
		return "", errs.NewNotFoundError("Information not available", true, nil)
	}
	return v, nil
}

// Media looks up a media title. ok is false for unknown ids.
func (s *CatalogService) Media(id string) (title string, ok bool) {
	title, ok = s.seed.MediaIDs[id]
	return title, ok
}

// RandomMedia picks any known media entry.
func (s *CatalogService) RandomMedia() (id, title string) {
	keys := s.seed.MediaIDKeys()
	if len(keys) == 0 {
		return "", ""
	}
	id = keys[rand.IntN(len(keys))]
	return id, s.seed.MediaIDs[id]
}
