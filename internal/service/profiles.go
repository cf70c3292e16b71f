package service

import (
	"context"
	"encoding/json"

	"github.com/deppfellow/echo-lessons/internal/repository"
	"github.com/deppfellow/echo-lessons/internal/server"
	"github.com/pkg/errors"
)

// ProfileService keeps records in their JSON-compatible form: maps, slices,
// strings, numbers and booleans only. Times become RFC 3339 strings.
type ProfileService struct {
	server *server.Server
	store  repository.Store[map[string]any]
}

func NewProfileService(s *server.Server, store repository.Store[map[string]any]) *ProfileService {
	return &ProfileService{
		server: s,
		store:  store,
	}
}

// Save converts v and stores it under id, returning the stored form.
func (s *ProfileService) Save(ctx context.Context, id string, v any) (map[string]any, error) {
	doc, err := JSONCompatible(v)
	if err != nil {
		return nil, err
	}

	if err := s.store.Put(ctx, id, doc); err != nil {
		return nil, errors.Wrap(err, "save profile")
	}

	return doc, nil
}

func (s *ProfileService) Get(ctx context.Context, id string) (map[string]any, error) {
	doc, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, notFound(err, "Profile not found", "get profile")
	}
	return doc, nil
}

// JSONCompatible round-trips v through its JSON encoding, so the result
// holds exactly what a client would see.
func JSONCompatible(v any) (map[string]any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "encode")
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "value is not a JSON object")
	}

	return doc, nil
}
