package service

import (
	"context"

	"github.com/deppfellow/echo-lessons/internal/middleware"
	"github.com/deppfellow/echo-lessons/internal/model"
	"github.com/deppfellow/echo-lessons/internal/repository"
	"github.com/deppfellow/echo-lessons/internal/server"
	"github.com/pkg/errors"
)

// ThingService reads and updates the body-updates catalog.
type ThingService struct {
	server *server.Server
	store  repository.Store[model.Thing]
}

func NewThingService(s *server.Server, store repository.Store[model.Thing]) *ThingService {
	return &ThingService{
		server: s,
		store:  store,
	}
}

func (s *ThingService) Get(ctx context.Context, id string) (model.Thing, error) {
	thing, err := s.store.Get(ctx, id)
	if err != nil {
		return model.Thing{}, notFound(err, "Thing not found", "get thing")
	}
	return thing, nil
}

// Replace writes thing under id, creating it when missing, and returns the
// whole catalog.
func (s *ThingService) Replace(ctx context.Context, id string, thing model.Thing) (map[string]model.Thing, error) {
	if err := s.store.Put(ctx, id, thing.Normalize()); err != nil {
		return nil, errors.Wrap(err, "replace thing")
	}

	all, err := s.store.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list things")
	}

	return all, nil
}

// Patch applies only the fields the client sent. The thing must exist.
func (s *ThingService) Patch(ctx context.Context, id string, patch model.ThingPatch) (model.Thing, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return model.Thing{}, err
	}

	updated := patch.Apply(current)
	if err := s.store.Put(ctx, id, updated); err != nil {
		return model.Thing{}, errors.Wrap(err, "patch thing")
	}

	middleware.LoggerFromContext(ctx).Debug().
		Str("thing_id", id).
		Msg("thing patched")

	return updated, nil
}

// Delete removes a thing. Deleting a missing thing is a 404.
func (s *ThingService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "delete thing")
	}

	return nil
}
