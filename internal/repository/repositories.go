package repository

import (
	"context"
	"time"

	"github.com/deppfellow/echo-lessons/internal/fixtures"
	"github.com/deppfellow/echo-lessons/internal/model"
	"github.com/deppfellow/echo-lessons/internal/server"
	"github.com/pkg/errors"
)

// Repositories is a container for all store instances.
//
// The backend is picked once from store.backend; every store uses the same one.
type Repositories struct {
	// Benefits maps a benefit id to its price with tax.
	Benefits Store[float64]

	// Things is the body-updates lesson's catalog.
	Things Store[model.Thing]

	// Profiles keeps JSON-compatible maps written by the encoder lesson.
	Profiles Store[map[string]any]

	// Users keeps registered users with hashed passwords.
	Users Store[model.UserInDB]
}

// NewRepositories builds the stores and seeds the ones that start with data.
func NewRepositories(s *server.Server) (*Repositories, error) {
	var repos *Repositories

	switch s.Config.Store.Backend {
	case "redis":
		if s.Redis == nil {
			return nil, errors.New("store backend redis requires a redis client")
		}
		prefix := s.Config.Store.KeyPrefix
		repos = &Repositories{
			Benefits: NewRedisStore[float64](s.Redis, prefix, "benefits"),
			Things:   NewRedisStore[model.Thing](s.Redis, prefix, "things"),
			Profiles: NewRedisStore[map[string]any](s.Redis, prefix, "profiles"),
			Users:    NewRedisStore[model.UserInDB](s.Redis, prefix, "users"),
		}
	default:
		repos = NewMemoryRepositories()
	}

	seed, err := fixtures.Load()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := Seed(ctx, repos.Things, seed.Things); err != nil {
		return nil, errors.Wrap(err, "failed to seed things")
	}

	s.Logger.Info().
		Str("backend", s.Config.Store.Backend).
		Int("things", len(seed.Things)).
		Msg("repositories ready")

	return repos, nil
}

// NewMemoryRepositories returns empty in-memory stores.
func NewMemoryRepositories() *Repositories {
	return &Repositories{
		Benefits: NewMemoryStore[float64](),
		Things:   NewMemoryStore[model.Thing](),
		Profiles: NewMemoryStore[map[string]any](),
		Users:    NewMemoryStore[model.UserInDB](),
	}
}
