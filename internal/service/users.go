package service

import (
	"context"

	"github.com/deppfellow/echo-lessons/internal/middleware"
	"github.com/deppfellow/echo-lessons/internal/model"
	"github.com/deppfellow/echo-lessons/internal/repository"
	"github.com/deppfellow/echo-lessons/internal/server"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// WelcomeEnqueuer queues the welcome email for a new user.
type WelcomeEnqueuer interface {
	EnqueueWelcome(ctx context.Context, to, username string) error
}

// UserService stores users with hashed passwords.
type UserService struct {
	server  *server.Server
	store   repository.Store[model.UserInDB]
	welcome WelcomeEnqueuer
	cost    int
}

// NewUserService builds the service. welcome may be nil, in which case no
// email is ever queued.
func NewUserService(s *server.Server, store repository.Store[model.UserInDB], welcome WelcomeEnqueuer) *UserService {
	return &UserService{
		server:  s,
		store:   store,
		welcome: welcome,
		cost:    bcrypt.DefaultCost,
	}
}

// Register hashes the password, stores the user under its username and
// returns the public view. A second registration of the same username
// replaces the first.
//
// With notify set, a welcome email is queued. Queueing failures are logged,
// never returned: the user is already stored.
func (s *UserService) Register(ctx context.Context, in model.UserIn, notify bool) (model.UserOut, error) {
	logger := middleware.LoggerFromContext(ctx)

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return model.UserOut{}, errors.Wrap(err, "hash password")
	}

	user := model.UserInDB{
		UserBase:       in.UserBase,
		HashedPassword: string(hash),
	}

	if err := s.store.Put(ctx, user.Username, user); err != nil {
		return model.UserOut{}, errors.Wrap(err, "save user")
	}

	logger.Info().
		Str("username", user.Username).
		Msg("user saved")

	if notify && s.welcome != nil {
		if err := s.welcome.EnqueueWelcome(ctx, user.Email, user.Username); err != nil {
			logger.Error().
				Err(err).
				Str("username", user.Username).
				Msg("failed to queue welcome email")
		}
	}

	return user.Out(), nil
}

// Authenticate reports whether password matches the stored hash.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (bool, error) {
	user, err := s.store.Get(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "get user")
	}

	return bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)) == nil, nil
}
