package service

import (
	"github.com/deppfellow/echo-lessons/internal/fixtures"
	"github.com/deppfellow/echo-lessons/internal/lib/job"
	"github.com/deppfellow/echo-lessons/internal/repository"
	"github.com/deppfellow/echo-lessons/internal/server"
)

// Services is the business layer container, built once at startup and handed
// to the handlers.
type Services struct {
	Catalog  *CatalogService
	Benefits *BenefitService
	Things   *ThingService
	Users    *UserService
	Profiles *ProfileService

	// Job is nil when jobs.enabled is false.
	Job *job.JobService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	seed, err := fixtures.Load()
	if err != nil {
		return nil, err
	}

	// A nil *job.JobService must not become a non-nil interface value.
	var welcome WelcomeEnqueuer
	if s.Job != nil {
		welcome = s.Job
	}

	return &Services{
		Catalog:  NewCatalogService(seed),
		Benefits: NewBenefitService(s, repos.Benefits),
		Things:   NewThingService(s, repos.Things),
		Users:    NewUserService(s, repos.Users, welcome),
		Profiles: NewProfileService(s, repos.Profiles),
		Job:      s.Job,
	}, nil
}
