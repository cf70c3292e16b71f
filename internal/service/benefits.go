package service

import (
	"context"
	"strconv"

	"github.com/deppfellow/echo-lessons/internal/middleware"
	"github.com/deppfellow/echo-lessons/internal/model"
	"github.com/deppfellow/echo-lessons/internal/repository"
	"github.com/deppfellow/echo-lessons/internal/server"
	"github.com/pkg/errors"
)

// BenefitService files tax returns and remembers their totals.
type BenefitService struct {
	server *server.Server
	store  repository.Store[float64]
}

func NewBenefitService(s *server.Server, store repository.Store[float64]) *BenefitService {
	return &BenefitService{
		server: s,
		store:  store,
	}
}

// File stores the total of r under id and returns it. Filing twice
// overwrites the earlier total.
func (s *BenefitService) File(ctx context.Context, id int, r model.Returns) (float64, error) {
	total := r.Total()

	if err := s.store.Put(ctx, strconv.Itoa(id), total); err != nil {
		return 0, errors.Wrap(err, "file benefit")
	}

	middleware.LoggerFromContext(ctx).Debug().
		Int("benefit_id", id).
		Float64("total", total).
		Msg("benefit filed")

	return total, nil
}

// Total returns the stored total for id.
func (s *BenefitService) Total(ctx context.Context, id int) (float64, error) {
	total, err := s.store.Get(ctx, strconv.Itoa(id))
	if err != nil {
		return 0, notFound(err, "Benefit not found", "get benefit")
	}
	return total, nil
}
