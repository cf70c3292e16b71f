// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, performs
// business operations, and calls repository methods to interact
// with the data
package service

import (
	"github.com/deppfellow/echo-lessons/internal/errs"
	"github.com/deppfellow/echo-lessons/internal/repository"
	"github.com/pkg/errors"
)

// notFound turns a store miss into the 404 clients see and wraps anything
// else with the operation that failed.
func notFound(err error, message, op string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return errs.NewNotFoundError(message, true, nil)
	}
	return errors.Wrap(err, op)
}
