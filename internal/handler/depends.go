package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// depsCacheKey keys the per-request dependency cache in echo.Context.
const depsCacheKey = "dependencies"

// Dependency is a named provider of a value computed from the request.
//
// A handler asks for the value with Resolve; the provider runs at most once
// per request and every later Resolve in the same request returns the same
// value (or error). Providers may resolve other dependencies.
type Dependency[T any] struct {
	name    string
	provide func(c echo.Context) (T, error)
	noCache bool
}

// Depend declares a dependency.
func Depend[T any](name string, provide func(c echo.Context) (T, error)) *Dependency[T] {
	return &Dependency[T]{name: name, provide: provide}
}

// NoCache returns a copy of d that runs its provider on every Resolve.
func (d *Dependency[T]) NoCache() *Dependency[T] {
	return &Dependency[T]{name: d.name, provide: d.provide, noCache: true}
}

func (d *Dependency[T]) Name() string {
	return d.name
}

type resolved struct {
	value any
	err   error
}

// Resolve returns the dependency's value for this request.
func (d *Dependency[T]) Resolve(c echo.Context) (T, error) {
	if d.noCache {
		return d.provide(c)
	}

	cache, _ := c.Get(depsCacheKey).(map[any]resolved)
	if cache == nil {
		cache = make(map[any]resolved)
		c.Set(depsCacheKey, cache)
	}

	if r, ok := cache[d]; ok {
		value, _ := r.value.(T)
		return value, r.err
	}

	value, err := d.provide(c)
	cache[d] = resolved{value: value, err: err}

	return value, err
}

// Run resolves d and discards the value.
func (d *Dependency[T]) Run(c echo.Context) error {
	_, err := d.Resolve(c)
	return err
}

// Runner is any dependency whose value the caller does not need.
type Runner interface {
	Name() string
	Run(c echo.Context) error
}

// Depends runs deps in order before the handler and stops at the first
// error. Their values stay in the request cache, so a handler that resolves
// the same dependency does not run it twice.
//
// Use it on a route (decorator dependencies) or on a group (global
// dependencies).
func Depends(deps ...Runner) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			for _, dep := range deps {
				if err := dep.Run(c); err != nil {
					return err
				}
			}
			return next(c)
		}
	}
}

// respondWith resolves d and writes its value as a 200 JSON response.
func respondWith[T any](c echo.Context, d *Dependency[T]) error {
	value, err := d.Resolve(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, value)
}
