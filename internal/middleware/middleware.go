// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns
// such as the X-Token/X-Key header checks, request logging, CORS,
// metrics, rate limiting, and panic recovery
package middleware
