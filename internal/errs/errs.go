// Package errs defines the error shape every client of the lesson
// server sees.
//
// Handlers return *HTTPError values (or plain errors, which become 500s);
// the global error handler in the middleware package renders them.
package errs
