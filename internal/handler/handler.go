// Package handler holds the HTTP layer of every lesson.
//
// A lesson handler declares its inputs as a request struct (path, query,
// header, cookie, form and body tags), lets the shared pipeline in base.go
// bind and validate it, and returns a response struct or an *errs.HTTPError.
// Dependencies that several routes share live in depends.go.
package handler
