// Package repository keeps the lessons' toy databases.
//
// Each database is a Store: a keyed collection of one value type. The
// memory backend is a mutex-guarded map; the Redis backend keeps one hash
// per store with JSON-encoded values, so several server processes can share it.
package repository
