// Package static embeds the API docs page and the OpenAPI document it renders.
package static

import "embed"

// Files holds openapi.html and openapi.json.
//
//go:embed openapi.html openapi.json
var Files embed.FS
