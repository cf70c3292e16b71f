// Package validation binds request data into payload structs and
// validates them.
//
// Binding covers every source a lesson can declare: path, query, header,
// cookie and body (JSON, urlencoded or multipart). Validation uses the
// `validator` library; its errors are turned into field-level errors
// named by the wire name the client used.
package validation
