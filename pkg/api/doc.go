// Package api defines the wire contract shared by every folio backend
// resource: the JSON response envelope, envelope normalization, and the
// request error taxonomy.
package api
