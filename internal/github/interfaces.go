// Package github talks to the remote platform over its two protocols.
package github

import "context"

// API exposes the two remote-platform capabilities the engine consumes.
type API interface {
	// QueryStructured runs one GraphQL query and returns the raw data tree.
	QueryStructured(ctx context.Context, query string) ([]byte, error)
	// QueryResource issues a GET against the REST API and returns the raw body.
	// 404 and 403 responses surface as entities.ErrNotFound / entities.ErrForbidden.
	QueryResource(ctx context.Context, path string) ([]byte, error)
}
