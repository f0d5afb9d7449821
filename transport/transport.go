// Package transport performs the HTTP round trips for the signing API client.
// Resources depend only on ITransport so any implementation (or a mock) can be
// injected in place of Client.
package transport

import (
	"context"
)

// ITransport defines the two primitives resources need from the API.
// A nil map result means the API answered successfully with an empty body.
//
//go:generate mockery --name ITransport --inpackage --with-expecter --filename mock_ITransport.go
type ITransport interface {
	Get(ctx context.Context, path string) (map[string]interface{}, error)
	Post(ctx context.Context, path string, body map[string]interface{}) (map[string]interface{}, error)
}
