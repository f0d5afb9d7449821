// Package api groups the signing API's resources behind a single Client.
//
// Every resource method is one stateless round trip through an injected
// transport.ITransport. Authentication, timeouts and connection handling
// belong to the transport.
package api

import (
	"github.com/carson-networks/signing-client/transport"
)

// Options is an open set of request parameters passed through verbatim to
// the API, so fields added upstream need no client change.
type Options map[string]interface{}

// Client holds all API resources.
type Client struct {
	Account *AccountResource
}

// New creates a new Client sending every request through t.
func New(t transport.ITransport) *Client {
	return &Client{
		Account: NewAccountResource(t),
	}
}
