package actions

import (
	"context"

	"github.com/carson-networks/signing-client/api"
)

// IAction is a unit of work run by an operator against the API client.
type IAction interface {
	Name() string
	Perform(ctx context.Context, client *api.Client) error
}
