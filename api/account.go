package api

import (
	"context"

	"github.com/pkg/errors"

	"github.com/carson-networks/signing-client/resource"
	"github.com/carson-networks/signing-client/transport"
)

const (
	accountPath       = "/account"
	accountCreatePath = "/account/create"
	accountVerifyPath = "/account/verify"
)

// ErrMissingOption is returned before any request is sent when a required option is absent.
var ErrMissingOption = errors.New("missing required option")

// AccountResource wraps the /account endpoints.
type AccountResource struct {
	transport transport.ITransport
}

// NewAccountResource creates a new AccountResource.
func NewAccountResource(t transport.ITransport) *AccountResource {
	return &AccountResource{transport: t}
}

// GetAccount returns the account the transport is authenticated as.
func (r *AccountResource) GetAccount(ctx context.Context) (*resource.Account, error) {
	data, err := r.transport.Get(ctx, accountPath)
	if err != nil {
		return nil, err
	}
	return newAccount(data)
}

// CreateAccount signs up a new user identified by opts["email_address"]. The
// user still has to confirm the address before the account is usable. The
// endpoint does not require authentication.
func (r *AccountResource) CreateAccount(ctx context.Context, opts Options) (*resource.Account, error) {
	if err := requireString(opts, "email_address"); err != nil {
		return nil, err
	}

	data, err := r.transport.Post(ctx, accountCreatePath, opts)
	if err != nil {
		return nil, err
	}
	return newAccount(data)
}

// UpdateAccount changes settings, such as callback_url, of the current account.
func (r *AccountResource) UpdateAccount(ctx context.Context, opts Options) (*resource.Account, error) {
	data, err := r.transport.Post(ctx, accountPath, opts)
	if err != nil {
		return nil, err
	}
	return newAccount(data)
}

// VerifyAccountExists reports whether an account exists for opts["email_address"].
// The endpoint answers with an empty body when there is no such account, so
// only an empty successful response yields false. Error statuses are returned
// as errors.
func (r *AccountResource) VerifyAccountExists(ctx context.Context, opts Options) (bool, error) {
	data, err := r.transport.Post(ctx, accountVerifyPath, opts)
	if err != nil {
		return false, err
	}
	return !isEmptyResponse(data), nil
}

// newAccount rejects empty bodies: an account endpoint that succeeds always
// returns the account.
func newAccount(data map[string]interface{}) (*resource.Account, error) {
	if isEmptyResponse(data) {
		return nil, errors.Wrap(transport.ErrMalformedResponse, "empty account response")
	}
	return resource.NewAccount(data)
}

func isEmptyResponse(data map[string]interface{}) bool {
	return len(data) == 0
}

func requireString(opts Options, key string) error {
	value, ok := opts[key].(string)
	if !ok || value == "" {
		return errors.Wrapf(ErrMissingOption, "%q", key)
	}
	return nil
}
