package actions

import (
	"context"

	"github.com/carson-networks/signing-client/api"
	"github.com/carson-networks/signing-client/resource"
)

type CreateAccount struct {
	EmailAddress string
	Options      api.Options

	Account *resource.Account
}

func (c *CreateAccount) Name() string {
	return "CreateAccount"
}

func (c *CreateAccount) Perform(ctx context.Context, client *api.Client) error {
	opts := api.Options{}
	for key, value := range c.Options {
		opts[key] = value
	}
	opts["email_address"] = c.EmailAddress

	account, err := client.Account.CreateAccount(ctx, opts)
	if err != nil {
		return err
	}

	c.Account = account
	return nil
}
