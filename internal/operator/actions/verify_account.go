package actions

import (
	"context"

	"github.com/carson-networks/signing-client/api"
)

type VerifyAccount struct {
	EmailAddress string

	Exists bool
}

func (v *VerifyAccount) Name() string {
	return "VerifyAccount"
}

func (v *VerifyAccount) Perform(ctx context.Context, client *api.Client) error {
	exists, err := client.Account.VerifyAccountExists(ctx, api.Options{"email_address": v.EmailAddress})
	if err != nil {
		return err
	}

	v.Exists = exists
	return nil
}
