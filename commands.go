package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/carson-networks/signing-client/api"
	"github.com/carson-networks/signing-client/internal/config"
	"github.com/carson-networks/signing-client/internal/logging"
	"github.com/carson-networks/signing-client/internal/operator"
	"github.com/carson-networks/signing-client/internal/operator/actions"
	"github.com/carson-networks/signing-client/resource"
	"github.com/carson-networks/signing-client/transport"
)

type app struct {
	configPath string
	debug      bool
	out        io.Writer

	config    *config.Config
	logger    *logrus.Logger
	transport *transport.Client
}

func newRootCommand(out io.Writer) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:               "signing-client",
		Short:             "Manage document signing accounts from the command line",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to a YAML config file")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "log at debug level and dump full values")

	root.AddCommand(a.accountCommand())
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	if a.debug {
		level = logrus.DebugLevel
	}
	a.logger = logging.SetupLogging(level)
	a.logger.Debug("signing-client starting")

	client, err := transport.NewClient(cfg.Transport(), transport.WithLogger(a.logger))
	if err != nil {
		return err
	}

	a.config = cfg
	a.transport = client
	return nil
}

func (a *app) accountCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Read, create, update and verify accounts",
	}
	cmd.AddCommand(a.getAccountCommand(), a.createAccountCommand(), a.updateAccountCommand(), a.verifyAccountCommand())
	return cmd
}

func (a *app) getAccountCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show the account the credentials belong to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			account, err := api.New(a.transport).Account.GetAccount(cmd.Context())
			if err != nil {
				return err
			}
			return a.printAccount(account)
		},
	}
}

func (a *app) createAccountCommand() *cobra.Command {
	var emails []string
	var extra map[string]string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create accounts; each user must confirm their email address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := api.Options{}
			for key, value := range extra {
				opts[key] = value
			}

			creates := make([]*actions.CreateAccount, len(emails))
			acts := make([]actions.IAction, len(emails))
			for i, email := range emails {
				creates[i] = &actions.CreateAccount{EmailAddress: email, Options: opts}
				acts[i] = creates[i]
			}

			client := api.New(a.transport.Anonymous())
			errs := a.runAll(cmd, client, acts)

			var failed int
			for i, create := range creates {
				if errs[i] != nil {
					failed++
					a.logger.WithError(errs[i]).WithField("email", create.EmailAddress).Error("Account.Create.Error")
					continue
				}
				if err := a.printAccount(create.Account); err != nil {
					return err
				}
			}
			return failures(failed, len(creates))
		},
	}
	cmd.Flags().StringSliceVarP(&emails, "email", "e", nil, "email address of the new account (repeatable)")
	cmd.Flags().StringToStringVar(&extra, "option", nil, "extra request parameter as key=value")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func (a *app) updateAccountCommand() *cobra.Command {
	var callbackURL string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update the current account's callback URL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			account, err := api.New(a.transport).Account.UpdateAccount(cmd.Context(), api.Options{"callback_url": callbackURL})
			if err != nil {
				return err
			}
			return a.printAccount(account)
		},
	}
	cmd.Flags().StringVar(&callbackURL, "callback-url", "", "URL the API calls back with account events")
	_ = cmd.MarkFlagRequired("callback-url")
	return cmd
}

func (a *app) verifyAccountCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify EMAIL...",
		Short: "Check whether accounts exist for the given email addresses",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, emails []string) error {
			verifies := make([]*actions.VerifyAccount, len(emails))
			acts := make([]actions.IAction, len(emails))
			for i, email := range emails {
				verifies[i] = &actions.VerifyAccount{EmailAddress: email}
				acts[i] = verifies[i]
			}

			errs := a.runAll(cmd, api.New(a.transport), acts)

			var failed int
			for i, verify := range verifies {
				if errs[i] != nil {
					failed++
					a.logger.WithError(errs[i]).WithField("email", verify.EmailAddress).Error("Account.Verify.Error")
					continue
				}
				fmt.Fprintf(a.out, "%s\t%t\n", verify.EmailAddress, verify.Exists)
			}
			return failures(failed, len(verifies))
		},
	}
}

func (a *app) runAll(cmd *cobra.Command, client *api.Client, acts []actions.IAction) []error {
	delegator := operator.NewOperatorDelegator(client, a.logger, a.config.Workers)
	delegator.Start()
	defer delegator.Stop()

	return delegator.ProcessAll(cmd.Context(), acts)
}

func (a *app) printAccount(account *resource.Account) error {
	if a.debug {
		spew.Fdump(a.out, account)
		return nil
	}

	data, err := json.MarshalIndent(account.Data(), "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode account")
	}
	_, err = fmt.Fprintln(a.out, string(data))
	return err
}

func failures(failed, total int) error {
	if failed == 0 {
		return nil
	}
	return errors.Errorf("%d of %d requests failed", failed, total)
}
