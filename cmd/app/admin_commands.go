package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/trivalleytech/site-api/cmd/app/commands"
	"github.com/trivalleytech/site-api/internal/admin/credential"
	"github.com/trivalleytech/site-api/internal/app"
	"github.com/trivalleytech/site-api/internal/config"
)

func getAdminCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-admin-token",
			Usage: "Mint a new admin bearer token",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "expires-in-days",
					Aliases: []string{"e"},
					Value:   0,
					Usage:   "Token lifetime in days (0 uses the configured default)",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				tokenAuthority, err := container.TokenAuthority()
				if err != nil {
					return err
				}

				expiresInDays := int(cmd.Int("expires-in-days"))
				if expiresInDays <= 0 {
					expiresInDays = cfg.AdminTokenExpiresInDays
				}

				return commands.RunCreateAdminToken(
					ctx,
					tokenAuthority,
					container.Logger(),
					commands.DefaultIO().Writer,
					expiresInDays,
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "revoke-admin-token",
			Usage: "Permanently invalidate an admin bearer token",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "token",
					Aliases:  []string{"t"},
					Required: true,
					Usage:    "The raw token value to revoke",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				tokenAuthority, err := container.TokenAuthority()
				if err != nil {
					return err
				}

				return commands.RunRevokeAdminToken(
					ctx,
					tokenAuthority,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("token"),
				)
			},
		},
		{
			Name:  "list-admin-tokens",
			Usage: "List issued admin token records, newest first",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "offset",
					Aliases: []string{"o"},
					Value:   0,
					Usage:   "Number of records to skip",
				},
				&cli.IntFlag{
					Name:    "limit",
					Aliases: []string{"l"},
					Value:   50,
					Usage:   "Maximum number of records to return",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				tokenAuthority, err := container.TokenAuthority()
				if err != nil {
					return err
				}

				return commands.RunListAdminTokens(
					ctx,
					tokenAuthority,
					container.Logger(),
					commands.DefaultIO().Writer,
					int(cmd.Int("offset")),
					int(cmd.Int("limit")),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "login",
			Usage: "Verify an admin token and save it as the operator credential",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "token",
					Aliases:  []string{"t"},
					Required: true,
					Usage:    "The raw token value to verify and save",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				accessGate, err := container.AccessGate()
				if err != nil {
					return err
				}

				store, err := credential.NewStore(cfg.AdminCredentialFile)
				if err != nil {
					return err
				}

				return commands.RunLogin(
					ctx,
					accessGate,
					store,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("token"),
				)
			},
		},
		{
			Name:  "logout",
			Usage: "Remove the saved operator credential",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				store, err := credential.NewStore(cfg.AdminCredentialFile)
				if err != nil {
					return err
				}

				return commands.RunLogout(
					store,
					container.Logger(),
					commands.DefaultIO().Writer,
				)
			},
		},
		{
			Name:  "check-access",
			Usage: "Check whether the saved operator credential still grants admin access",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				accessGate, err := container.AccessGate()
				if err != nil {
					return err
				}

				store, err := credential.NewStore(cfg.AdminCredentialFile)
				if err != nil {
					return err
				}

				return commands.RunCheckAccess(
					ctx,
					accessGate,
					store,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("format"),
				)
			},
		},
	}
}
