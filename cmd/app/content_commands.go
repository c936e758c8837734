package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/trivalleytech/site-api/cmd/app/commands"
	"github.com/trivalleytech/site-api/internal/app"
	"github.com/trivalleytech/site-api/internal/config"
)

func getContentCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "clear-projects",
			Usage: "Delete all projects",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:    "yes",
					Aliases: []string{"y"},
					Value:   false,
					Usage:   "Skip the confirmation prompt",
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

				projectUseCase, err := container.ProjectUseCase()
				if err != nil {
					return err
				}

				return commands.RunClearProjects(
					ctx,
					projectUseCase,
					container.Logger(),
					cmd.Bool("yes"),
					cmd.String("format"),
					commands.DefaultIO(),
				)
			},
		},
		{
			Name:  "clear-articles",
			Usage: "Delete all articles",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:    "yes",
					Aliases: []string{"y"},
					Value:   false,
					Usage:   "Skip the confirmation prompt",
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

				articleUseCase, err := container.ArticleUseCase()
				if err != nil {
					return err
				}

				return commands.RunClearArticles(
					ctx,
					articleUseCase,
					container.Logger(),
					cmd.Bool("yes"),
					cmd.String("format"),
					commands.DefaultIO(),
				)
			},
		},
	}
}
