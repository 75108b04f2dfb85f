package main

import (
	"context"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/allisson/tickets/cmd/app/commands"
	"github.com/allisson/tickets/internal/config"
)

func getAuthCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "mint-token",
			Usage: "Print an auth-token cookie value for local development",
			Flags: []cli.Flag{
				&cli.Uint64Flag{
					Name:     "user-id",
					Aliases:  []string{"u"},
					Required: true,
					Usage:    "User id embedded in the token",
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

				return commands.RunMintToken(
					commands.Stdout,
					cmd.Uint64("user-id"),
					time.Now().Add(cfg.AuthTokenExpiration),
					cmd.String("format"),
				)
			},
		},
	}
}
