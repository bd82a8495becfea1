package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/pitwall/paddock/cmd/paddock/serve"
	"github.com/pitwall/paddock/cmd/paddock/users"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "paddock",
		Usage: "Session-gated hosting for the per-driver pages",
		Commands: []*cli.Command{
			serve.Cmd(),
			users.Cmd(),
		},
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	err := app.RunContext(ctx, os.Args)
	if err != nil {
		log.Error().Err(err).Msg("Application failed")
	}
}
