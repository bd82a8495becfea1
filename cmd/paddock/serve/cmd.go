package serve

import (
	"github.com/julienschmidt/httprouter"
	"github.com/pitwall/paddock/auth"
	"github.com/pitwall/paddock/auth/api"
	"github.com/pitwall/paddock/internal/cmdflags"
	"github.com/pitwall/paddock/internal/credstore"
	"github.com/pitwall/paddock/internal/httpserver"
	"github.com/pitwall/paddock/internal/staticfiles"
	"github.com/urfave/cli/v2"
)

func Cmd() *cli.Command {
	bindAddr := "localhost:7080"
	pagesDir := "./pages"
	credentials := "./credentials.db"
	var secretEnvVar string
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the driver pages behind the session gate",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "bind",
				Usage:       "Address to bind for incoming requests",
				Value:       bindAddr,
				Destination: &bindAddr,
			},
			&cli.StringFlag{
				Name:        "pages-dir",
				Aliases:     []string{"p"},
				Usage:       "Directory holding the pre-rendered pages",
				Value:       pagesDir,
				Destination: &pagesDir,
			},
			cmdflags.Credentials(&credentials),
			cmdflags.SecretEnvVar(&secretEnvVar),
		},
		Action: func(ctx *cli.Context) error {
			creds, err := credstore.Load(ctx.Context, credentials)
			if err != nil {
				return err
			}
			secret := auth.SecretFromEnv(secretEnvVar)

			router := httprouter.New()
			// GET /login must fall through to the static login page
			router.HandleMethodNotAllowed = false
			router.Handler("POST", "/login", api.NewLogin(creds, secret))
			router.Handler("GET", "/session", api.NewSessionInfo(secret))

			gate := api.NewGate(secret)
			router.NotFound = gate.Protect(staticfiles.New(pagesDir))

			return httpserver.Serve(ctx.Context, bindAddr, router)
		},
	}
}
