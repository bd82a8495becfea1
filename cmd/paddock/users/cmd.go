package users

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pitwall/paddock/auth"
	"github.com/pitwall/paddock/internal/cmdflags"
	"github.com/pitwall/paddock/internal/credstore"
	"github.com/urfave/cli/v2"
	"golang.org/x/crypto/bcrypt"
)

func Cmd() *cli.Command {
	credentials := "./credentials.db"
	return &cli.Command{
		Name:  "users",
		Usage: "Provision the credential table (the server itself never writes it)",
		Flags: []cli.Flag{
			cmdflags.Credentials(&credentials),
		},
		Subcommands: []*cli.Command{
			addCmd(&credentials),
			importCmd(&credentials),
		},
	}
}

func addCmd(credentials *string) *cli.Command {
	var username string
	return &cli.Command{
		Name:  "add",
		Usage: "Add or replace one user with a bcrypt hash (password is read from stdin)",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "username",
				Aliases:     []string{"u", "user"},
				Usage:       "Name of the user to add",
				Destination: &username,
				Required:    true,
			},
		},
		Action: func(ctx *cli.Context) error {
			sc := bufio.NewScanner(os.Stdin)
			if !sc.Scan() {
				return sc.Err()
			}
			password := strings.TrimSpace(sc.Text())
			if len(password) == 0 {
				return errors.New("missing password from stdin")
			}
			hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			return credstore.Put(ctx.Context, *credentials,
				auth.NormalizeUsername(username), string(hash))
		},
	}
}

func importCmd(credentials *string) *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "Bulk-load a username-to-hash JSON object, hashes taken verbatim (how legacy digests get in)",
		ArgsUsage: "<json file>",
		Action: func(ctx *cli.Context) error {
			if ctx.NArg() != 1 {
				return errors.New("expected exactly one json file argument")
			}
			buf, err := os.ReadFile(ctx.Args().First())
			if err != nil {
				return err
			}
			var creds auth.Credentials
			if err := json.Unmarshal(buf, &creds); err != nil {
				return fmt.Errorf("unable to parse %v, cause %w", ctx.Args().First(), err)
			}
			return credstore.Import(ctx.Context, *credentials, creds)
		},
	}
}
