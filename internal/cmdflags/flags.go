package cmdflags

import (
	"github.com/pitwall/paddock/auth"
	"github.com/urfave/cli/v2"
)

func Credentials(out *string) cli.Flag {
	return &cli.StringFlag{
		Name:        "credentials",
		Aliases:     []string{"c"},
		Usage:       "Path to the sqlite file holding the credential table",
		Destination: out,
		Value:       *out,
	}
}

func SecretEnvVar(out *string) cli.Flag {
	if len(*out) == 0 {
		*out = auth.SecretEnvVar
	}
	return &cli.StringFlag{
		Name:        "secret-envvar-name",
		Usage:       "Name of the environment variable that holds the token signing secret. The secret itself should not be passed as an argument",
		Value:       *out,
		Destination: out,
	}
}
