package main

import (
	"os"

	hoprelay "github.com/hop-protocol/hop-relay"
	"github.com/urfave/cli/v2"
)

func versionCmd(*cli.Context) error {
	hoprelay.PrintVersion(os.Stdout)
	return nil
}
