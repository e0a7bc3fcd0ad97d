package main

import (
	"os"
	"strings"

	"github.com/hop-protocol/hop-relay/config"
	"github.com/urfave/cli/v2"
)

func configCmd(*cli.Context) error {
	defaultConfig := strings.Builder{}
	defaultConfig.WriteString(config.DefaultMandatoryVars)
	defaultConfig.WriteString(config.DefaultVars)
	defaultConfig.WriteString(config.DefaultValues)

	_, err := os.Stdout.WriteString(defaultConfig.String())
	return err
}
