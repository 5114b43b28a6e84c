package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

const (
	flagAPIKey  = "api-key"
	flagEmail   = "email"
	flagOutput  = "output"
	flagPurpose = "purpose"
	flagTenant  = "tenant"
	flagURL     = "url"
	flagUser    = "user"
)

var (
	cliFlagOutput = cli.StringFlag{
		Name:  flagOutput + ", o",
		Usage: "Return output in the specified format; supported formats: table, json",
		Value: "table",
	}
	cliFlagTenant = cli.StringFlag{
		Name:   flagTenant,
		Usage:  "Scope the operation to the specified tenant",
		Value:  "default",
		EnvVar: "BB_TENANT_ID",
	}
)

func validateOutputFormat(output string) error {
	switch strings.ToLower(output) {
	case "table":
	case "json":
	default:
		return errors.Errorf("unknown output format %q", output)
	}
	return nil
}
