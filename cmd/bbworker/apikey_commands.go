package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/adrinr/budibase/internal/lib/apimachinery"
	"github.com/adrinr/budibase/internal/worker"
)

func apiKeyGenerate(c *cli.Context) error {
	userID := c.String(flagUser)

	workerURL, apiKey, err := getCredentials(c)
	if err != nil {
		return err
	}
	client := worker.NewClient(workerURL, apiKey, apimachinery.RaiseToCaller{})

	key, err := client.Self().GenerateAPIKey(
		context.Background(),
		userContext(c, apiKey, userID),
	)
	if err != nil {
		return err
	}

	fmt.Printf(
		"%s Generated API key for user %q:\n\n  %s\n",
		color.GreenString("✓"),
		userID,
		key.APIKey,
	)
	return nil
}

func apiKeyFetch(c *cli.Context) error {
	userID := c.String(flagUser)

	workerURL, apiKey, err := getCredentials(c)
	if err != nil {
		return err
	}
	client := worker.NewClient(workerURL, apiKey, apimachinery.RaiseToCaller{})

	key, err := client.Self().FetchAPIKey(
		context.Background(),
		userContext(c, apiKey, userID),
	)
	if err != nil {
		return errors.Wrapf(err, "error fetching API key for user %q", userID)
	}

	fmt.Println(key.APIKey)
	return nil
}
