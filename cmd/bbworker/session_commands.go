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

func login(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("login requires one argument-- the worker service URL")
	}
	workerURL := c.Args()[0]
	apiKey := c.String(flagAPIKey)

	// Verify the credentials work before saving them.
	client := worker.NewClient(workerURL, apiKey, apimachinery.RaiseToCaller{})
	if _, err := client.Configs().Checklist(
		context.Background(),
		tenantContext(c),
	); err != nil {
		return err
	}

	if err := saveConfig(&config{
		WorkerURL: workerURL,
		APIKey:    apiKey,
	}); err != nil {
		return errors.Wrap(err, "error persisting configuration")
	}

	fmt.Printf("%s Logged in to %s.\n", color.GreenString("✓"), workerURL)
	return nil
}

func logout(c *cli.Context) error {
	if err := deleteConfig(); err != nil {
		return errors.Wrap(err, "error deleting configuration")
	}
	fmt.Println("Logged out.")
	return nil
}
