package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/adrinr/budibase/internal/worker"
)

func emailSend(c *cli.Context) error {
	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting worker client")
	}

	resp, err := client.Email().Send(
		context.Background(),
		tenantContext(c),
		worker.SendEmailRequest{
			Email:   c.String(flagEmail),
			Purpose: c.String(flagPurpose),
		},
	)
	if err != nil {
		return err
	}

	fmt.Printf(
		"%s Email sent to %s (message ID %s).\n",
		color.GreenString("✓"),
		c.String(flagEmail),
		resp.MessageID,
	)
	return nil
}
