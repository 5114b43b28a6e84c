package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

func userList(c *cli.Context) error {
	output := c.String(flagOutput)

	if err := validateOutputFormat(output); err != nil {
		return err
	}

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting worker client")
	}

	users, err := client.Users().List(context.Background(), tenantContext(c))
	if err != nil {
		return err
	}

	if len(users) == 0 {
		fmt.Println("No users found.")
		return nil
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("ID", "EMAIL", "TENANT", "STATUS")
		for _, user := range users {
			table.AddRow(
				user.ID,
				user.Email,
				user.TenantID,
				user.Status,
			)
		}
		fmt.Println(table)

	case "json":
		prettyJSON, err := json.MarshalIndent(users, "", "  ")
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from list users operation",
			)
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}

func userGet(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("users get requires one argument-- a user ID")
	}
	id := c.Args()[0]
	output := c.String(flagOutput)

	if err := validateOutputFormat(output); err != nil {
		return err
	}

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting worker client")
	}

	user, err := client.Users().Get(context.Background(), tenantContext(c), id)
	if err != nil {
		return err
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("ID", "EMAIL", "TENANT", "STATUS")
		table.AddRow(
			user.ID,
			user.Email,
			user.TenantID,
			user.Status,
		)
		fmt.Println(table)

	case "json":
		prettyJSON, err := json.MarshalIndent(user, "", "  ")
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from get user operation",
			)
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}

func userDelete(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("users delete requires one argument-- a user ID")
	}
	id := c.Args()[0]

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting worker client")
	}

	if err := client.Users().Delete(
		context.Background(),
		tenantContext(c),
		id,
	); err != nil {
		return err
	}

	fmt.Printf("User %q deleted.\n", id)
	return nil
}
