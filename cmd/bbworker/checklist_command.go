package main

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

func checklistGet(c *cli.Context) error {
	output := c.String(flagOutput)

	if err := validateOutputFormat(output); err != nil {
		return err
	}

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting worker client")
	}

	checklist, err := client.Configs().Checklist(
		context.Background(),
		tenantContext(c),
	)
	if err != nil {
		return err
	}

	switch strings.ToLower(output) {
	case "table":
		steps := make([]string, 0, len(checklist))
		for step := range checklist {
			steps = append(steps, step)
		}
		sort.Strings(steps)
		table := uitable.New()
		table.AddRow("STEP", "DONE?", "LABEL")
		for _, step := range steps {
			item := checklist[step]
			done := color.RedString("✗")
			if item.Checked {
				done = color.GreenString("✓")
			}
			table.AddRow(step, done, item.Label)
		}
		fmt.Println(table)

	case "json":
		prettyJSON, err := json.MarshalIndent(checklist, "", "  ")
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from fetch checklist operation",
			)
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}
