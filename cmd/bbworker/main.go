package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "bbworker"
	app.Usage = "Talk to the Budibase worker service"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  flagURL,
			Usage: "The address of the worker service",
		},
		cli.StringFlag{
			Name:  flagAPIKey,
			Usage: "The internal API key authenticating this command",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "login",
			Usage:     "Save worker service credentials for later commands",
			ArgsUsage: "URL",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:     flagAPIKey + ", k",
					Usage:    "The internal API key to save (required)",
					Required: true,
				},
				cliFlagTenant,
			},
			Action: login,
		},
		{
			Name:   "logout",
			Usage:  "Forget saved worker service credentials",
			Action: logout,
		},
		{
			Name:  "users",
			Usage: "Manage users",
			Subcommands: []cli.Command{
				{
					Name:  "list",
					Usage: "list the tenant's users",
					Flags: []cli.Flag{
						cliFlagOutput,
						cliFlagTenant,
					},
					Action: userList,
				},
				{
					Name:      "get",
					Usage:     "get a single user",
					ArgsUsage: "USER_ID",
					Flags: []cli.Flag{
						cliFlagOutput,
						cliFlagTenant,
					},
					Action: userGet,
				},
				{
					Name:      "delete",
					Usage:     "delete a single user",
					ArgsUsage: "USER_ID",
					Flags: []cli.Flag{
						cliFlagTenant,
					},
					Action: userDelete,
				},
			},
		},
		{
			Name:  "email",
			Usage: "Send email through the worker service",
			Subcommands: []cli.Command{
				{
					Name:  "send",
					Usage: "send one email",
					Flags: []cli.Flag{
						cli.StringFlag{
							Name:     flagEmail + ", e",
							Usage:    "The recipient's address (required)",
							Required: true,
						},
						cli.StringFlag{
							Name:  flagPurpose + ", p",
							Usage: "The email template to render",
							Value: "custom",
						},
						cliFlagTenant,
					},
					Action: emailSend,
				},
			},
		},
		{
			Name:  "checklist",
			Usage: "Show the tenant's setup checklist",
			Flags: []cli.Flag{
				cliFlagOutput,
				cliFlagTenant,
			},
			Action: checklistGet,
		},
		{
			Name:  "apikey",
			Usage: "Manage a user's personal API key",
			Subcommands: []cli.Command{
				{
					Name:  "generate",
					Usage: "generate (or rotate) a user's personal API key",
					Flags: []cli.Flag{
						cli.StringFlag{
							Name:     flagUser + ", u",
							Usage:    "Generate a key for the specified user (required)",
							Required: true,
						},
						cliFlagTenant,
					},
					Action: apiKeyGenerate,
				},
				{
					Name:  "fetch",
					Usage: "fetch a user's personal API key",
					Flags: []cli.Flag{
						cli.StringFlag{
							Name:     flagUser + ", u",
							Usage:    "Fetch the specified user's key (required)",
							Required: true,
						},
						cliFlagTenant,
					},
					Action: apiKeyFetch,
				},
			},
		},
	}
	fmt.Println()
	if err := app.Run(os.Args); err != nil {
		fmt.Printf("\n%s\n\n", err)
		os.Exit(1)
	}
	fmt.Println()
}
