package main

import (
	"log"
	"os"

	"github.com/urfave/cli"

	"github.com/adrinr/budibase/internal/lib/restmachinery"
	"github.com/adrinr/budibase/internal/lib/restmachinery/authn"
	"github.com/adrinr/budibase/internal/mock/sheets"
	"github.com/adrinr/budibase/internal/mock/workerservice"
)

const (
	flagWorkerPort = "worker-port"
	flagSheetsPort = "sheets-port"
)

func main() {
	app := cli.NewApp()
	app.Name = "bbmock"
	app.Usage = "Run in-memory mocks of the worker and spreadsheet services"
	app.Commands = []cli.Command{
		{
			Name:  "serve",
			Usage: "serve both mock services until interrupted",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  flagWorkerPort,
					Usage: "Port for the mock worker service. Overrides BBMOCK_WORKER_PORT.",
				},
				cli.IntFlag{
					Name:  flagSheetsPort,
					Usage: "Port for the mock spreadsheet service. Overrides BBMOCK_SHEETS_PORT.",
				},
			},
			Action: serve,
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func serve(c *cli.Context) error {
	config, err := getConfigFromEnvironment()
	if err != nil {
		return err
	}
	if port := c.Int(flagWorkerPort); port != 0 {
		config.WorkerPort = port
	}
	if port := c.Int(flagSheetsPort); port != 0 {
		config.SheetsPort = port
	}

	workerStore := workerservice.NewStore()
	workerBase := &restmachinery.BaseEndpoints{
		AuthFilter: authn.NewAPIKeyAuthFilter(
			config.InternalAPIKey,
			workerStore.FindUserIDByAPIKey,
		),
	}
	workerServer := restmachinery.NewServer(
		restmachinery.ServerConfig{
			Port:        config.WorkerPort,
			TLSEnabled:  config.TLSEnabled,
			TLSCertPath: config.TLSCertPath,
			TLSKeyPath:  config.TLSKeyPath,
		},
		workerBase,
		[]restmachinery.Endpoints{
			workerservice.NewEndpoints(workerBase, workerStore),
		},
	)

	sheetsBase := &restmachinery.BaseEndpoints{}
	sheetsServer := restmachinery.NewServer(
		restmachinery.ServerConfig{
			Port:        config.SheetsPort,
			TLSEnabled:  config.TLSEnabled,
			TLSCertPath: config.TLSCertPath,
			TLSKeyPath:  config.TLSKeyPath,
		},
		sheetsBase,
		[]restmachinery.Endpoints{
			sheets.NewEndpoints(sheetsBase, sheets.NewStore()),
		},
	)

	errCh := make(chan error)
	go func() {
		errCh <- workerServer.ListenAndServe()
	}()
	go func() {
		errCh <- sheetsServer.ListenAndServe()
	}()
	return <-errCh
}
