package main

import (
	"net/http"

	"github.com/urfave/cli"

	"github.com/adrinr/budibase/internal/header"
	"github.com/adrinr/budibase/internal/lib/apimachinery"
	"github.com/adrinr/budibase/internal/worker"
)

// getCredentials resolves the worker service's location and API key. Flags
// win over environment variables, which win over the saved config file.
func getCredentials(c *cli.Context) (string, string, error) {
	envConfig, err := worker.GetConfigFromEnvironment()
	if err != nil {
		return "", "", err
	}
	workerURL := c.GlobalString(flagURL)
	if workerURL == "" {
		workerURL = envConfig.WorkerURL
	}
	apiKey := c.GlobalString(flagAPIKey)
	if apiKey == "" {
		apiKey = envConfig.InternalAPIKey
	}
	if workerURL == "" || apiKey == "" {
		config, err := getConfig()
		if err != nil {
			return "", "", err
		}
		if workerURL == "" {
			workerURL = config.WorkerURL
		}
		if apiKey == "" {
			apiKey = config.APIKey
		}
	}
	return workerURL, apiKey, nil
}

func getClient(c *cli.Context) (worker.Client, error) {
	workerURL, apiKey, err := getCredentials(c)
	if err != nil {
		return nil, err
	}
	return worker.NewClient(
		workerURL,
		apiKey,
		apimachinery.RaiseToCaller{},
	), nil
}

// tenantContext scopes a call to the tenant selected on the command line.
func tenantContext(c *cli.Context) *apimachinery.RequestContext {
	return &apimachinery.RequestContext{TenantID: c.String(flagTenant)}
}

// userContext scopes a call to the selected tenant AND a specific user, the
// way the builder calls the worker on a logged-in user's behalf. The API key
// still authenticates the call; the session header names the user.
func userContext(
	c *cli.Context,
	apiKey string,
	userID string,
) *apimachinery.RequestContext {
	headers := http.Header{}
	headers.Set(header.APIKey, apiKey)
	headers.Set(header.SessionID, userID)
	return &apimachinery.RequestContext{
		Headers:  headers,
		TenantID: c.String(flagTenant),
	}
}
