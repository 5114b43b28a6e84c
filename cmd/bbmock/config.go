package main

import "github.com/kelseyhightower/envconfig"

const envconfigPrefix = "BBMOCK"

type config struct {
	WorkerPort     int    `envconfig:"WORKER_PORT" default:"4002"`
	SheetsPort     int    `envconfig:"SHEETS_PORT" default:"4010"`
	InternalAPIKey string `envconfig:"INTERNAL_API_KEY" default:"budibase"`
	TLSEnabled     bool   `envconfig:"TLS_ENABLED"`
	TLSCertPath    string `envconfig:"TLS_CERT_PATH"`
	TLSKeyPath     string `envconfig:"TLS_KEY_PATH"`
}

// getConfigFromEnvironment returns configuration derived from environment
// variables.
func getConfigFromEnvironment() (config, error) {
	c := config{}
	err := envconfig.Process(envconfigPrefix, &c)
	return c, err
}
