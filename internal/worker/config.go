package worker

import "github.com/kelseyhightower/envconfig"

// Config represents configuration for reaching the worker service, derived
// from the environment.
type Config struct {
	// WorkerURL is the base URL of the worker service.
	WorkerURL string `envconfig:"WORKER_URL"`
	// InternalAPIKey authenticates system-to-system calls, i.e. calls made
	// with no end-user session. Optional; when unset, such calls carry no API
	// key header.
	InternalAPIKey string `envconfig:"INTERNAL_API_KEY"`
}

// GetConfigFromEnvironment returns configuration derived from environment
// variables.
func GetConfigFromEnvironment() (Config, error) {
	c := Config{}
	err := envconfig.Process("", &c)
	return c, err
}
