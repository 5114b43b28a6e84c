// Package worker provides typed clients for the companion worker service,
// which owns global (cross-app, per-tenant) concerns: email, user accounts,
// personal API keys, setup checklists, and app roles. All clients forward
// allow-listed inbound headers, tenant scope, and a correlation ID on every
// call.
package worker

import (
	"net/http"

	"github.com/adrinr/budibase/internal/lib/apimachinery"
)

// Client is the general interface for the worker service. It does little
// more than expose functions for obtaining more specialized clients for
// different areas of concern, like user management or email.
type Client interface {
	// Email returns a specialized client for sending email.
	Email() EmailClient
	// Users returns a specialized client for user management.
	Users() UsersClient
	// Self returns a specialized client for the calling user's own resources.
	Self() SelfClient
	// Configs returns a specialized client for global configuration.
	Configs() ConfigsClient
	// Roles returns a specialized client for app role management.
	Roles() RolesClient
}

type client struct {
	emailClient   EmailClient
	usersClient   UsersClient
	selfClient    SelfClient
	configsClient ConfigsClient
	rolesClient   RolesClient
}

// NewClient returns a worker service client. The sink selects how failed
// calls are surfaced; nil raises them to the caller as ordinary errors.
func NewClient(
	workerURL string,
	internalAPIKey string,
	sink apimachinery.FailureSink,
) Client {
	return &client{
		emailClient:   NewEmailClient(workerURL, internalAPIKey, sink),
		usersClient:   NewUsersClient(workerURL, internalAPIKey, sink),
		selfClient:    NewSelfClient(workerURL, internalAPIKey, sink),
		configsClient: NewConfigsClient(workerURL, internalAPIKey, sink),
		rolesClient:   NewRolesClient(workerURL, internalAPIKey, sink),
	}
}

func (c *client) Email() EmailClient {
	return c.emailClient
}

func (c *client) Users() UsersClient {
	return c.usersClient
}

func (c *client) Self() SelfClient {
	return c.selfClient
}

func (c *client) Configs() ConfigsClient {
	return c.configsClient
}

func (c *client) Roles() RolesClient {
	return c.rolesClient
}

// baseClient couples the shared request machinery with the failure sink all
// of one client's calls report through.
type baseClient struct {
	*apimachinery.BaseClient
	sink apimachinery.FailureSink
}

func newBaseClient(
	workerURL string,
	internalAPIKey string,
	sink apimachinery.FailureSink,
) *baseClient {
	return &baseClient{
		BaseClient: &apimachinery.BaseClient{
			BaseURL:        workerURL,
			InternalAPIKey: internalAPIKey,
			HTTPClient:     &http.Client{},
		},
		sink: sink,
	}
}
