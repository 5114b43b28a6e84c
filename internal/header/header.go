// Package header enumerates the platform's internal HTTP header names and
// defines which inbound headers may be forwarded to other services.
package header

// Platform header names. These are shared wire-level constants; membership
// in the forwarding allow-list below is deliberate and narrow.
const (
	// APIKey carries a caller's API key. For calls with no end-user session,
	// it carries the internal service-to-service key.
	APIKey = "x-budibase-api-key"
	// TenantID identifies the tenant a request is scoped to.
	TenantID = "x-budibase-tenant-id"
	// AppID identifies the app a request originated from.
	AppID = "x-budibase-app-id"
	// SessionID identifies an end-user session.
	SessionID = "x-budibase-session-id"
	// CorrelationID tags every request belonging to one logical operation so
	// logs can be correlated across services.
	CorrelationID = "x-budibase-correlation-id"
)

// Forwarded is the fixed set of inbound header names that may be copied onto
// an outbound request. Headers outside this set are never forwarded; copying
// arbitrary inbound headers (content negotiation headers in particular) has
// broken downstream services before.
var Forwarded = []string{
	"Cookie",
	"Authorization",
	APIKey,
	AppID,
	SessionID,
}
