package worker

// GlobalFlag marks a permission as applying across all apps.
type GlobalFlag struct {
	Global bool `json:"global"`
}

// User represents a platform user as the worker service stores it.
type User struct {
	ID       string `json:"_id,omitempty"`
	Rev      string `json:"_rev,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Status   string `json:"status,omitempty"`
	TenantID string `json:"tenantId,omitempty"`

	// Roles maps app IDs to the role the user holds in that app.
	Roles   map[string]string `json:"roles,omitempty"`
	Builder *GlobalFlag       `json:"builder,omitempty"`
	Admin   *GlobalFlag       `json:"admin,omitempty"`
}

// SendEmailRequest describes an email for the worker service to send.
type SendEmailRequest struct {
	// Email is the recipient address.
	Email string `json:"email"`
	// Purpose selects the template the worker renders, e.g. "invitation" or
	// "password_recovery".
	Purpose string `json:"purpose"`
	// Contents optionally overrides the template body.
	Contents string `json:"contents,omitempty"`
	// From optionally overrides the configured sender address.
	From string `json:"from,omitempty"`
	// Subject optionally overrides the template subject.
	Subject string `json:"subject,omitempty"`
}

// SendEmailResponse reports a sent email.
type SendEmailResponse struct {
	Message   string `json:"message,omitempty"`
	MessageID string `json:"messageId,omitempty"`
}

// Message is a generic acknowledgement body returned by several worker
// endpoints.
type Message struct {
	Message string `json:"message"`
}

// ChecklistItem is one step of the setup checklist.
type ChecklistItem struct {
	Checked bool   `json:"checked"`
	Label   string `json:"label,omitempty"`
	Link    string `json:"link,omitempty"`
}

// Checklist maps checklist step names to their states.
type Checklist map[string]ChecklistItem

// APIKey carries a user's personal API key.
type APIKey struct {
	UserID string `json:"userId,omitempty"`
	APIKey string `json:"apiKey"`
}

// Role represents an app role as the worker service stores it.
type Role struct {
	ID           string `json:"_id,omitempty"`
	Name         string `json:"name"`
	Inherits     string `json:"inherits,omitempty"`
	PermissionID string `json:"permissionId,omitempty"`
}

// AppRoles is the worker's response for one app's roles.
type AppRoles struct {
	Roles []Role `json:"roles"`
}
