// Package workerservice is an in-memory stand-in for the companion worker
// service. Integration tests run against it, and the bbmock binary serves it
// for local development. State is deterministic and process-local.
package workerservice

import (
	"fmt"
	"sort"
	"sync"

	uuid "github.com/satori/go.uuid"

	"github.com/adrinr/budibase/internal/meta"
	"github.com/adrinr/budibase/internal/worker"
)

// SentEmail records one email the mock "sent".
type SentEmail struct {
	worker.SendEmailRequest
	MessageID string `json:"messageId"`
	TenantID  string `json:"tenantId"`
}

// Store holds all of the mock worker service's state behind one mutex.
type Store struct {
	mu             sync.Mutex
	users          map[string]worker.User
	apiKeys        map[string]string // user ID -> personal API key
	outbox         []SentEmail
	roles          map[string][]worker.Role // app ID -> roles
	smtpConfigured bool
}

// NewStore returns an empty Store with SMTP marked as configured, which is
// what most tests want. Use SetSMTPConfigured to exercise the unconfigured
// path.
func NewStore() *Store {
	return &Store{
		users:          map[string]worker.User{},
		apiKeys:        map[string]string{},
		roles:          map[string][]worker.Role{},
		smtpConfigured: true,
	}
}

// SetSMTPConfigured toggles whether the mock accepts email sends.
func (s *Store) SetSMTPConfigured(configured bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.smtpConfigured = configured
}

// SaveUser creates a user when no ID is set and updates one otherwise.
// Emails are unique per tenant.
func (s *Store) SaveUser(user worker.User) (worker.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user.TenantID == "" {
		user.TenantID = "default"
	}
	if user.ID == "" {
		for _, existing := range s.users {
			if existing.TenantID == user.TenantID &&
				existing.Email == user.Email {
				return worker.User{}, &meta.ErrConflict{
					Type:   "User",
					ID:     existing.ID,
					Reason: fmt.Sprintf("A user with the email %q already exists.", user.Email),
				}
			}
		}
		user.ID = fmt.Sprintf("us_%s", uuid.NewV4().String())
		user.Rev = fmt.Sprintf("1-%s", uuid.NewV4().String())
		if user.Status == "" {
			user.Status = "active"
		}
	} else {
		existing, ok := s.users[user.ID]
		if !ok {
			return worker.User{}, &meta.ErrNotFound{Type: "User", ID: user.ID}
		}
		if user.Rev != existing.Rev {
			return worker.User{}, &meta.ErrConflict{
				Type:   "User",
				ID:     user.ID,
				Reason: "Document update conflict.",
			}
		}
		user.Rev = fmt.Sprintf("2-%s", uuid.NewV4().String())
	}
	// Passwords never come back out of the store
	user.Password = ""
	s.users[user.ID] = user
	return user, nil
}

// ListUsers returns the tenant's users ordered by email.
func (s *Store) ListUsers(tenantID string) []worker.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := []worker.User{}
	for _, user := range s.users {
		if user.TenantID == tenantID {
			users = append(users, user)
		}
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].Email < users[j].Email
	})
	return users
}

// GetUser returns one user by ID.
func (s *Store) GetUser(id string) (worker.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return worker.User{}, &meta.ErrNotFound{Type: "User", ID: id}
	}
	return user, nil
}

// DeleteUser removes one user by ID, along with any personal API key.
func (s *Store) DeleteUser(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return &meta.ErrNotFound{Type: "User", ID: id}
	}
	delete(s.users, id)
	delete(s.apiKeys, id)
	return nil
}

// FindUserIDByAPIKey resolves a personal API key to its owner's user ID.
func (s *Store) FindUserIDByAPIKey(apiKey string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for userID, key := range s.apiKeys {
		if key == apiKey {
			return userID, nil
		}
	}
	return "", &meta.ErrNotFound{Type: "APIKey"}
}

// RecordEmail appends an email to the outbox and returns its receipt.
func (s *Store) RecordEmail(
	req worker.SendEmailRequest,
	tenantID string,
) (SentEmail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.smtpConfigured {
		return SentEmail{}, meta.NewErrBadRequest("SMTP is not configured")
	}
	sent := SentEmail{
		SendEmailRequest: req,
		MessageID:        fmt.Sprintf("em_%s", uuid.NewV4().String()),
		TenantID:         tenantID,
	}
	s.outbox = append(s.outbox, sent)
	return sent, nil
}

// Outbox returns a copy of every email recorded so far.
func (s *Store) Outbox() []SentEmail {
	s.mu.Lock()
	defer s.mu.Unlock()
	outbox := make([]SentEmail, len(s.outbox))
	copy(outbox, s.outbox)
	return outbox
}

// GenerateAPIKey creates (or rotates) a user's personal API key.
func (s *Store) GenerateAPIKey(userID string) (worker.APIKey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[userID]; !ok {
		return worker.APIKey{}, &meta.ErrNotFound{Type: "User", ID: userID}
	}
	key := fmt.Sprintf("bb_%s", uuid.NewV4().String())
	s.apiKeys[userID] = key
	return worker.APIKey{UserID: userID, APIKey: key}, nil
}

// FetchAPIKey returns a user's personal API key.
func (s *Store) FetchAPIKey(userID string) (worker.APIKey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key, ok := s.apiKeys[userID]
	if !ok {
		return worker.APIKey{}, &meta.ErrNotFound{Type: "APIKey", ID: userID}
	}
	return worker.APIKey{UserID: userID, APIKey: key}, nil
}

// SaveRoles replaces the roles defined for one app.
func (s *Store) SaveRoles(appID string, roles []worker.Role) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roles[appID] = roles
}

// RolesForApp returns the roles defined for one app.
func (s *Store) RolesForApp(appID string) (worker.AppRoles, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	roles, ok := s.roles[appID]
	if !ok {
		return worker.AppRoles{}, &meta.ErrNotFound{Type: "App", ID: appID}
	}
	return worker.AppRoles{Roles: roles}, nil
}

// RemoveRoles deletes all roles defined for one app.
func (s *Store) RemoveRoles(appID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.roles[appID]; !ok {
		return &meta.ErrNotFound{Type: "App", ID: appID}
	}
	delete(s.roles, appID)
	return nil
}

// Checklist derives the tenant's setup checklist from store state.
func (s *Store) Checklist(tenantID string) worker.Checklist {
	s.mu.Lock()
	defer s.mu.Unlock()
	adminUser := false
	anyUser := false
	for _, user := range s.users {
		if user.TenantID != tenantID {
			continue
		}
		anyUser = true
		if user.Admin != nil && user.Admin.Global {
			adminUser = true
		}
	}
	return worker.Checklist{
		"apps": worker.ChecklistItem{
			Checked: len(s.roles) > 0,
			Label:   "Create your first app",
		},
		"smtp": worker.ChecklistItem{
			Checked: s.smtpConfigured,
			Label:   "Set up email",
		},
		"adminUser": worker.ChecklistItem{
			Checked: adminUser,
			Label:   "Create your first admin user",
		},
		"anyUser": worker.ChecklistItem{
			Checked: anyUser,
			Label:   "Invite your team",
		},
	}
}
