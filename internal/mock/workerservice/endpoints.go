package workerservice

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/adrinr/budibase/internal/header"
	"github.com/adrinr/budibase/internal/lib/restmachinery"
	"github.com/adrinr/budibase/internal/lib/restmachinery/authn"
	"github.com/adrinr/budibase/internal/meta"
	"github.com/adrinr/budibase/internal/worker"
)

type endpoints struct {
	*restmachinery.BaseEndpoints
	store *Store
}

// NewEndpoints returns the mock worker service's endpoint collection.
func NewEndpoints(
	baseEndpoints *restmachinery.BaseEndpoints,
	store *Store,
) restmachinery.Endpoints {
	return &endpoints{
		BaseEndpoints: baseEndpoints,
		store:         store,
	}
}

func (e *endpoints) Register(router *mux.Router) {
	// Send email
	router.HandleFunc(
		"/api/global/email/send",
		e.AuthFilter.Decorate(e.sendEmail),
	).Methods(http.MethodPost)

	// List users
	router.HandleFunc(
		"/api/global/users",
		e.AuthFilter.Decorate(e.listUsers),
	).Methods(http.MethodGet)

	// Save user
	router.HandleFunc(
		"/api/global/users",
		e.AuthFilter.Decorate(e.saveUser),
	).Methods(http.MethodPost)

	// Get user
	router.HandleFunc(
		"/api/global/users/{id}",
		e.AuthFilter.Decorate(e.getUser),
	).Methods(http.MethodGet)

	// Delete user
	router.HandleFunc(
		"/api/global/users/{id}",
		e.AuthFilter.Decorate(e.deleteUser),
	).Methods(http.MethodDelete)

	// Setup checklist
	router.HandleFunc(
		"/api/global/configs/checklist",
		e.AuthFilter.Decorate(e.checklist),
	).Methods(http.MethodGet)

	// Generate own API key
	router.HandleFunc(
		"/api/global/self/api_key",
		e.AuthFilter.Decorate(e.generateAPIKey),
	).Methods(http.MethodPost)

	// Fetch own API key
	router.HandleFunc(
		"/api/global/self/api_key",
		e.AuthFilter.Decorate(e.fetchAPIKey),
	).Methods(http.MethodGet)

	// Get app roles
	router.HandleFunc(
		"/api/global/roles/{appId}",
		e.AuthFilter.Decorate(e.getRoles),
	).Methods(http.MethodGet)

	// Remove app roles
	router.HandleFunc(
		"/api/global/roles/{appId}",
		e.AuthFilter.Decorate(e.removeRoles),
	).Methods(http.MethodDelete)
}

// tenantID scopes a request to the tenant named by its tenant header,
// falling back to the default tenant.
func tenantID(r *http.Request) string {
	if tenant := r.Header.Get(header.TenantID); tenant != "" {
		return tenant
	}
	return "default"
}

// callingUserID resolves the user a "self" request refers to: the
// authenticated key owner when a personal API key was used, otherwise the
// session header a system call forwards on a user's behalf.
func callingUserID(r *http.Request) string {
	if userID := authn.CallerFromContext(r.Context()); userID != "" {
		return userID
	}
	return r.Header.Get(header.SessionID)
}

// echoCorrelationID reflects the inbound correlation ID so callers can
// assert it round-tripped.
func echoCorrelationID(w http.ResponseWriter, r *http.Request) {
	if correlationID := r.Header.Get(header.CorrelationID); correlationID != "" {
		w.Header().Set(header.CorrelationID, correlationID)
	}
}

func (e *endpoints) sendEmail(w http.ResponseWriter, r *http.Request) {
	echoCorrelationID(w, r)
	req := worker.SendEmailRequest{}
	e.ServeRequest(
		restmachinery.InboundRequest{
			W:                   w,
			R:                   r,
			ReqBodySchemaLoader: sendEmailSchemaLoader,
			ReqBodyObj:          &req,
			EndpointLogic: func() (interface{}, error) {
				sent, err := e.store.RecordEmail(req, tenantID(r))
				if err != nil {
					return nil, err
				}
				return worker.SendEmailResponse{
					Message:   "Email sent.",
					MessageID: sent.MessageID,
				}, nil
			},
			SuccessCode: http.StatusOK,
		},
	)
}

func (e *endpoints) listUsers(w http.ResponseWriter, r *http.Request) {
	echoCorrelationID(w, r)
	e.ServeRequest(
		restmachinery.InboundRequest{
			W: w,
			R: r,
			EndpointLogic: func() (interface{}, error) {
				return e.store.ListUsers(tenantID(r)), nil
			},
			SuccessCode: http.StatusOK,
		},
	)
}

func (e *endpoints) saveUser(w http.ResponseWriter, r *http.Request) {
	echoCorrelationID(w, r)
	user := worker.User{}
	e.ServeRequest(
		restmachinery.InboundRequest{
			W:                   w,
			R:                   r,
			ReqBodySchemaLoader: userSchemaLoader,
			ReqBodyObj:          &user,
			EndpointLogic: func() (interface{}, error) {
				if user.TenantID == "" {
					user.TenantID = tenantID(r)
				}
				return e.store.SaveUser(user)
			},
			SuccessCode: http.StatusOK,
		},
	)
}

func (e *endpoints) getUser(w http.ResponseWriter, r *http.Request) {
	echoCorrelationID(w, r)
	e.ServeRequest(
		restmachinery.InboundRequest{
			W: w,
			R: r,
			EndpointLogic: func() (interface{}, error) {
				return e.store.GetUser(mux.Vars(r)["id"])
			},
			SuccessCode: http.StatusOK,
		},
	)
}

func (e *endpoints) deleteUser(w http.ResponseWriter, r *http.Request) {
	echoCorrelationID(w, r)
	e.ServeRequest(
		restmachinery.InboundRequest{
			W: w,
			R: r,
			EndpointLogic: func() (interface{}, error) {
				if err := e.store.DeleteUser(mux.Vars(r)["id"]); err != nil {
					return nil, err
				}
				return worker.Message{Message: "User deleted."}, nil
			},
			SuccessCode: http.StatusOK,
		},
	)
}

func (e *endpoints) checklist(w http.ResponseWriter, r *http.Request) {
	echoCorrelationID(w, r)
	e.ServeRequest(
		restmachinery.InboundRequest{
			W: w,
			R: r,
			EndpointLogic: func() (interface{}, error) {
				return e.store.Checklist(tenantID(r)), nil
			},
			SuccessCode: http.StatusOK,
		},
	)
}

func (e *endpoints) generateAPIKey(w http.ResponseWriter, r *http.Request) {
	echoCorrelationID(w, r)
	e.ServeRequest(
		restmachinery.InboundRequest{
			W: w,
			R: r,
			EndpointLogic: func() (interface{}, error) {
				userID := callingUserID(r)
				if userID == "" {
					return nil, meta.NewErrBadRequest(
						"No calling user to generate an API key for.",
					)
				}
				return e.store.GenerateAPIKey(userID)
			},
			SuccessCode: http.StatusOK,
		},
	)
}

func (e *endpoints) fetchAPIKey(w http.ResponseWriter, r *http.Request) {
	echoCorrelationID(w, r)
	e.ServeRequest(
		restmachinery.InboundRequest{
			W: w,
			R: r,
			EndpointLogic: func() (interface{}, error) {
				userID := callingUserID(r)
				if userID == "" {
					return nil, meta.NewErrBadRequest(
						"No calling user to fetch an API key for.",
					)
				}
				return e.store.FetchAPIKey(userID)
			},
			SuccessCode: http.StatusOK,
		},
	)
}

func (e *endpoints) getRoles(w http.ResponseWriter, r *http.Request) {
	echoCorrelationID(w, r)
	e.ServeRequest(
		restmachinery.InboundRequest{
			W: w,
			R: r,
			EndpointLogic: func() (interface{}, error) {
				return e.store.RolesForApp(mux.Vars(r)["appId"])
			},
			SuccessCode: http.StatusOK,
		},
	)
}

func (e *endpoints) removeRoles(w http.ResponseWriter, r *http.Request) {
	echoCorrelationID(w, r)
	e.ServeRequest(
		restmachinery.InboundRequest{
			W: w,
			R: r,
			EndpointLogic: func() (interface{}, error) {
				if err := e.store.RemoveRoles(mux.Vars(r)["appId"]); err != nil {
					return nil, err
				}
				return worker.Message{Message: "Roles deleted."}, nil
			},
			SuccessCode: http.StatusOK,
		},
	)
}
