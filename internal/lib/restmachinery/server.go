// Package restmachinery provides the plumbing shared by this project's HTTP
// services: a mux-based server with CORS and h2c support, endpoint
// registration, request serving with JSON Schema body validation, and
// mapping of typed API errors onto HTTP response codes.
package restmachinery

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

// ServerConfig represents optional configuration for a REST server.
type ServerConfig struct {
	// Port specifies the port the server binds to.
	Port int
	// TLSEnabled turns TLS on when the cert and key files both exist.
	TLSEnabled  bool
	TLSCertPath string
	TLSKeyPath  string
}

// Server is an interface for the component that responds to HTTP API
// requests.
type Server interface {
	// ListenAndServe causes the server to start serving HTTP requests. It will
	// block until an error occurs and will return that error.
	ListenAndServe() error
}

type server struct {
	*BaseEndpoints
	config  ServerConfig
	handler http.Handler
}

// NewServer returns a REST server over the given endpoint collections.
func NewServer(
	config ServerConfig,
	baseEndpoints *BaseEndpoints,
	endpoints []Endpoints,
) Server {
	router := mux.NewRouter()
	router.StrictSlash(true)

	for _, eps := range endpoints {
		eps.Register(router)
	}

	s := &server{
		BaseEndpoints: baseEndpoints,
		config:        config,
		handler: cors.New(
			cors.Options{
				AllowedMethods: []string{"DELETE", "GET", "POST", "PUT"},
			},
		).Handler(router),
	}

	// Health check
	router.HandleFunc(
		"/healthz",
		s.checkHealth, // No filters applied to this request
	).Methods(http.MethodGet)

	return s
}

func (s *server) ListenAndServe() error {
	address := fmt.Sprintf(":%d", s.config.Port)
	if s.config.TLSEnabled &&
		fileExists(s.config.TLSCertPath) &&
		fileExists(s.config.TLSKeyPath) {
		log.Printf(
			"server is listening with TLS enabled on 0.0.0.0:%d",
			s.config.Port,
		)
		return http.ListenAndServeTLS(
			address,
			s.config.TLSCertPath,
			s.config.TLSKeyPath,
			s.handler,
		)
	}
	log.Printf(
		"server is listening without TLS on 0.0.0.0:%d",
		s.config.Port,
	)
	return http.ListenAndServe(
		address,
		h2c.NewHandler(s.handler, &http2.Server{}),
	)
}

func (s *server) checkHealth(w http.ResponseWriter, r *http.Request) {
	s.ServeRequest(
		InboundRequest{
			W: w,
			R: r,
			EndpointLogic: func() (interface{}, error) {
				return struct{}{}, nil
			},
			SuccessCode: http.StatusOK,
		},
	)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
