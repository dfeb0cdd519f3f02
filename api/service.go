package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	db "github.com/Drolfothesgnir/mdhtml/db/sqlc"
	"github.com/Drolfothesgnir/mdhtml/markdown"
	"github.com/Drolfothesgnir/mdhtml/tmpstore"
	"github.com/Drolfothesgnir/mdhtml/util"
	"github.com/gin-gonic/gin"
)

const (
	// api routes
	PingURL      = "/ping"
	RenderURL    = "/render"
	TokenizeURL  = "/tokenize"
	DocumentsURL = "/documents"

	RequestIDHeader = "X-Request-Id"
)

var (
	// api errors
	ErrInvalidParams     = errors.New("invalid params")
	ErrInvalidDocumentID = errors.New("invalid document id")
	ErrDocumentNotFound  = errors.New("document not found")
	ErrInputTooLarge     = errors.New("markdown input is too large")
	ErrNothingToUpdate   = errors.New("nothing to update")
)

type Service struct {
	config    util.Config
	store     db.Store
	cache     tmpstore.Store
	converter markdown.Converter
	server    *http.Server
	router    *gin.Engine
}

// NewService returns new service instance with provided config, document store and render cache.
// The cache is optional: with a nil cache every request is rendered.
func NewService(
	config util.Config,
	store db.Store,
	cache tmpstore.Store,
) (*Service, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("cannot create service: %w", err)
	}

	service := &Service{
		config: config,
		store:  store,
		cache:  cache,
		converter: markdown.NewEngine(markdown.Options{
			WarningPolicy: markdown.WarnOverflowTrunc,
			MaxWarnings:   config.MaxWarnings,
		}),
	}

	server := &http.Server{
		Addr: config.HTTPServerAddress,
	}

	// caps how long a client can take to send just the headers (blocks slowloris).
	server.ReadHeaderTimeout = 5 * time.Second
	// caps time to read the full request (incl. body).
	server.ReadTimeout = 10 * time.Second
	// caps time you’ll spend writing the response (no “forever hanging” clients)
	server.WriteTimeout = 15 * time.Second
	// how long to keep idle keep-alive connections open.
	server.IdleTimeout = 60 * time.Second

	service.setupRouter(server)

	service.server = server

	return service, nil
}

// Start runs the HTTP server
func (service *Service) Start() error {
	return service.server.ListenAndServe()
}

func (service *Service) Shutdown(ctx context.Context) error {
	return service.server.Shutdown(ctx)
}
