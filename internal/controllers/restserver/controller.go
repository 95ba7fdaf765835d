// Package restserver exposes the flight-planning engine to the UI over
// HTTP: aircraft profile CRUD, envelope editing and validation, and
// weight-and-balance computation.
package restserver

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/skyplan/skyplan/internal/log"
	"github.com/skyplan/skyplan/internal/storage"
	"github.com/skyplan/skyplan/pkg/config"
	"github.com/skyplan/skyplan/pkg/profile"
)

// Controller represents the REST server controller
type Controller struct {
	ctx        context.Context
	wg         *sync.WaitGroup
	httpConfig config.HTTPData
	Server     http.Server
	Profiles   *profile.Store
	Records    chan<- storage.TripRecord
	logger     *zap.SugaredLogger
	handlers   *Handlers
}

// NewController creates a new REST server controller
func NewController(ctx context.Context, wg *sync.WaitGroup, hc config.HTTPData, profiles *profile.Store, records chan<- storage.TripRecord, logger *zap.SugaredLogger) (*Controller, error) {
	if profiles == nil {
		return nil, fmt.Errorf("REST server requires a profile store")
	}

	ctrl := &Controller{
		ctx:        ctx,
		wg:         wg,
		httpConfig: hc,
		Profiles:   profiles,
		Records:    records,
		logger:     logger,
	}

	// If a listen address was not provided, listen on all interfaces
	if ctrl.httpConfig.ListenAddr == "" {
		logger.Info("http.listen_addr not provided; defaulting to 0.0.0.0 (all interfaces)")
		ctrl.httpConfig.ListenAddr = "0.0.0.0"
	}
	if ctrl.httpConfig.Port == 0 {
		logger.Info("http.port not provided; defaulting to 8080")
		ctrl.httpConfig.Port = 8080
	}

	ctrl.handlers = NewHandlers(ctrl)

	router := ctrl.setupRouter()
	ctrl.Server.Addr = fmt.Sprintf("%v:%v", ctrl.httpConfig.ListenAddr, ctrl.httpConfig.Port)
	ctrl.Server.Handler = router

	return ctrl, nil
}

// StartController starts the REST server
func (c *Controller) StartController() error {
	log.Info("Starting REST server controller...")
	c.wg.Add(1)

	go func() {
		defer c.wg.Done()

		if c.httpConfig.TLSCertPath != "" && c.httpConfig.TLSKeyPath != "" {
			if err := c.Server.ListenAndServeTLS(c.httpConfig.TLSCertPath, c.httpConfig.TLSKeyPath); err != http.ErrServerClosed {
				log.Errorf("REST server error: %v", err)
			}
		} else {
			if err := c.Server.ListenAndServe(); err != http.ErrServerClosed {
				log.Errorf("REST server error: %v", err)
			}
		}
	}()

	go func() {
		<-c.ctx.Done()
		log.Info("Shutting down the REST server...")
		c.Server.Shutdown(context.Background())
	}()

	return nil
}

// setupRouter configures the HTTP router with all endpoints
func (c *Controller) setupRouter() *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/api/status", c.handlers.GetStatus).Methods(http.MethodGet)

	router.HandleFunc("/api/aircraft", c.handlers.ListAircraft).Methods(http.MethodGet)
	router.HandleFunc("/api/aircraft", c.handlers.CreateAircraft).Methods(http.MethodPost)
	router.HandleFunc("/api/aircraft/{id}", c.handlers.GetAircraft).Methods(http.MethodGet)
	router.HandleFunc("/api/aircraft/{id}", c.handlers.UpdateAircraft).Methods(http.MethodPut)
	router.HandleFunc("/api/aircraft/{id}", c.handlers.DeleteAircraft).Methods(http.MethodDelete)

	router.HandleFunc("/api/aircraft/{id}/envelope", c.handlers.GetEnvelopes).Methods(http.MethodGet)
	router.HandleFunc("/api/aircraft/{id}/envelope/{category}", c.handlers.UpdateEnvelope).Methods(http.MethodPut)
	router.HandleFunc("/api/aircraft/{id}/envelope/{category}/sort", c.handlers.SortEnvelope).Methods(http.MethodPost)

	router.HandleFunc("/api/aircraft/{id}/wb", c.handlers.ComputeWB).Methods(http.MethodPost)

	return router
}
