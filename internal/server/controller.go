// Package server serves the interactive dashboard and its JSON API over HTTP.
package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/jgoulah/rentaldash/internal/loader"
	"github.com/jgoulah/rentaldash/internal/log"
)

// Controller represents the dashboard HTTP server
type Controller struct {
	ctx      context.Context
	wg       *sync.WaitGroup
	source   loader.Source
	Server   http.Server
	logger   *zap.SugaredLogger
	handlers *Handlers
	now      func() time.Time
	errs     chan error
}

// NewController creates a new dashboard server listening on addr:port
func NewController(ctx context.Context, wg *sync.WaitGroup, source loader.Source, addr string, port int, logger *zap.SugaredLogger) *Controller {
	ctrl := &Controller{
		ctx:    ctx,
		wg:     wg,
		source: source,
		logger: logger,
		now:    time.Now,
		errs:   make(chan error, 1),
	}

	ctrl.handlers = NewHandlers(ctrl)

	ctrl.Server.Addr = fmt.Sprintf("%v:%v", addr, port)
	ctrl.Server.Handler = ctrl.setupRouter()
	ctrl.Server.ReadHeaderTimeout = 10 * time.Second

	return ctrl
}

// StartController starts the HTTP server and shuts it down when the context ends
func (c *Controller) StartController() error {
	log.Infof("Starting dashboard server on %s...", c.Server.Addr)
	c.wg.Add(1)

	go func() {
		defer c.wg.Done()

		if err := c.Server.ListenAndServe(); err != http.ErrServerClosed {
			log.Errorf("dashboard server error: %v", err)
			c.errs <- fmt.Errorf("serving dashboard: %w", err)
		}
	}()

	go func() {
		<-c.ctx.Done()
		log.Info("Shutting down the dashboard server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		c.Server.Shutdown(shutdownCtx)
	}()

	return nil
}

// Errors receives the error that stopped the server, if it stops on its own
func (c *Controller) Errors() <-chan error {
	return c.errs
}

// setupRouter configures the HTTP router with all endpoints
func (c *Controller) setupRouter() *mux.Router {
	router := mux.NewRouter()
	router.Use(c.loggingMiddleware)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/summary/time-of-day", c.handlers.GetTimeOfDay).Methods(http.MethodGet)
	api.HandleFunc("/summary/day-factors", c.handlers.GetDayFactors).Methods(http.MethodGet)
	api.HandleFunc("/summary/weather", c.handlers.GetWeather).Methods(http.MethodGet)
	api.HandleFunc("/summary", c.handlers.GetReport).Methods(http.MethodGet)
	api.HandleFunc("/span", c.handlers.GetSpan).Methods(http.MethodGet)

	router.HandleFunc("/healthz", c.handlers.Healthz).Methods(http.MethodGet)
	router.HandleFunc("/", c.handlers.ServeDashboard).Methods(http.MethodGet)

	return router
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// loggingMiddleware logs every request with its status and duration
func (c *Controller) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		c.logger.Debugw("request",
			"method", r.Method,
			"path", r.URL.Path,
			"query", r.URL.RawQuery,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
