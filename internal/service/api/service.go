package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	_ "github.com/darkkaiser/observability-api/docs"
	"github.com/darkkaiser/observability-api/internal/config"
	"github.com/darkkaiser/observability-api/internal/pkg/version"
	"github.com/darkkaiser/observability-api/internal/service/api/constants"
	"github.com/darkkaiser/observability-api/internal/service/api/handler/observability"
	"github.com/darkkaiser/observability-api/internal/service/api/handler/system"
	applog "github.com/darkkaiser/observability-api/pkg/log"
	"github.com/labstack/echo/v4"
)

// Service runs the HTTP server of the observability API.
//
// Start returns immediately; the server runs on its own goroutine until the
// stop context is cancelled, then shuts down gracefully within
// constants.DefaultShutdownTimeout.
type Service struct {
	appConfig *config.AppConfig

	catalog observability.Catalog

	buildInfo version.Info

	running   bool
	runningMu sync.Mutex
}

// NewService panics when appConfig or catalog is nil.
func NewService(appConfig *config.AppConfig, catalog observability.Catalog, buildInfo version.Info) *Service {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}
	if catalog == nil {
		panic(constants.PanicMsgCatalogRequired)
	}

	return &Service{
		appConfig: appConfig,
		catalog:   catalog,
		buildInfo: buildInfo,
	}
}

// Start launches the server. A second call while running only logs a
// warning and releases serviceStopWG.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarting)

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(constants.ComponentService).Warn(constants.LogMsgServiceAlreadyStarted)
		return nil
	}

	s.running = true

	go s.runServiceLoop(serviceStopCtx, serviceStopWG)

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarted)

	return nil
}

func (s *Service) runServiceLoop(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	e := s.setupServer()

	httpServerDone := make(chan struct{})
	go s.startHTTPServer(e, httpServerDone)

	s.waitForShutdown(serviceStopCtx, e, httpServerDone)
}

func (s *Service) setupServer() *echo.Echo {
	apiConfig := s.appConfig.API

	e := NewHTTPServer(HTTPServerConfig{
		Debug:        s.appConfig.Debug,
		EnableHSTS:   apiConfig.TLSServer,
		AllowOrigins: apiConfig.AllowOrigins,
		RateLimit:    apiConfig.RateLimit,
	})

	SetupRoutes(e, observability.New(s.catalog, nil), system.New(s.buildInfo))

	return e
}

// startHTTPServer blocks until the server stops, then closes done.
func (s *Service) startHTTPServer(e *echo.Echo, done chan struct{}) {
	defer close(done)

	apiConfig := s.appConfig.API
	address := fmt.Sprintf(":%d", apiConfig.ListenPort)

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port": apiConfig.ListenPort,
		"tls":  apiConfig.TLSServer,
	}).Info(constants.LogMsgHTTPServerStarting)

	var err error
	if apiConfig.TLSServer {
		err = e.StartTLS(address, apiConfig.TLSCertFile, apiConfig.TLSKeyFile)
	} else {
		err = e.Start(address)
	}

	s.handleServerError(err)
}

func (s *Service) handleServerError(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, http.ErrServerClosed) {
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgHTTPServerStopped)
		return
	}

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port":  s.appConfig.API.ListenPort,
		"error": err,
	}).Error(constants.LogMsgHTTPServerFatalError)
}

// waitForShutdown returns once the server has fully stopped, either after
// serviceStopCtx is cancelled or because the server exited on its own.
func (s *Service) waitForShutdown(serviceStopCtx context.Context, e *echo.Echo, httpServerDone chan struct{}) {
	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopping)
	case <-httpServerDone:
		applog.WithComponent(constants.ComponentService).Error(constants.LogMsgServiceUnexpectedExit)
		s.cleanup()
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": err,
		}).Error(constants.LogMsgHTTPServerShutdownError)
	}

	<-httpServerDone

	s.cleanup()
}

func (s *Service) cleanup() {
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopped)
}

func (s *Service) isRunning() bool {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	return s.running
}
