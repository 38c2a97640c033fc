package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/darkkaiser/observability-api/internal/config"
	apperrors "github.com/darkkaiser/observability-api/internal/pkg/errors"
	"github.com/darkkaiser/observability-api/internal/pkg/version"
	"github.com/darkkaiser/observability-api/internal/service"
	"github.com/darkkaiser/observability-api/internal/service/api"
	"github.com/darkkaiser/observability-api/internal/service/catalog"
	applog "github.com/darkkaiser/observability-api/pkg/log"
	"github.com/spf13/pflag"
)

// @title Observabilité - OpenAPI 3.1
// @version 1.0.2
// @description Points d'observabilité d'un système d'information : informations de gouvernance (/info) et état de santé (/health), en JSON ou en YAML.

// @contact.name Nom Direction Application
// @contact.email adresse.a.definir@intradef.gouv.fr

// @license.name Apache 2.0
// @license.url https://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath /

// Build information, injected with -ldflags "-X main.Version=...".
var (
	Version     = "dev"
	Commit      = ""
	BuildDate   = "unknown"
	BuildNumber = "0"
)

const banner = `
   ___  _                              _     _ _ _ _
  / _ \| |__  ___  ___ _ ____   ____ _| |__ (_) (_) |_ _   _
 | | | | '_ \/ __|/ _ \ '__\ \ / / _' | '_ \| | | | __| | | |
 | |_| | |_) \__ \  __/ |   \ V / (_| | |_) | | | | |_| |_| |
  \___/|_.__/|___/\___|_|    \_/ \__,_|_.__/|_|_|_|\__|\__, |
                                                       |___/  %s
--------------------------------------------------------------------------------
`

func main() {
	appConfig, err := loadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	var logOpts applog.Options
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentOptions(config.AppName)
	} else {
		logOpts = applog.NewProductionOptions(config.AppName)
	}

	logCloser, err := applog.Setup(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	applog.SetDebugMode(appConfig.Debug)

	version.Set(version.Info{
		Version:     Version,
		Commit:      Commit,
		BuildDate:   BuildDate,
		BuildNumber: BuildNumber,
	})
	buildInfo := version.Get()

	fmt.Printf(banner, buildInfo.String())

	fields := applog.Fields(buildInfo.ToMap())
	fields["debug"] = appConfig.Debug
	applog.WithComponentAndFields("main", fields).Info("initializing")

	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent("main").Warn(warning)
	}

	cat, err := catalog.New(appConfig.Observability)
	if err != nil {
		applog.WithComponentAndFields("main", errorFields(err)).Fatal("invalid observability data")
	}

	apiService := api.NewService(appConfig, cat, buildInfo)

	serviceStopCtx, cancel := context.WithCancel(context.Background())
	serviceStopWG := &sync.WaitGroup{}

	services := []service.Service{apiService}
	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			applog.WithComponentAndFields("main", errorFields(err)).Error("failed to start service")

			cancel()
			serviceStopWG.Wait()

			applog.WithComponent("main").Fatal("exiting: a service failed to start")
		}
	}

	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)

	applog.WithComponentAndFields("main", applog.Fields{
		"port": appConfig.API.ListenPort,
	}).Info("ready")

	<-termC

	applog.WithComponent("main").Info("shutdown signal received")
	cancel()
	serviceStopWG.Wait()
}

// errorFields describes a startup failure: the full chain, the classification
// of the innermost AppError and the error that started it.
func errorFields(err error) applog.Fields {
	return applog.Fields{
		"error":      err,
		"error_type": apperrors.UnderlyingType(err).String(),
		"root_cause": apperrors.RootCause(err).Error(),
	}
}

// loadConfig parses the command line and loads the configuration from the
// file given with --config, or from the default file when present.
func loadConfig(args []string) (*config.AppConfig, error) {
	flags := pflag.NewFlagSet(config.AppName, pflag.ContinueOnError)
	configFile := flags.StringP("config", "c", "", "path of the JSON configuration file (default "+config.DefaultFilename+" if present)")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	if *configFile != "" {
		return config.LoadWithFile(*configFile)
	}
	return config.Load()
}
