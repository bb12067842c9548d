package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-chat-gate/internal/adapter"
	"github.com/MKhiriev/go-chat-gate/internal/client"
	"github.com/MKhiriev/go-chat-gate/internal/config"
	"github.com/MKhiriev/go-chat-gate/internal/crypto"
	"github.com/MKhiriev/go-chat-gate/internal/logger"
	"github.com/MKhiriev/go-chat-gate/internal/service"
	"github.com/MKhiriev/go-chat-gate/internal/store"
	"github.com/MKhiriev/go-chat-gate/internal/tui"
	"github.com/MKhiriev/go-chat-gate/internal/utils"
	"github.com/MKhiriev/go-chat-gate/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo.String())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	log := logger.NewClientLogger("go-chat-client")
	ctx = log.WithContext(ctx)

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, utils.NewHasher(cfg.App.IdentityHashKey), log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	authAdapter, err := adapter.NewHTTPAuthAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create auth adapter")
	}

	gatewayAdapter, err := adapter.NewHTTPGatewayAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create gateway adapter")
	}

	services := service.NewClientServices(localStorage, authAdapter, gatewayAdapter, crypto.NewRSAEncryptor(), cfg.App, log)

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, log, localStorage.Credentials)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		os.Exit(1)
	}
}
