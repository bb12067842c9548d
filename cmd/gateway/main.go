package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-chat-gate/internal/config"
	"github.com/MKhiriev/go-chat-gate/internal/handler"
	"github.com/MKhiriev/go-chat-gate/internal/logger"
	"github.com/MKhiriev/go-chat-gate/internal/server"
	"github.com/MKhiriev/go-chat-gate/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).String())

	log := logger.NewLogger("go-chat-gateway")
	cfg, err := config.GetGatewayConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	handlers, err := handler.NewHandlers(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
