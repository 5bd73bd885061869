// Command fakeapi serves an in-memory student-portal Users API for local
// demos of the client.
package main

import (
	"fmt"

	"github.com/MKhiriev/student-portal/internal/config"
	"github.com/MKhiriev/student-portal/internal/export"
	"github.com/MKhiriev/student-portal/internal/fakeapi"
	handler "github.com/MKhiriev/student-portal/internal/handler/http"
	"github.com/MKhiriev/student-portal/internal/logger"
	"github.com/MKhiriev/student-portal/internal/server"
	"github.com/MKhiriev/student-portal/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("fakeapi")
	cfg, err := config.GetFakeAPIConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	directory := fakeapi.NewDirectory()
	if cfg.SeedFile != "" {
		users, err := export.ReadUsers(cfg.SeedFile)
		if err != nil {
			log.Fatal().Err(err).Str("seed_file", cfg.SeedFile).Msg("error reading seed workbook")
		}
		if err = directory.Seed(cfg.AdminID, users); err != nil {
			log.Fatal().Err(err).Msg("error seeding directory")
		}
		log.Info().Int("users", len(users)).Str("admin_id", cfg.AdminID).Msg("directory seeded")
	}

	h := handler.NewHandler(directory, buildInfo, log)
	srv, err := server.NewServer(h.Init(), cfg.Address, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
