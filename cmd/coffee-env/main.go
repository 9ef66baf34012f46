package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/coffee-shop-env/internal/auth"
	"github.com/MKhiriev/coffee-shop-env/internal/config"
	"github.com/MKhiriev/coffee-shop-env/internal/logger"
	"github.com/google/uuid"
	"github.com/spf13/pflag"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(os.Stderr)

	cfg, err := config.Get(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		logger.NewLogger("coffee-env", false).Error().Err(err).Msg("error getting configs")
		os.Exit(1)
	}

	log := logger.NewLogger("coffee-env", cfg.Production)
	log.Debug().Any("config", cfg).Msg("received configs")

	if err := run(os.Stdout, cfg, uuid.NewString()); err != nil {
		log.Error().Err(err).Msg("error writing configs")
		os.Exit(1)
	}
}

// run writes the environment document followed by the login link.
func run(w io.Writer, cfg config.EnvironmentConfig, state string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	_, err := fmt.Fprintf(w, "Login link: %s\n", auth.LoginLink(cfg.Auth0, "", state))
	return err
}

func printBuildInfo(w io.Writer) {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Fprintf(w, "Build version: %s\n", buildVersion)
	fmt.Fprintf(w, "Build date: %s\n", buildDate)
	fmt.Fprintf(w, "Build commit: %s\n", buildCommit)
}
