package main

import (
	"context"
	"net/http"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"

	"paracheck/internal/checker"
	"paracheck/internal/config"
	"paracheck/internal/server"
)

func main() {
	var configPath string
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`JSON API for paragraph spell-correction and categorization.`)
	flagSet.StringVar(&configPath, "config", "", "paracheck config file (yaml), environment variables override it")
	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not read flags: %s\n", err)
	}

	cfg := config.Default()
	if configPath != "" {
		fileCfg, err := config.NewConfig(configPath)
		if err != nil {
			gologger.Fatal().Msgf("could not read config %s: %v", configPath, err)
		}
		cfg = *fileCfg
	}
	cfg.ApplyEnv()

	chk, err := checker.FromConfig(context.Background(), &cfg)
	if err != nil {
		gologger.Fatal().Msgf("init error: %v", err)
	}

	gologger.Info().Msgf("listening on %s", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, server.NewHandler(chk)); err != nil {
		gologger.Fatal().Msgf("server stopped: %v", err)
	}
}
