package main

import (
	"log"
	"time"

	"github.com/caarlos0/env/v6"
	"go.uber.org/zap"

	"studysync/internal/app"
	"studysync/internal/identity"
	"studysync/internal/kvstore"
	"studysync/internal/storage"
)

// EnvConfig defines fields used for parsing from environment variables
type EnvConfig struct {
	DataDir      string `env:"DATA_DIR" envDefault:"data"`
	LoginDelayMS int    `env:"LOGIN_DELAY_MS" envDefault:"800"`
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("zap.NewDevelopment: %v", err)
	}
	defer logger.Sync()

	sugar := logger.Sugar()
	sugar.Info("Application is starting")

	cfg := EnvConfig{}
	if err := env.Parse(&cfg); err != nil {
		sugar.Fatalf("Cannot parse env config: %v", err)
	}

	kv, err := kvstore.Open(sugar, cfg.DataDir)
	if err != nil {
		sugar.Fatalf("Cannot open kv store in %q: %v", cfg.DataDir, err)
	}

	registry := identity.New(sugar, kv,
		identity.SimulatedLatency(time.Duration(cfg.LoginDelayMS)*time.Millisecond))
	store := storage.New(sugar, kv)
	a := app.New(sugar, registry, store)

	if session, ok := a.Session(); ok {
		sugar.Infof("Restored session for %s", session.Email)
	} else {
		sugar.Info("No prior session, starting signed out")
	}

	sugar.Infof("Store ready: %d groups, %d conversations, %d activities, %d resources",
		len(a.Groups()), len(a.DirectThreads()), len(a.Activities()), len(a.Resources()))
}
