package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/appengine-ltd/lifesim/internal/config"
	"github.com/appengine-ltd/lifesim/internal/recorder"
)

// version, commit, date are injected at build time (see .goreleaser.yaml).
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion bool
		configPath  string
		seed        int64
		recordPath  string
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.StringVar(&configPath, "config", "lifesim.yaml", "path to config file")
	flag.Int64Var(&seed, "seed", 0, "RNG seed (0 = random)")
	flag.StringVar(&recordPath, "record", "", "sqlite database for play history (overrides config)")
	flag.Parse()

	if showVersion {
		fmt.Printf("LifeSim %s (%s) %s\n", version, commit, date)
		return
	}

	// .env is optional; real env vars still apply without one.
	_ = godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
	if seed != 0 {
		cfg.Game.Seed = seed
	}
	if recordPath != "" {
		cfg.Database.SQLitePath = recordPath
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[ERROR] invalid config: %v", err)
	}

	var rec recorder.Recorder = recorder.NewNoopRecorder()
	if cfg.Database.SQLitePath != "" {
		sq, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Fatalf("[ERROR] open recorder: %v", err)
		}
		rec = sq
	}
	defer func() {
		if err := rec.Close(); err != nil {
			log.Printf("[WARN] close recorder: %v", err)
		}
	}()

	app := NewApp(AppConfig{
		Version: version,
		Config:  cfg,
		Rec:     rec,
		In:      os.Stdin,
		Out:     os.Stdout,
	})

	if err := app.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
