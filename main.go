package main

import (
	"flag"
	"log"

	"TaskApp/internal/config"
	"TaskApp/internal/state"
	"TaskApp/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "path to config.toml (default: search XDG config dirs)")
	verbose := flag.Bool("v", false, "log every state change")
	skipLogin := flag.Bool("skip-login", false, "open the tabs without the login screen")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}
	if *skipLogin {
		cfg.Window.SkipLogin = true
	}

	log.SetFlags(log.LstdFlags | log.Lmsgprefix)
	state.SetDebug(cfg.Debug())
	log.Printf("Starting TaskApp (pomodoro %s, export %dx%d)",
		state.FormatClock(cfg.Pomodoro.Seconds), cfg.Drawing.ExportWidth, cfg.Drawing.ExportHeight)

	ui.RunApp(cfg)
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}
