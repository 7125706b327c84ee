// Package main is the entry point for the sortviz GUI application.
// cmd/ only does assembly and I/O; all logic lives in internal/.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/amitbaghel07/SortingVisualizer/internal/app/usecase"
	"github.com/amitbaghel07/SortingVisualizer/internal/domain/config"
	"github.com/amitbaghel07/SortingVisualizer/internal/infra/logging"
	"github.com/amitbaghel07/SortingVisualizer/internal/transport/ui"
)

func main() {
	configPath := flag.String("config", "sortviz.yaml", "path to the YAML config file (optional)")
	flag.Parse()

	// Set locale to avoid Fyne warning
	if os.Getenv("LANG") == "" || os.Getenv("LANG") == "C" {
		os.Setenv("LANG", "en_US.UTF-8")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logFile, err := logging.Setup(cfg.LogDir, "sortviz", os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	slog.Info("Starting sortviz",
		"algorithm", cfg.DefaultAlgorithm,
		"size", cfg.DefaultSize,
		"delay_ms", cfg.DefaultDelayMs)

	uc := usecase.NewVisualizerUseCase(cfg.DefaultSize, cfg.DefaultDelayMs)

	app := ui.NewApplication(uc, cfg)
	app.Run()

	slog.Info("sortviz exited")
}
