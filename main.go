package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/andareed/siftly-timelines/config"
	"github.com/andareed/siftly-timelines/loader"
	"github.com/andareed/siftly-timelines/logging"
	tea "github.com/charmbracelet/bubbletea"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

var logFile = flag.String("debug", "", "Write Debug Logs to file")

func main() {
	versionFlag := flag.Bool("version", false, "print version and exit")
	configPath := flag.String("config", "", "YAML settings file")
	minDuration := flag.Duration("min-duration", -1, "hide segments shorter than this (e.g. 30s)")
	sortFlag := flag.String("sort", "", "line order: alpha, chrono or none")
	utc := flag.Bool("utc", false, "show times in UTC")

	flag.Parse()

	// --- EARLY EXIT ---
	if *versionFlag {
		fmt.Println("Version:", Version)
		os.Exit(0)
	}

	cleanup, err := logging.SetupLogging(*logFile)
	if err != nil {
		log.Fatalf("Failed to setup logging %v", err)
	}
	defer cleanup()

	log.Println("sftl: Started")

	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("Usage: sftl [--config sftl.yaml] [--debug debug.log] <file.json|file.yaml|file.csv>")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := applyFlags(&cfg, *minDuration, *sortFlag, *utc); err != nil {
		log.Fatalf("flags: %v", err)
	}

	inputPath := args[0]
	raw, err := loader.LoadFile(inputPath)
	if err != nil {
		log.Fatalf("failed to load %q: %v", inputPath, err)
	}

	m, err := newModel(cfg, inputPath, raw)
	if err != nil {
		log.Fatalf("failed to load %q: %v", inputPath, err)
	}

	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithReportFocus()).Run()
	if err != nil {
		log.Printf("Tea program error: %v", err)
		fmt.Println("Error:", err)
	}
}

// applyFlags overrides cfg with the flags that were given and validates
// the result. A negative minDuration means the flag was not set.
func applyFlags(cfg *config.Config, minDuration time.Duration, sort string, utc bool) error {
	if minDuration >= 0 {
		cfg.Chart.MinSegmentDuration = minDuration
	}
	if sort != "" {
		cfg.Sort.Mode = sort
	}
	if utc {
		cfg.Chart.UseUTC = true
	}
	return cfg.Validate()
}
