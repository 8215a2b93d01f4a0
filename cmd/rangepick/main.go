package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"rangepick/internal/calendar"
	"rangepick/internal/config"
	"rangepick/internal/domain"
	"rangepick/internal/presets"
	"rangepick/internal/ui"
	"rangepick/internal/ui/services/events"
)

// Exit codes
const (
	exitOK      = 0
	exitError   = 1
	exitAborted = 130
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("rangepick", flag.ContinueOnError)
	flags.SetOutput(stderr)
	var (
		configPath string
		month      string
		outputPath string
	)
	flags.StringVar(&configPath, "config", "", "Path to the config file (default: user config dir)")
	flags.StringVar(&month, "month", "", "Month to show first, as YYYY-MM (default: current month)")
	flags.StringVar(&outputPath, "output", "", "Write the selected range to this file instead of stdout")
	if err := flags.Parse(args); err != nil {
		return exitError
	}

	today := calendar.Today()
	start := today
	if month != "" {
		t, err := time.Parse("2006-01", month)
		if err != nil {
			fmt.Fprintf(stderr, "Error: invalid -month %q, want YYYY-MM\n", month)
			return exitError
		}
		start = calendar.New(t.Year(), t.Month(), 1)
	}

	// Load configuration
	configSvc := config.NewConfigService()
	if configPath != "" {
		configSvc = config.NewConfigServiceAt(configPath)
	}
	_, statErr := os.Stat(configSvc.Path())
	cfg, cfgErr := configSvc.Load()
	if cfgErr != nil {
		cfg = config.DefaultConfig()
	}

	// Set up logging
	if cfg.Log.File != "" {
		logFile, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			fmt.Fprintf(stderr, "Could not open log file: %v\n", err)
			log.SetOutput(io.Discard)
		} else {
			defer logFile.Close()
			log.SetOutput(logFile)
		}
	} else {
		log.SetOutput(io.Discard)
	}

	if cfgErr != nil {
		log.Printf("Error loading config: %v", cfgErr)
	} else if errors.Is(statErr, os.ErrNotExist) {
		// First run: leave a file the user can edit
		if err := configSvc.Save(cfg); err != nil {
			log.Printf("Failed to save default config: %v", err)
		} else {
			log.Printf("Default config written to %s", configSvc.Path())
		}
	}

	ranges, err := presets.Resolve(cfg.PresetSpecs(), today)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	// Create event bus
	bus := events.NewBus()
	bus.Subscribe(domain.EventRangeChanged, func(e domain.DomainEvent) {
		change := e.(domain.RangeChangedEvent).Change
		log.Printf("Range changed: %s..%s (%d weekend days)", change.Range[0], change.Range[1], len(change.WeekendDates))
	})
	bus.Subscribe(domain.EventClickIgnored, func(e domain.DomainEvent) {
		log.Printf("Ignored weekend click on %s", e.(domain.ClickIgnoredEvent).Date)
	})

	// Create UI model
	uiModel, err := ui.NewModel(bus, cfg, ui.Options{
		Today:   today,
		Start:   start,
		Presets: ranges,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	if os.Getenv("RANGEPICK_E2E_TEST") == "1" {
		fmt.Fprintln(stdout, "__READY__")
	}

	// Run the UI
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(stderr, "Error running program: %v\n", err)
		return exitError
	}

	if uiModel.Aborted() {
		log.Printf("Aborted")
		return exitAborted
	}

	change, ok := uiModel.Result()
	if !uiModel.Finished() || !ok {
		return exitOK
	}
	if err := writeResult(change, outputPath, stdout); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	return exitOK
}

// writeResult prints change as one line of JSON to w, or to path when set
func writeResult(change domain.RangeChange, path string, w io.Writer) error {
	data, err := json.Marshal(change)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = w.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}
