package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"hijrical/internal/config"
	"hijrical/internal/events"
	"hijrical/internal/hijri"
	"hijrical/internal/logs"
	"hijrical/internal/picker"
	"hijrical/internal/tui"
)

func main() {
	// Parse CLI flags
	eventDirsFlag := flag.String("events", "", "Event card directories (comma-separated)")
	flag.StringVar(eventDirsFlag, "e", "", "Event card directories (shorthand, comma-separated)")
	viewFlag := flag.String("view", "", "Initial view: month, year, decade")
	flag.Parse()

	cliFlags := config.CLIFlags{
		EventDirs:   config.ParseCommaSeparated(*eventDirsFlag),
		DefaultView: *viewFlag,
	}

	// Load configuration
	cfg, err := config.Load(cliFlags)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Ensure config file exists
	if err := config.EnsureConfigFile(); err != nil {
		log.Printf("Warning: could not create config file: %v", err)
	}

	if cacheDir, err := os.UserCacheDir(); err == nil {
		if err := logs.Initialize(cacheDir); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not initialize logger: %v\n", err)
		}
	}
	defer logs.Close()

	// Calendar rule corrections, if configured
	if cfg.AdjustmentsFile != "" {
		adjs, err := hijri.LoadAdjustments(cfg.AdjustmentsFile)
		if err != nil {
			log.Fatalf("Failed to load calendar adjustments: %v", err)
		}
		rules, err := hijri.NewAdjusted(hijri.NewTabular(hijri.DefaultMaxYear), adjs)
		if err != nil {
			log.Fatalf("Invalid calendar adjustments: %v", err)
		}
		hijri.SetDefault(hijri.NewConverter(rules))
		logs.Logger.Printf("loaded %d calendar adjustments", len(adjs))
	}

	// Event cards supply blackout and special dates
	allEvents := events.ScanDirs(cfg.EventDirs)
	logs.Logger.Printf("loaded %d events from %d dirs", len(allEvents), len(cfg.EventDirs))

	constraints := picker.Constraints{
		Blackout:       events.BlackoutPredicate(allEvents),
		FirstDayOfWeek: cfg.FirstDayOfWeek,
		WeeksInView:    cfg.WeeksInView,
	}
	if cfg.MinDate != "" {
		if d, err := tui.ParseDateInput(cfg.MinDate); err == nil {
			constraints.MinDate = d
		} else {
			log.Fatalf("Invalid min_date %q: %v", cfg.MinDate, err)
		}
	}
	if cfg.MaxDate != "" {
		if d, err := tui.ParseDateInput(cfg.MaxDate); err == nil {
			constraints.MaxDate = d
		} else {
			log.Fatalf("Invalid max_date %q: %v", cfg.MaxDate, err)
		}
	}

	ctrl := picker.NewController(constraints)
	ctrl.SetView(picker.ParseView(cfg.DefaultView))

	app := tui.NewAppModel(ctrl, events.SpecialDates(allEvents))
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logs.Logger.Printf("program error: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
