// Command ls-astro is a terminal clock for astronomical time scales and
// Earth orientation angles.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/ls-astro/astro"
	"github.com/litescript/ls-astro/internal/clock"
	"github.com/litescript/ls-astro/internal/logging"
	"github.com/litescript/ls-astro/internal/ui"
	"github.com/litescript/ls-astro/internal/version"
)

// CLI flags for headless mode
var (
	summaryMode   bool
	watchInterval time.Duration
	atFlag        string
	showVersion   bool
)

const (
	defaultRefresh = 1 * time.Second
	minRefresh     = 100 * time.Millisecond
	maxRefresh     = 5 * time.Minute
)

func main() {
	refresh := flag.Duration("refresh", defaultRefresh, "UI refresh interval (e.g., 1s, 500ms)")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	dut1 := flag.Float64("dut1", 0.0, "UT1-UTC in seconds (IERS Bulletin A)")
	lonDeg := flag.Float64("lon", 0.0, "Site longitude in degrees, east positive")
	latDeg := flag.Float64("lat", 0.0, "Site latitude in degrees")
	heightM := flag.Float64("height", 0.0, "Site height above the ellipsoid, meters")
	modelName := flag.String("model", "2006A", "Precession-nutation flavor (2006A or 2000B)")
	flag.BoolVar(&summaryMode, "summary", false, "Print text summary instead of TUI")
	flag.DurationVar(&watchInterval, "watch", 0, "Repeat summary at interval (e.g., 10s)")
	flag.StringVar(&atFlag, "at", "", "Compute for a fixed instant (RFC 3339) instead of now")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println("ls-astro v" + version.Version)
		return
	}

	if *refresh < minRefresh {
		*refresh = minRefresh
	} else if *refresh > maxRefresh {
		*refresh = maxRefresh
	}

	logger := logging.New(logging.ParseLevel(*logLevel))

	model, err := parseModel(*modelName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := clock.DefaultConfig()
	cfg.DUT1 = *dut1
	cfg.Model = model
	cfg.Site.LonRad = *lonDeg * astro.RadPerDeg
	cfg.Site.LatRad = *latDeg * astro.RadPerDeg
	cfg.Site.HeightM = *heightM
	cfg.RefreshInterval = *refresh
	mgr := clock.NewManager(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	// A fixed instant or a non-TTY stdout means headless.
	headless := summaryMode || atFlag != "" || watchInterval > 0 ||
		!term.IsTerminal(int(os.Stdout.Fd()))
	if headless {
		runHeadless(ctx, cfg, logger)
		return
	}

	p := tea.NewProgram(ui.New(mgr), tea.WithAltScreen())

	go runComputeLoop(ctx, mgr, p, logger.Sub("clock"))

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

func parseModel(s string) (astro.Model, error) {
	switch s {
	case "2006A", "2006a", "IAU2006A":
		return astro.ModelIAU2006A, nil
	case "2000B", "2000b", "IAU2000B":
		return astro.ModelIAU2000B, nil
	default:
		return 0, fmt.Errorf("unknown model %q (want 2006A or 2000B)", s)
	}
}

func runComputeLoop(ctx context.Context, mgr *clock.Manager, p *tea.Program, logger *logging.Logger) {
	compute := func() {
		if err := mgr.Update(time.Now()); err != nil {
			logger.Error("compute failed: %v", err)
			p.Send(ui.ErrorMsg{Error: err})
			return
		}
		snap := mgr.Snapshot()
		if snap.Warnings != astro.WarnNone {
			logger.Debug("snapshot carries warnings: %s", snap.Warnings)
		}
		p.Send(ui.SnapshotMsg{Snapshot: snap})
	}

	compute()

	ticker := time.NewTicker(mgr.RefreshInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("compute loop shutting down")
			return
		case <-ticker.C:
			compute()
		}
	}
}

// runHeadless prints summaries without starting the TUI.
func runHeadless(ctx context.Context, cfg clock.Config, logger *logging.Logger) {
	instant := func() (time.Time, error) {
		if atFlag == "" {
			return time.Now(), nil
		}
		return time.Parse(time.RFC3339Nano, atFlag)
	}

	outputOnce := func() error {
		at, err := instant()
		if err != nil {
			return fmt.Errorf("parse -at: %w", err)
		}
		snap, err := clock.Compute(at, cfg)
		if err != nil {
			return err
		}
		if snap.Warnings != astro.WarnNone {
			logger.Warn("snapshot carries warnings: %s", snap.Warnings)
		}
		clock.WriteSummary(os.Stdout, snap)
		return nil
	}

	if watchInterval == 0 {
		if err := outputOnce(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := outputOnce(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fmt.Println()
			if err := outputOnce(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		}
	}
}
