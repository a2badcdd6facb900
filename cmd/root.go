package cmd

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avelys/disktop/config"
	"github.com/avelys/disktop/engine"
	"github.com/avelys/disktop/model"
	"github.com/avelys/disktop/ui"
)

// Version is set at build time via ldflags.
var Version = "0.2.0"

func printUsage() {
	fmt.Fprintf(os.Stderr, `disktop v%s — terminal disk telemetry panel

Usage:
  disktop [OPTIONS] [INTERVAL]

Options:
  -interval N       Refresh interval in seconds (default: 2)
  -history N        Samples to keep per series (default: 1200)
  -mode NAME        Initial detail view: activity or usage
  -version          Print version and exit

Positional:
  INTERVAL          First positional arg sets interval: disktop 5 = disktop -interval 5

Keys:
  a                 Toggle activity/usage detail view
  j/k, arrows       Select filesystem
  + / -             Widen / narrow the history window
  p                 Pause refresh
  ctrl+d            Save current view as the startup default
  q                 Quit
`, Version)
}

// parseMode maps a -mode flag value to a display mode. An empty name
// means the activity default.
func parseMode(name string) (model.DisplayMode, error) {
	switch name {
	case "", "activity":
		return model.ModeActivity, nil
	case "usage":
		return model.ModeUsage, nil
	default:
		return model.ModeActivity, fmt.Errorf("unknown mode %q (want activity or usage)", name)
	}
}

// Run parses flags and starts the application.
func Run() error {
	cfg := config.Load()

	var (
		intervalSec = flag.Int("interval", cfg.IntervalSec, "refresh interval in seconds")
		historySize = flag.Int("history", cfg.HistorySize, "samples to keep per series")
		modeName    = flag.String("mode", cfg.DefaultMode, "initial detail view: activity or usage")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Usage = printUsage
	flag.Parse()

	if *showVersion {
		fmt.Printf("disktop v%s\n", Version)
		return nil
	}

	if args := flag.Args(); len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid interval %q", args[0])
		}
		*intervalSec = n
	}
	if *intervalSec < 1 {
		*intervalSec = 1
	}
	if *historySize < 1 {
		*historySize = config.Default().HistorySize
	}

	mode, err := parseMode(*modeName)
	if err != nil {
		return err
	}

	eng := engine.NewEngine(*historySize)
	m := ui.NewModel(eng, time.Duration(*intervalSec)*time.Second, mode)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
