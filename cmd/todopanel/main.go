package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"todopanel/internal/config"
	"todopanel/internal/export"
	"todopanel/internal/query"
	"todopanel/internal/store"
	"todopanel/internal/ui"
)

// Version information set via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type options struct {
	showVersion bool
	logLevel    string
	dataPath    string
	configPath  string
	listTasks   bool
	exportPath  string
}

func parseFlags() options {
	var opts options
	flag.BoolVar(&opts.showVersion, "version", false, "print version and exit")
	flag.StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	flag.StringVar(&opts.dataPath, "data", "", "path to the task database (default: XDG data dir)")
	flag.StringVar(&opts.configPath, "config", "", "path to the config file (default: XDG config dir)")
	flag.BoolVar(&opts.listTasks, "list", false, "print tasks as a table instead of starting the UI")
	flag.StringVar(&opts.exportPath, "export", "", "export tasks to the given CSV file and exit")
	flag.Parse()
	return opts
}

func main() {
	opts := parseFlags()

	if opts.showVersion {
		fmt.Printf("todopanel %s (commit: %s, built: %s)\n", version, commit, date)
		os.Exit(0)
	}

	logger := newLogger(opts)

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	prefs, err := store.Open(opts.dataPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer prefs.Close()

	repo := store.NewRepository(prefs, cfg, logger)

	if opts.exportPath != "" {
		tasks := query.Apply(repo.Tasks(), query.Default())
		if err := export.WriteCSVFile(opts.exportPath, tasks); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting tasks: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Exported %d tasks to %s\n", len(tasks), opts.exportPath)
		return
	}

	if opts.listTasks {
		printTaskTable(repo)
		return
	}

	app := ui.NewApp(repo)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}
}

// newLogger sends diagnostics to a file in the data dir so log lines
// never corrupt the alternate screen.
func newLogger(opts options) *log.Logger {
	level, err := log.ParseLevel(opts.logLevel)
	if err != nil {
		level = log.WarnLevel
	}

	out := os.Stderr
	if !opts.listTasks && opts.exportPath == "" {
		if f := openLogFile(opts.dataPath); f != nil {
			out = f
		}
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})
	return logger
}

func openLogFile(dataPath string) *os.File {
	if dataPath == "" {
		var err error
		dataPath, err = store.DefaultPath()
		if err != nil {
			return nil
		}
	}
	dir := filepath.Dir(dataPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil
	}
	f, err := os.OpenFile(filepath.Join(dir, "todopanel.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil
	}
	return f
}
