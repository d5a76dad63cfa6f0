// Package main is the entry point for the timeline TUI application.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/timeline-tui/internal/config"
	"github.com/hy4ri/timeline-tui/internal/logging"
	"github.com/hy4ri/timeline-tui/internal/timeline"
	"github.com/hy4ri/timeline-tui/internal/tui"
)

const version = "0.1.0"

const helpText = `timeline-tui - Plan your day on a terminal hour grid

USAGE:
    timeline-tui [OPTIONS]

OPTIONS:
    -h, --help          Show this help message
    -v, --version       Show version information
    --init              Create a template config file
    --sort KEY          Initial sort: start, end or status
    --log-level LEVEL   Log level: debug, info, warn or error

CONFIGURATION:
    Config file: ~/.config/timeline-tui/config.yaml
    Log file:    ~/.config/timeline-tui/timeline.log (ui.log_file)

    Tasks live for the session only; quitting discards them.

KEYBINDINGS:
    Navigation:
        h/l         Previous/next task
        j/k         Row down/up in the card grid
        gg/G        First/last task
        Esc         Clear search / go back

    Task Actions:
        a           Add new task
        e, Enter    Edit selected task (or click its block)
        x / X       Mark done / not done
        Space       Toggle status
        dd          Delete task
        yy          Copy task to clipboard

    Other:
        /           Search tasks
        s           Cycle sort (start, end, status)
        ?           Show help
        q           Quit
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Define flags
	var (
		showHelp    bool
		showVersion bool
		initConfig  bool
		sortKey     string
		logLevel    string
	)

	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.BoolVar(&initConfig, "init", false, "Create template config file")
	flag.StringVar(&sortKey, "sort", "", "Initial sort: start, end or status")
	flag.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error")

	flag.Usage = func() {
		fmt.Print(helpText)
	}

	flag.Parse()

	// Handle flags
	if showHelp {
		fmt.Print(helpText)
		return nil
	}

	if showVersion {
		fmt.Printf("timeline-tui version %s\n", version)
		return nil
	}

	if initConfig {
		return createConfigTemplate()
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Flags override the config file
	if sortKey != "" {
		key, err := timeline.ParseSortKey(sortKey)
		if err != nil {
			return err
		}
		cfg.UI.DefaultSort = string(key)
	}
	if logLevel != "" {
		cfg.UI.LogLevel = logLevel
	}

	return runApp(cfg)
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate() error {
	path, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		var response string
		fmt.Scanln(&response)

		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := config.WriteTemplate(path); err != nil {
		return err
	}

	fmt.Printf("Config file created: %s\n", path)
	return nil
}

// runApp starts the main TUI application.
func runApp(cfg *config.Config) error {
	logPath, err := cfg.LogPath()
	if err != nil {
		return fmt.Errorf("failed to resolve log path: %w", err)
	}

	logger, closer, err := logging.New(logging.Options{
		Path:   logPath,
		Level:  cfg.UI.LogLevel,
		Prefix: "timeline",
	})
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer closer.Close()

	logger.Info("starting", "version", version, "sort", cfg.UI.DefaultSort, "notifications", cfg.UI.Notifications)

	// Create and run TUI
	app := tui.NewApp(cfg, logger)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		logger.Error("program exited", "err", err)
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	logger.Info("exiting")
	return nil
}
