// Package main provides the CLI entry point for tickit.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/flashingpumpkin/tickit/internal/config"
	"github.com/flashingpumpkin/tickit/internal/logging"
	"github.com/flashingpumpkin/tickit/internal/output"
	"github.com/flashingpumpkin/tickit/internal/todo"
	"github.com/flashingpumpkin/tickit/internal/tui"
)

var (
	// Flag variables
	configFile     string
	dataFile       string
	theme          string
	logFile        string
	logLevel       string
	deleteDuration time.Duration
	minimal        bool
)

var rootCmd = &cobra.Command{
	Use:   "tickit",
	Short: "Terminal to-do list with per-task timers",
	Long: `Tickit keeps a to-do list with a Todo and a Done tab and times the task
you are working on.

Run without arguments in a terminal to open the interactive list. When stdout
is not a terminal (or with --minimal) it prints the Todo tab instead.

CONFIGURATION FILE

Tickit reads an optional TOML file from the user config directory
(tickit/config.toml). Use --config to specify a different path. Flags
override values from the file.`,
	Args:          cobra.NoArgs,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to config file (default: <config dir>/tickit/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&dataFile, "data", "f", "", "Path to the tasks file (default: ~/.tickit/todos.json)")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "", "Colour theme: auto, dark or light")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write debug logs to this file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().DurationVar(&deleteDuration, "delete-duration", 0, "Slide-out duration for deleted tasks (default 400ms)")
	rootCmd.PersistentFlags().BoolVar(&minimal, "minimal", false, "Print the list instead of opening the TUI")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() { _ = logger.Close() }()

	store, err := openStore(cfg, logger)
	if err != nil {
		return err
	}

	if !shouldUseTUI() {
		listTasks(output.NewFormatter(cmd.OutOrStdout()), store, todo.TabTodo)
		return nil
	}

	ctx, cancel := setupSignalHandler()
	defer cancel()

	logger.Info("starting tui", "data", cfg.DataFile, "theme", cfg.Theme)
	program := tui.New(ctx, store, tui.Options{
		Theme:          tui.Theme(cfg.Theme),
		DeleteDuration: cfg.DeleteDuration,
		FrameInterval:  cfg.FrameInterval(),
		Logger:         logger.Logger,
	})

	if err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, context.Canceled) {
			logger.Info("tui interrupted")
			return nil
		}
		return fmt.Errorf("tui error: %w", err)
	}
	logger.Info("tui exited")
	return nil
}

// loadConfig builds the configuration from defaults, the optional config file
// and the persistent flags, in that order of precedence.
func loadConfig() (*config.Config, error) {
	cfg := config.NewConfig()

	var fileConfig *config.FileConfig
	var err error
	if configFile != "" {
		fileConfig, err = config.LoadFileConfigFrom(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configFile, err)
		}
		if fileConfig == nil {
			return nil, fmt.Errorf("config file not found: %s", configFile)
		}
	} else {
		fileConfig, err = config.LoadFileConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}
	if err := fileConfig.Apply(cfg); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}

	if dataFile != "" {
		cfg.DataFile = dataFile
	}
	if theme != "" {
		cfg.Theme = theme
	}
	if logFile != "" {
		cfg.LogFile = logFile
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if deleteDuration != 0 {
		cfg.DeleteDuration = deleteDuration
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}
	return cfg, nil
}

func openStore(cfg *config.Config, logger *logging.Logger) (*todo.Store, error) {
	store, err := todo.Open(todo.NewFileBackend(cfg.DataFile), todo.WithLogger(logger.Logger))
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", cfg.DataFile, err)
	}
	return store, nil
}

// withStore wraps a subcommand body with config loading and store setup.
func withStore(fn func(cmd *cobra.Command, args []string, store *todo.Store) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer func() { _ = logger.Close() }()

		store, err := openStore(cfg, logger)
		if err != nil {
			return err
		}
		return fn(cmd, args, store)
	}
}

// shouldUseTUI determines whether to use the TUI based on flags and environment.
func shouldUseTUI() bool {
	if minimal {
		return false
	}

	// CI environments don't have a usable terminal
	if os.Getenv("CI") != "" {
		return false
	}

	return term.IsTerminal(int(os.Stdout.Fd()))
}
