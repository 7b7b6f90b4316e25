// Package cli wires the cobra command tree. The bare command starts the
// TUI; subcommands are one-shot scriptable operations against the same
// remote service.
package cli

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/todosync/internal/api"
	"github.com/idilsaglam/todosync/internal/config"
	"github.com/idilsaglam/todosync/internal/logging"
	"github.com/idilsaglam/todosync/internal/tui"
	"github.com/idilsaglam/todosync/internal/ui"
)

// ErrUsage marks argument mistakes so main can exit 2 instead of 1.
var ErrUsage = errors.New("usage error")

// App carries flag values and the resolved dependencies shared by all
// subcommands.
type App struct {
	cfg    *config.Config
	client *api.Client
	logger *log.Logger

	flagAPIURL  string
	flagTimeout time.Duration
	verbose     bool
	plain       bool
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "todosync",
		Short:        "Todo list synced with a remote service (TUI + CLI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  todosync

  # Scriptable commands
  todosync ls --active
  todosync add "Buy milk"
  todosync done 2
  todosync rm 3
  todosync clear
  todosync status
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runTUI()
		},
	}

	cmd.PersistentFlags().StringVar(&app.flagAPIURL, "api-url", "", "base URL of the todo service (default "+config.DefaultAPIURL+")")
	cmd.PersistentFlags().DurationVar(&app.flagTimeout, "timeout", 0, "per-request timeout")
	cmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "debug logging")
	cmd.PersistentFlags().BoolVar(&app.plain, "plain", false, "no colors, ASCII glyphs")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.setup(cmd)
	}

	cmd.AddCommand(
		newLsCmd(app),
		newAddCmd(app),
		newDoneCmd(app),
		newRmCmd(app),
		newClearCmd(app),
		newStatusCmd(app),
	)
	return cmd
}

// setup resolves config (defaults, files, env) and applies flag overrides
// on top.
func (a *App) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("api-url") {
		cfg.APIURL = a.flagAPIURL
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout = a.flagTimeout
	}
	a.cfg = cfg

	ui.SetPlain(a.plain)
	a.logger = logging.ForCLI(a.verbose)
	a.client = api.NewClient(cfg.APIURL,
		api.WithTimeout(cfg.Timeout),
		api.WithLogger(a.logger),
	)
	return nil
}

// runTUI swaps logging to a file (the TUI owns the terminal) and starts
// the program.
func (a *App) runTUI() error {
	logger, closeLog, err := logging.ForTUI(a.cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	client := api.NewClient(a.cfg.APIURL,
		api.WithTimeout(a.cfg.Timeout),
		api.WithLogger(logger),
	)
	return tui.Run(client, logger)
}
