package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/sandeepkv93/levelup/internal/config"
	"github.com/sandeepkv93/levelup/internal/logging"
	"github.com/sandeepkv93/levelup/internal/storage"
	"github.com/sandeepkv93/levelup/internal/update"
)

const Version = "0.1.0"

// App carries the runtime configuration and the terminal hooks shared by all commands.
type App struct {
	Config        config.RuntimeConfig
	IsInteractive func() bool
	RunTUI        func(update.Model) error
	Notifier      update.DesktopNotifier
}

func NewApp() *App {
	return &App{
		Config: config.RuntimeConfigFromEnv(config.DefaultRuntimeConfig()),
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
		RunTUI: func(m update.Model) error {
			_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
		Notifier: update.ExecDesktopNotifier{},
	}
}

// NewRootCmd creates the top-level "levelup" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var (
		file     string
		backend  string
		dbPath   string
		logLevel string
		autoload bool
		notify   bool
	)

	root := &cobra.Command{
		Use:           "levelup",
		Short:         "Gamified to-do checklist with points and levels",
		Long:          "levelup tracks a checklist of tagged tasks, awards points for completed tasks and levels you up as the total grows.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("file") {
				app.Config.TasksFile = file
			}
			if flags.Changed("backend") {
				app.Config.Backend = strings.ToLower(strings.TrimSpace(backend))
			}
			if flags.Changed("db") {
				app.Config.DBPath = dbPath
			}
			if flags.Changed("log-level") {
				app.Config.LogLevel = strings.ToLower(strings.TrimSpace(logLevel))
			}
			if flags.Changed("autoload") {
				app.Config.Autoload = autoload
			}
			if flags.Changed("notify") {
				app.Config.DesktopNotifications = notify
			}
			return app.Config.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTUI(app)
			}
			return printStatus(cmd, app)
		},
	}
	root.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	pf := root.PersistentFlags()
	pf.StringVar(&file, "file", app.Config.TasksFile, "JSON task file")
	pf.StringVar(&backend, "backend", app.Config.Backend, "Storage backend (json|sqlite)")
	pf.StringVar(&dbPath, "db", app.Config.DBPath, "SQLite database path")
	pf.StringVar(&logLevel, "log-level", app.Config.LogLevel, "Log level (debug|info|warn|error)")
	pf.BoolVar(&autoload, "autoload", app.Config.Autoload, "Load saved tasks when the TUI starts")
	pf.BoolVar(&notify, "notify", app.Config.DesktopNotifications, "Send desktop notifications on level up")

	root.AddCommand(
		newAddCmd(app),
		newToggleCmd(app),
		newListCmd(app),
		newStatusCmd(app),
		newTagsCmd(app),
		newReportCmd(app),
		newTUICmd(app),
	)
	return root
}

func newTUICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive checklist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(app)
		},
	}
}

// runTUI starts the interactive checklist. The TUI owns the terminal, so logs go
// to the configured log file or nowhere.
func runTUI(app *App) error {
	level, err := logging.ParseLevel(app.Config.LogLevel)
	if err != nil {
		return err
	}
	logger, closeLog, err := logging.Open(app.Config.LogFile, level, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	repo, err := storage.Open(storage.Backend(app.Config.Backend), app.Config.StoragePath())
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer repo.Close()

	m := update.NewModelWithConfig(repo, app.Notifier, logger, app.Config)
	if app.RunTUI == nil {
		return fmt.Errorf("no terminal runner configured")
	}
	return app.RunTUI(m)
}
