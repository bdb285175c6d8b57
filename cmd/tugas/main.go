package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/tugas/internal/api"
	"github.com/julianstephens/tugas/internal/cli"
	"github.com/julianstephens/tugas/internal/constants"
	"github.com/julianstephens/tugas/internal/errors"
	"github.com/julianstephens/tugas/internal/logger"
	"github.com/julianstephens/tugas/internal/session"
	"github.com/julianstephens/tugas/internal/storage"
	"github.com/julianstephens/tugas/internal/theme"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"State database path." default:"~/.config/tugas/tugas.db"`
	Server  string `help:"Remote server base URL." env:"TUGAS_SERVER"`
	Debug   bool   `help:"Enable debug logging."`

	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive interface." default:"1"`
	Login    cli.LoginCmd    `cmd:"" help:"Sign in to the remote server."`
	Logout   cli.LogoutCmd   `cmd:"" help:"Discard the held session."`
	Register cli.RegisterCmd `cmd:"" help:"Create an account."`
	Task     struct {
		List   cli.TaskListCmd   `cmd:"" help:"List all tasks." default:"1"`
		Add    cli.TaskAddCmd    `cmd:"" help:"Add a new task."`
		Delete cli.TaskDeleteCmd `cmd:"" help:"Delete a task."`
	} `cmd:"" help:"Manage tasks."`
	Profile cli.ProfileCmd `cmd:"" help:"Show or update the account profile."`
	Theme   cli.ThemeCmd   `cmd:"" help:"Show or change the color theme."`
	Doctor  cli.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Task manager for the Tugas service"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configPath := expandHome(CLI.Config)
	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(configPath),
	}); err != nil {
		errors.Fatal(err)
	}

	store := storage.NewSQLiteStore(configPath)
	if err := store.Load(); err != nil {
		errors.Fatal(err)
	}
	defer store.Close()

	sessions := session.NewKeyringStore(store)
	server := CLI.Server
	if server == "" {
		server = constants.DefaultServerURL
	}

	appCtx := &cli.Context{
		API:      api.New(server, sessions),
		Sessions: sessions,
		State:    store,
		Themes:   theme.NewManager(store),
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
