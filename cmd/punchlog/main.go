package main

import (
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/punchlog/internal/cache"
	"github.com/julianstephens/punchlog/internal/cli"
	"github.com/julianstephens/punchlog/internal/config"
	"github.com/julianstephens/punchlog/internal/errors"
	"github.com/julianstephens/punchlog/internal/logger"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"~/.config/punchlog/config.json"`
	Cache   string `help:"Cache path. Use a .db suffix for SQLite, a directory otherwise." type:"path" default:"~/.config/punchlog/cache"`
	Debug   bool   `help:"Enable debug logging."`

	Init       cli.InitCmd       `cmd:"" help:"Configure the target spreadsheet."`
	Entry      cli.EntryCmd      `cmd:"" help:"Open the timesheet entry form." default:"1"`
	Login      cli.LoginCmd      `cmd:"" help:"Authorize Google Sheets access."`
	Logout     cli.LogoutCmd     `cmd:"" help:"Remove the stored OAuth token."`
	Tags       cli.TagsCmd       `cmd:"" help:"List the saved tag vocabulary."`
	Activities cli.ActivitiesCmd `cmd:"" help:"List recent activities."`
	ConfigCmd  struct {
		Show cli.ConfigShowCmd `cmd:"" help:"Show current configuration."`
		Set  cli.ConfigSetCmd  `cmd:"" help:"Change a configuration value."`
	} `cmd:"" name:"config" help:"Manage configuration."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("punchlog"),
		kong.Description("Keyboard-driven timesheet entry for Google Sheets"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		errors.Fatal(err)
	}

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		errors.Fatal(err)
	}

	appCtx := &cli.Context{
		ConfigPath: CLI.Config,
		CachePath:  CLI.Cache,
		Config:     cfg,
		Cache:      cache.Open(CLI.Cache),
		Debug:      CLI.Debug,
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
