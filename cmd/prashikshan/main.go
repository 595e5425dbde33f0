package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"

	"github.com/prashikshan/prashikshan-cli/internal/api"
	"github.com/prashikshan/prashikshan-cli/internal/auth"
	"github.com/prashikshan/prashikshan-cli/internal/cli"
	"github.com/prashikshan/prashikshan-cli/internal/cli/account"
	"github.com/prashikshan/prashikshan-cli/internal/cli/applications"
	"github.com/prashikshan/prashikshan-cli/internal/cli/internships"
	"github.com/prashikshan/prashikshan-cli/internal/cli/logbook"
	"github.com/prashikshan/prashikshan-cli/internal/cli/notifications"
	"github.com/prashikshan/prashikshan-cli/internal/cli/system"
	"github.com/prashikshan/prashikshan-cli/internal/config"
	"github.com/prashikshan/prashikshan-cli/internal/drafts"
	errs "github.com/prashikshan/prashikshan-cli/internal/errors"
	"github.com/prashikshan/prashikshan-cli/internal/logger"
	"github.com/prashikshan/prashikshan-cli/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"~/.config/prashikshan/config.toml"`
	Debug   bool   `help:"Verbose logging to stderr."`

	Init   system.InitCmd     `cmd:"" help:"Initialize local storage and config."`
	Doctor system.DoctorCmd   `cmd:"" help:"Run health checks and diagnostics."`
	Login  account.LoginCmd   `cmd:"" help:"Sign in."`
	Logout account.LogoutCmd  `cmd:"" help:"Sign out and clear the local session."`
	Whoami account.WhoamiCmd  `cmd:"" help:"Show the signed-in account."`

	Register account.RegisterCmd `cmd:"" help:"Create an account."`

	Logbook struct {
		New  logbook.NewCmd  `cmd:"" help:"Create a logbook entry, queueing a draft when offline."`
		List logbook.ListCmd `cmd:"" help:"List server-side logbook entries."`
	} `cmd:"" help:"Manage logbook entries."`

	Drafts struct {
		List    logbook.DraftListCmd    `cmd:"" help:"List queued logbook drafts." default:"1"`
		Sync    logbook.DraftSyncCmd    `cmd:"" help:"Sync queued drafts with the server."`
		Discard logbook.DraftDiscardCmd `cmd:"" help:"Discard a queued draft."`
		Tui     logbook.DraftTuiCmd     `cmd:"" help:"Interactive draft queue dashboard."`
	} `cmd:"" help:"Manage the offline draft queue."`

	Internships struct {
		List internships.ListCmd `cmd:"" help:"Browse internship listings." default:"1"`
		Show internships.ShowCmd `cmd:"" help:"Show one internship."`
	} `cmd:"" help:"Browse internships."`

	Applications struct {
		List  applications.ListCmd  `cmd:"" help:"List your applications." default:"1"`
		Apply applications.ApplyCmd `cmd:"" help:"Apply to an internship."`
	} `cmd:"" help:"Manage internship applications."`

	Notifications struct {
		List notifications.ListCmd `cmd:"" help:"List notifications." default:"1"`
		Read notifications.ReadCmd `cmd:"" help:"Mark a notification as read."`
	} `cmd:"" help:"Manage notifications."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("prashikshan"),
		kong.Description("Prashikshan internship platform client with an offline logbook queue"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": "v0.2.0"},
	)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	dataDir, err := cfg.ResolveDataDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(logger.Config{Debug: CLI.Debug, DataDir: dataDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	var store storage.Provider
	switch cfg.Backend {
	case config.BackendSQLite:
		store = storage.NewSQLiteStore(filepath.Join(dataDir, "prashikshan.db"))
	default:
		store = storage.NewJSONStore(filepath.Join(dataDir, "prashikshan.json"))
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second

	// The refresh flow must not go through the authorized transport, so
	// the session manager gets its own unauthenticated client.
	plainClient, err := api.NewClient(cfg.APIURL, nil, timeout)
	if err != nil {
		errs.Fatal(err)
	}
	session := auth.NewManager(store, plainClient, nil)

	client, err := api.NewClient(cfg.APIURL, session, timeout)
	if err != nil {
		errs.Fatal(err)
	}

	draftStore := drafts.NewStore(store)

	appCtx := &cli.Context{
		Config:     cfg,
		ConfigPath: CLI.Config,
		Store:      store,
		Drafts:     draftStore,
		Syncer:     drafts.NewSyncer(draftStore, client),
		API:        client,
		Auth:       session,
	}

	// Load persisted state before running any command except init, which
	// creates it.
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			errs.Fatal(err)
		}
		defer func() { _ = store.Close() }()
		if err := draftStore.Load(); err != nil {
			errs.Fatal(err)
		}
		if err := session.Load(); err != nil {
			errs.Fatal(err)
		}
	}

	if err := ctx.Run(appCtx); err != nil {
		errs.Fatal(err)
	}
}
