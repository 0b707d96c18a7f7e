package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	ps "github.com/mitchellh/go-ps"

	"github.com/julianstephens/punchlog/internal/auth"
	"github.com/julianstephens/punchlog/internal/form"
	"github.com/julianstephens/punchlog/internal/sheets"
	"github.com/julianstephens/punchlog/internal/tui"
)

// processesFunc allows tests to inject a fake process table.
var processesFunc = ps.Processes

type EntryCmd struct{}

// anotherInstanceRunning reports whether a second punchlog process is
// already live. Two concurrent forms would race on the cache, so only
// one entry session runs at a time.
func anotherInstanceRunning() (bool, error) {
	procs, err := processesFunc()
	if err != nil {
		return false, err
	}
	for _, p := range procs {
		if p.Pid() == os.Getpid() {
			continue
		}
		if strings.HasPrefix(p.Executable(), "punchlog") {
			return true, nil
		}
	}
	return false, nil
}

func (c *EntryCmd) Run(ctx *Context) error {
	if err := ctx.Config.Validate(); err != nil {
		return err
	}

	running, err := anotherInstanceRunning()
	if err == nil && running {
		return fmt.Errorf("another punchlog instance is already running")
	}

	if err := ctx.openCache(); err != nil {
		return err
	}
	defer ctx.Cache.Close()

	appCtx := context.Background()
	oauthCfg := auth.Config(ctx.Config.Sheets.ClientID, ctx.Config.Sheets.ClientSecret)
	ts, err := auth.TokenSource(appCtx, oauthCfg)
	if err != nil {
		if errors.Is(err, auth.ErrNotLoggedIn) {
			return fmt.Errorf("not logged in, run 'punchlog login' first")
		}
		return err
	}

	client := sheets.NewClient(appCtx, ts, ctx.Config.Sheets.SpreadsheetID, ctx.Config.Sheets.Range)
	session := form.NewSession(ctx.Cache, client)

	p := tea.NewProgram(tui.NewModel(session), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}

	if entry := session.Entry(); entry != nil {
		fmt.Printf("Saved entry %s (%s %s-%s)\n", entry.ID, entry.Date, entry.TimeIn, entry.TimeOut)
	}
	return nil
}
