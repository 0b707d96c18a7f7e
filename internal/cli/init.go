package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/punchlog/internal/config"
)

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	cfg := ctx.Config

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Spreadsheet ID").
				Description("The Google Sheets document ID rows are appended to").
				Value(&cfg.Sheets.SpreadsheetID).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("spreadsheet ID cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Sheet Range").
				Description("A1-notation append range").
				Placeholder(config.DefaultRange).
				Value(&cfg.Sheets.Range),
			huh.NewInput().
				Title("OAuth Client ID").
				Value(&cfg.Sheets.ClientID).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("client ID cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("OAuth Client Secret").
				EchoMode(huh.EchoModePassword).
				Value(&cfg.Sheets.ClientSecret),
		),
	).WithTheme(huh.ThemeDracula())

	if err := form.Run(); err != nil {
		return err
	}

	if strings.TrimSpace(cfg.Sheets.Range) == "" {
		cfg.Sheets.Range = config.DefaultRange
	}

	if err := config.Save(ctx.ConfigPath, cfg); err != nil {
		return err
	}
	if err := ctx.openCache(); err != nil {
		return err
	}
	defer ctx.Cache.Close()

	fmt.Printf("Initialized punchlog config at: %s\n", ctx.ConfigPath)
	fmt.Println("Run 'punchlog login' to authorize Google Sheets access.")
	return nil
}
