package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/punchlog/internal/config"
)

type ConfigShowCmd struct{}

func (c *ConfigShowCmd) Run(ctx *Context) error {
	secret := "(not set)"
	if ctx.Config.Sheets.ClientSecret != "" {
		secret = "(set)"
	}
	fmt.Printf("Config file:     %s\n", ctx.ConfigPath)
	fmt.Printf("Cache path:      %s\n", ctx.CachePath)
	fmt.Printf("Spreadsheet ID:  %s\n", ctx.Config.Sheets.SpreadsheetID)
	fmt.Printf("Range:           %s\n", ctx.Config.Sheets.Range)
	fmt.Printf("Client ID:       %s\n", ctx.Config.Sheets.ClientID)
	fmt.Printf("Client secret:   %s\n", secret)
	return nil
}

type ConfigSetCmd struct {
	Key   string `arg:"" help:"Setting to change: spreadsheet-id, range, client-id, client-secret."`
	Value string `arg:"" help:"New value."`
}

func (c *ConfigSetCmd) Run(ctx *Context) error {
	cfg := ctx.Config
	switch strings.ToLower(c.Key) {
	case "spreadsheet-id":
		cfg.Sheets.SpreadsheetID = c.Value
	case "range":
		cfg.Sheets.Range = c.Value
	case "client-id":
		cfg.Sheets.ClientID = c.Value
	case "client-secret":
		cfg.Sheets.ClientSecret = c.Value
	default:
		return fmt.Errorf("unknown setting: %s", c.Key)
	}

	if err := config.Save(ctx.ConfigPath, cfg); err != nil {
		return err
	}
	fmt.Printf("Updated %s\n", strings.ToLower(c.Key))
	return nil
}
