package cli

import (
	"context"
	"fmt"

	"github.com/julianstephens/punchlog/internal/auth"
)

type LoginCmd struct{}

func (c *LoginCmd) Run(ctx *Context) error {
	if err := ctx.Config.Validate(); err != nil {
		return err
	}

	oauthCfg := auth.Config(ctx.Config.Sheets.ClientID, ctx.Config.Sheets.ClientSecret)
	err := auth.Login(context.Background(), oauthCfg, func(verificationURL, userCode string) {
		fmt.Printf("Visit %s and enter code: %s\n", verificationURL, userCode)
	})
	if err != nil {
		return err
	}

	fmt.Println("Logged in. OAuth token stored in the system keyring.")
	return nil
}

type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *Context) error {
	if err := auth.Logout(); err != nil {
		return err
	}
	fmt.Println("Logged out. Stored OAuth token removed.")
	return nil
}
