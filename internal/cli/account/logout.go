package account

import (
	"fmt"

	"github.com/prashikshan/prashikshan-cli/internal/cli"
)

type LogoutCmd struct {
	KeepDrafts bool `help:"Keep queued logbook drafts instead of clearing them."`
}

func (c *LogoutCmd) Run(ctx *cli.Context) error {
	if err := ctx.Auth.SignOut(); err != nil {
		return err
	}

	// Drafts belong to the signed-in user's applications; clearing them
	// on sign-out is the default so the next account does not inherit
	// another user's queue.
	if !c.KeepDrafts {
		if err := ctx.Drafts.Reset(); err != nil {
			return err
		}
	}

	fmt.Println(cli.OK("Signed out."))
	return nil
}
