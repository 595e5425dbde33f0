package account

import (
	"context"
	"fmt"

	"github.com/prashikshan/prashikshan-cli/internal/cli"
)

type WhoamiCmd struct{}

func (c *WhoamiCmd) Run(ctx *cli.Context) error {
	if err := ctx.RequireAuth(); err != nil {
		return err
	}

	user, err := ctx.API.CurrentUser(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("%s <%s> %s\n", user.Name, user.Email, cli.Faint(string(user.Role)))
	return nil
}
