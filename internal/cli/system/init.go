package system

import (
	"fmt"

	"github.com/prashikshan/prashikshan-cli/internal/cli"
	"github.com/prashikshan/prashikshan-cli/internal/config"
)

type InitCmd struct {
	APIURL string `help:"Backend base URL to record in the config file."`
	Force  bool   `short:"f" help:"Overwrite an existing config file."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	cfg := ctx.Config
	if c.APIURL != "" {
		cfg.APIURL = c.APIURL
	}

	if err := ctx.Store.Init(); err != nil && !c.Force {
		return err
	}

	if err := config.Save(ctx.ConfigPath, cfg); err != nil {
		return err
	}

	fmt.Printf("%s Initialized. Storage: %s (%s backend), API: %s\n", cli.OK("✓"), ctx.Store.GetDataPath(), cfg.Backend, cfg.APIURL)
	return nil
}
