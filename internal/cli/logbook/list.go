package logbook

import (
	"context"
	"fmt"

	"github.com/prashikshan/prashikshan-cli/internal/cli"
)

type ListCmd struct {
	Application string `short:"a" help:"Only entries for this application id."`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	if err := ctx.RequireAuth(); err != nil {
		return err
	}

	entries, err := ctx.API.ListLogbookEntries(context.Background(), c.Application)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No logbook entries.")
		return nil
	}

	for _, e := range entries {
		approved := " "
		if e.Approved {
			approved = cli.OK("✓")
		}
		fmt.Printf("%s  %s  %4.1fh  [%s] %s\n", e.EntryDate, approved, e.Hours, cli.Faint(e.ID), e.Description)
	}
	return nil
}
