package logbook

import (
	"context"
	"errors"
	"fmt"

	"github.com/prashikshan/prashikshan-cli/internal/cli"
	"github.com/prashikshan/prashikshan-cli/internal/drafts"
	"github.com/prashikshan/prashikshan-cli/internal/models"
	"github.com/prashikshan/prashikshan-cli/internal/tui"
)

type DraftListCmd struct{}

func (c *DraftListCmd) Run(ctx *cli.Context) error {
	queued := ctx.Drafts.Drafts()
	if len(queued) == 0 {
		fmt.Println("No queued drafts.")
		return nil
	}

	for _, d := range queued {
		fmt.Printf("%s  %s  %4.1fh  %s  %s\n", d.EntryDate, cli.StatusLabel(d.Status), d.Hours, cli.Faint(d.ID), d.Description)
		if d.Status == models.DraftError && d.LastError != nil {
			fmt.Printf("    %s\n", cli.Faint("last error: "+*d.LastError))
		}
	}
	return nil
}

type DraftSyncCmd struct {
	ID string `arg:"" optional:"" help:"Draft id to sync. All queued drafts when omitted."`
}

func (c *DraftSyncCmd) Run(ctx *cli.Context) error {
	if err := ctx.RequireAuth(); err != nil {
		return err
	}

	if c.ID != "" {
		return c.syncOne(ctx)
	}

	outcomes := ctx.Syncer.SyncAll(context.Background())
	if len(outcomes) == 0 {
		fmt.Println("No queued drafts.")
		return nil
	}

	failed := 0
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			failed++
			fmt.Printf("%s %s: %v\n", cli.StatusLabel(models.DraftError), outcome.DraftID, outcome.Err)
			continue
		}
		fmt.Printf("%s %s synced as entry %s\n", cli.OK("✓"), outcome.DraftID, outcome.Entry.ID)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d drafts failed to sync", failed, len(outcomes))
	}
	return nil
}

func (c *DraftSyncCmd) syncOne(ctx *cli.Context) error {
	entry, err := ctx.Syncer.SyncDraft(context.Background(), c.ID)
	if err != nil {
		if errors.Is(err, drafts.ErrSyncInFlight) {
			return fmt.Errorf("draft %s is already syncing", c.ID)
		}
		return err
	}
	if entry == nil {
		fmt.Println("Draft not found; nothing to sync.")
		return nil
	}
	fmt.Printf("%s Draft synced as entry %s.\n", cli.OK("✓"), entry.ID)
	return nil
}

type DraftDiscardCmd struct {
	ID  string `arg:"" optional:"" help:"Draft id to discard."`
	All bool   `help:"Discard every queued draft."`
}

func (c *DraftDiscardCmd) Validate() error {
	if c.ID == "" && !c.All {
		return fmt.Errorf("provide a draft id or --all")
	}
	return nil
}

func (c *DraftDiscardCmd) Run(ctx *cli.Context) error {
	if c.All {
		if err := ctx.Drafts.Reset(); err != nil {
			return err
		}
		fmt.Println("All drafts discarded.")
		return nil
	}

	if err := ctx.Drafts.RemoveDraft(c.ID); err != nil {
		return err
	}
	fmt.Println("Draft discarded.")
	return nil
}

type DraftTuiCmd struct{}

func (c *DraftTuiCmd) Run(ctx *cli.Context) error {
	if err := ctx.RequireAuth(); err != nil {
		return err
	}
	return tui.Run(ctx.Drafts, ctx.Syncer)
}
