package logbook

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/prashikshan/prashikshan-cli/internal/cli"
	"github.com/prashikshan/prashikshan-cli/internal/constants"
	"github.com/prashikshan/prashikshan-cli/internal/drafts"
	"github.com/prashikshan/prashikshan-cli/internal/models"
)

type NewCmd struct {
	Application string   `short:"a" help:"Application id the entry belongs to."`
	Date        string   `short:"d" help:"Entry date (YYYY-MM-DD). Defaults to today."`
	Hours       float64  `short:"H" help:"Hours worked."`
	Description string   `help:"What was worked on."`
	Attachment  []string `help:"Attachment as name=url. Repeatable."`
	Interactive bool     `short:"i" help:"Fill in the entry through a form."`
}

func (c *NewCmd) Run(ctx *cli.Context) error {
	if err := ctx.RequireAuth(); err != nil {
		return err
	}

	if c.Date == "" {
		c.Date = time.Now().Format(constants.DateFormat)
	}

	if c.Interactive || c.Application == "" || c.Description == "" {
		if err := c.promptMissing(); err != nil {
			return err
		}
	}

	attachments, err := parseAttachments(c.Attachment)
	if err != nil {
		return err
	}

	result, err := ctx.Syncer.Submit(context.Background(), drafts.EntryInput{
		ApplicationID: c.Application,
		EntryDate:     c.Date,
		Hours:         c.Hours,
		Description:   c.Description,
		Attachments:   attachments,
	})
	if err != nil {
		return err
	}

	switch result.Status {
	case drafts.StatusSynced:
		fmt.Printf("%s Logbook entry created (%s).\n", cli.OK("✓"), result.Entry.ID)
	case drafts.StatusDraft:
		// An offline submission is saved, not lost; say so.
		fmt.Printf("Server unreachable; entry saved locally and will sync later (draft %s).\n", result.Draft.ID)
		fmt.Println(cli.Faint(fmt.Sprintf("  cause: %v", result.Cause)))
		fmt.Println(cli.Faint("  run 'prashikshan drafts sync' when back online"))
	}
	return nil
}

func (c *NewCmd) promptMissing() error {
	hoursStr := ""
	if c.Hours > 0 {
		hoursStr = strconv.FormatFloat(c.Hours, 'f', -1, 64)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Application id").Value(&c.Application),
			huh.NewInput().Title("Entry date (YYYY-MM-DD)").Value(&c.Date),
			huh.NewInput().Title("Hours").Value(&hoursStr),
			huh.NewText().Title("Description").Value(&c.Description),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	if hoursStr != "" {
		hours, err := strconv.ParseFloat(strings.TrimSpace(hoursStr), 64)
		if err != nil {
			return fmt.Errorf("invalid hours: %s", hoursStr)
		}
		c.Hours = hours
	}
	return nil
}

func parseAttachments(raw []string) ([]models.Attachment, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	attachments := make([]models.Attachment, 0, len(raw))
	for _, item := range raw {
		name, url, ok := strings.Cut(item, "=")
		if !ok {
			return nil, fmt.Errorf("invalid attachment %q (use name=url)", item)
		}
		attachments = append(attachments, models.Attachment{Name: name, URL: url})
	}
	return attachments, nil
}
