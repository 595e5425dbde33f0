package applications

import (
	"context"
	"fmt"

	"github.com/prashikshan/prashikshan-cli/internal/cli"
	"github.com/prashikshan/prashikshan-cli/internal/models"
)

type ListCmd struct{}

func (c *ListCmd) Run(ctx *cli.Context) error {
	if err := ctx.RequireAuth(); err != nil {
		return err
	}

	applications, err := ctx.API.ListApplications(context.Background())
	if err != nil {
		return err
	}

	if len(applications) == 0 {
		fmt.Println("No applications.")
		return nil
	}

	for _, app := range applications {
		title := app.InternshipID
		if app.Internship != nil {
			title = app.Internship.Title
		}
		fmt.Printf("%s  %s  industry:%s faculty:%s\n", cli.Faint(app.ID), title, app.IndustryStatus, app.FacultyStatus)
	}
	return nil
}

type ApplyCmd struct {
	Internship string `arg:"" help:"Internship id to apply for."`
	Resume     string `help:"URL of a resume snapshot to attach."`
}

func (c *ApplyCmd) Run(ctx *cli.Context) error {
	if err := ctx.RequireAuth(); err != nil {
		return err
	}

	payload := models.ApplicationCreate{InternshipID: c.Internship}
	if c.Resume != "" {
		payload.ResumeSnapshotURL = &c.Resume
	}

	app, err := ctx.API.CreateApplication(context.Background(), payload)
	if err != nil {
		return err
	}

	fmt.Printf("%s Applied (application %s). Log work hours with 'prashikshan logbook new -a %s'.\n", cli.OK("✓"), app.ID, app.ID)
	return nil
}
