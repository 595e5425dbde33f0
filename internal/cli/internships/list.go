package internships

import (
	"context"
	"fmt"
	"strings"

	"github.com/prashikshan/prashikshan-cli/internal/cli"
	"github.com/prashikshan/prashikshan-cli/internal/models"
)

type ListCmd struct {
	Remote     bool     `help:"Only remote internships."`
	OnSite     bool     `help:"Only on-site internships."`
	MinCredits int      `help:"Minimum academic credits."`
	Location   string   `short:"l" help:"Location filter."`
	Skill      []string `short:"s" help:"Required skill. Repeatable."`
	Search     string   `short:"q" help:"Free-text search over title, description, location and skills."`
}

func (c *ListCmd) Validate() error {
	if c.Remote && c.OnSite {
		return fmt.Errorf("--remote and --on-site are mutually exclusive")
	}
	return nil
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	if err := ctx.RequireAuth(); err != nil {
		return err
	}

	filters := models.InternshipFilters{
		MinCredits: c.MinCredits,
		Location:   c.Location,
		Skills:     c.Skill,
		Search:     c.Search,
	}
	if c.Remote {
		remote := true
		filters.Remote = &remote
	}
	if c.OnSite {
		remote := false
		filters.Remote = &remote
	}

	internships, err := ctx.API.ListInternships(context.Background(), filters)
	if err != nil {
		return err
	}

	if len(internships) == 0 {
		fmt.Println("No internships match.")
		return nil
	}

	for _, in := range internships {
		var details []string
		if in.Location != nil {
			details = append(details, *in.Location)
		}
		if in.Remote {
			details = append(details, "remote")
		}
		if in.Credits != nil {
			details = append(details, fmt.Sprintf("%d credits", *in.Credits))
		}
		if len(in.Skills) > 0 {
			details = append(details, strings.Join(in.Skills, ", "))
		}
		fmt.Printf("%s  %s  %s\n", cli.Faint(in.ID), in.Title, cli.Faint(strings.Join(details, " · ")))
	}
	return nil
}

type ShowCmd struct {
	ID string `arg:"" help:"Internship id."`
}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	if err := ctx.RequireAuth(); err != nil {
		return err
	}

	in, err := ctx.API.GetInternship(context.Background(), c.ID)
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s)\n", in.Title, in.Status)
	if in.Description != nil {
		fmt.Printf("\n%s\n", *in.Description)
	}
	if in.Location != nil {
		fmt.Printf("\nLocation: %s\n", *in.Location)
	}
	if in.Remote {
		fmt.Println("Remote: yes")
	}
	if in.Stipend != nil {
		fmt.Printf("Stipend: %.0f\n", *in.Stipend)
	}
	if in.DurationWeeks != nil {
		fmt.Printf("Duration: %d weeks\n", *in.DurationWeeks)
	}
	if in.Credits != nil {
		fmt.Printf("Credits: %d\n", *in.Credits)
	}
	if len(in.Skills) > 0 {
		fmt.Printf("Skills: %s\n", strings.Join(in.Skills, ", "))
	}
	return nil
}
