package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/prashikshan/prashikshan-cli/internal/cli"
	"github.com/prashikshan/prashikshan-cli/internal/models"
)

type RegisterCmd struct {
	Name     string `arg:"" help:"Full name."`
	Email    string `short:"e" help:"Account email." required:""`
	Password string `short:"p" help:"Account password." required:""`
	Role     string `short:"r" help:"Account role (student|faculty|industry)." default:"student"`
	College  string `help:"College id, for student and faculty accounts."`
}

func (c *RegisterCmd) Validate() error {
	switch strings.ToLower(c.Role) {
	case "student", "faculty", "industry":
		return nil
	default:
		return fmt.Errorf("invalid role: %s (use student, faculty, or industry)", c.Role)
	}
}

func (c *RegisterCmd) Run(ctx *cli.Context) error {
	payload := models.RegisterRequest{
		Name:     c.Name,
		Email:    c.Email,
		Password: c.Password,
		Role:     models.UserRole(strings.ToUpper(c.Role)),
	}
	if c.College != "" {
		payload.CollegeID = &c.College
	}

	user, err := ctx.API.Register(context.Background(), payload)
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	fmt.Printf("%s Account created for %s (%s). Sign in with 'prashikshan login'.\n", cli.OK("✓"), user.Name, user.Email)
	return nil
}
