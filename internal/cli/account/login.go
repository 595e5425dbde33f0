package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/prashikshan/prashikshan-cli/internal/cli"
	"github.com/prashikshan/prashikshan-cli/internal/logger"
	"github.com/prashikshan/prashikshan-cli/internal/models"
)

type LoginCmd struct {
	Email    string `short:"e" help:"Account email."`
	Password string `short:"p" help:"Account password. Prompted when omitted."`
}

func (c *LoginCmd) Run(ctx *cli.Context) error {
	email := strings.TrimSpace(c.Email)
	password := c.Password

	if email == "" || password == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title("Email").Value(&email),
				huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&password),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
	}

	if email == "" {
		return fmt.Errorf("email is required")
	}

	tokens, err := ctx.API.Login(context.Background(), models.LoginRequest{Email: email, Password: password})
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	if err := ctx.Auth.SetTokens(tokens); err != nil {
		return err
	}

	logger.Info("Signed in", "email", email)
	fmt.Println(cli.OK("Signed in."))
	return nil
}
