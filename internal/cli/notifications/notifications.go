package notifications

import (
	"context"
	"fmt"

	"github.com/prashikshan/prashikshan-cli/internal/cli"
)

type ListCmd struct {
	Unread bool `short:"u" help:"Only unread notifications."`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	if err := ctx.RequireAuth(); err != nil {
		return err
	}

	notifications, err := ctx.API.ListNotifications(context.Background())
	if err != nil {
		return err
	}

	shown := 0
	for _, n := range notifications {
		if c.Unread && n.Read {
			continue
		}
		shown++
		marker := "•"
		if n.Read {
			marker = cli.Faint("·")
		}
		fmt.Printf("%s %s  %s\n", marker, n.Title, cli.Faint(n.ID))
		if n.Body != nil && *n.Body != "" {
			fmt.Printf("  %s\n", *n.Body)
		}
	}
	if shown == 0 {
		fmt.Println("No notifications.")
	}
	return nil
}

type ReadCmd struct {
	ID string `arg:"" help:"Notification id to mark as read."`
}

func (c *ReadCmd) Run(ctx *cli.Context) error {
	if err := ctx.RequireAuth(); err != nil {
		return err
	}

	if _, err := ctx.API.MarkNotificationRead(context.Background(), c.ID); err != nil {
		return err
	}
	fmt.Println("Marked read.")
	return nil
}
