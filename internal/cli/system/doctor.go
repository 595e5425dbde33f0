package system

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prashikshan/prashikshan-cli/internal/cli"
	"github.com/prashikshan/prashikshan-cli/internal/keyring"
	"github.com/prashikshan/prashikshan-cli/internal/models"
)

type DoctorCmd struct{}

func (c *DoctorCmd) Run(ctx *cli.Context) error {
	problems := 0
	check := func(ok bool, name, detail string) {
		mark := cli.OK("✓")
		if !ok {
			mark = "✗"
			problems++
		}
		fmt.Printf("%s %s", mark, name)
		if detail != "" {
			fmt.Printf(" %s", cli.Faint("("+detail+")"))
		}
		fmt.Println()
	}

	check(true, "config", ctx.ConfigPath)

	drafts := ctx.Drafts.Drafts()
	stuck := 0
	for _, d := range drafts {
		if d.Status == models.DraftError {
			stuck++
		}
	}
	detail := fmt.Sprintf("%d queued, %d in error", len(drafts), stuck)
	check(stuck == 0, fmt.Sprintf("draft queue: %s backend at %s", ctx.Config.Backend, ctx.Store.GetDataPath()), detail)

	check(keyring.IsAvailable(), "OS keyring", "refresh token falls back to local storage when unavailable")

	check(ctx.Auth.SignedIn(), "session", sessionDetail(ctx))

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(ctx.Config.APIURL + "/api/v1/internships")
	if err != nil {
		check(false, "backend "+ctx.Config.APIURL, err.Error())
	} else {
		resp.Body.Close()
		// Any HTTP answer means the backend is reachable; auth problems
		// are the session check's business.
		check(true, "backend "+ctx.Config.APIURL, resp.Status)
	}

	if problems > 0 {
		fmt.Printf("\n%d problem(s) found.\n", problems)
	} else {
		fmt.Println("\nAll checks passed.")
	}
	return nil
}

func sessionDetail(ctx *cli.Context) string {
	if !ctx.Auth.SignedIn() {
		return "not signed in"
	}
	if ctx.Auth.Expired() {
		return "access token expired; will refresh on next request"
	}
	return "signed in"
}
