package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/prashikshan/prashikshan-cli/internal/api"
	"github.com/prashikshan/prashikshan-cli/internal/auth"
	"github.com/prashikshan/prashikshan-cli/internal/config"
	"github.com/prashikshan/prashikshan-cli/internal/drafts"
	"github.com/prashikshan/prashikshan-cli/internal/models"
	"github.com/prashikshan/prashikshan-cli/internal/storage"
)

// Context carries the wired client components into every command.
type Context struct {
	Config     config.Config
	ConfigPath string
	Store      storage.Provider
	Drafts     *drafts.Store
	Syncer     *drafts.Syncer
	API        *api.Client
	Auth       *auth.Manager
}

// RequireAuth returns ErrSignedOut when no session is present.
func (c *Context) RequireAuth() error {
	if !c.Auth.SignedIn() {
		return auth.ErrSignedOut
	}
	return nil
}

var (
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	syncingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

// StatusLabel renders a draft status with its conventional color.
func StatusLabel(status models.DraftStatus) string {
	switch status {
	case models.DraftPending:
		return pendingStyle.Render(string(status))
	case models.DraftSyncing:
		return syncingStyle.Render(string(status))
	case models.DraftError:
		return errorStyle.Render(string(status))
	default:
		return string(status)
	}
}

// OK renders a success marker.
func OK(s string) string { return okStyle.Render(s) }

// Faint renders de-emphasized detail text.
func Faint(s string) string { return faintStyle.Render(s) }
