package tui

import (
	"fmt"
	"strings"

	"github.com/prashikshan/prashikshan-cli/internal/models"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Logbook drafts"))
	b.WriteString("\n\n")

	if len(m.drafts) == 0 {
		b.WriteString(faintStyle.Render("No queued drafts."))
		b.WriteString("\n")
	}

	for i, d := range m.drafts {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}

		status := m.renderStatus(d)
		line := fmt.Sprintf("%s%s  %s  %4.1fh  %s", cursor, d.EntryDate, status, d.Hours, d.Description)
		b.WriteString(line)
		b.WriteString("\n")

		if i == m.cursor && d.Status == models.DraftError && d.LastError != nil {
			b.WriteString(faintStyle.Render("    last error: " + *d.LastError))
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(faintStyle.Render("s sync · a sync all · d discard · r refresh · q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderStatus(d models.LogbookDraft) string {
	if m.syncing[d.ID] || d.Status == models.DraftSyncing {
		return m.spinner.View() + syncingStyle.Render("syncing")
	}
	switch d.Status {
	case models.DraftError:
		return errorStyle.Render("error  ")
	default:
		return pendingStyle.Render("pending")
	}
}
