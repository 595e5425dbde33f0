// Package tui is a small interactive dashboard for the draft queue:
// inspect queued logbook drafts, retry their sync, discard them.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/prashikshan/prashikshan-cli/internal/drafts"
	"github.com/prashikshan/prashikshan-cli/internal/models"
)

type syncDoneMsg struct {
	id    string
	entry *models.LogbookEntry
	err   error
}

type Model struct {
	store   *drafts.Store
	syncer  *drafts.Syncer
	spinner spinner.Model

	drafts   []models.LogbookDraft
	cursor   int
	syncing  map[string]bool
	status   string
	quitting bool
}

func NewModel(store *drafts.Store, syncer *drafts.Syncer) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = syncingStyle

	return Model{
		store:   store,
		syncer:  syncer,
		spinner: sp,
		drafts:  store.Drafts(),
		syncing: make(map[string]bool),
	}
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case syncDoneMsg:
		delete(m.syncing, msg.id)
		m.drafts = m.store.Drafts()
		if m.cursor >= len(m.drafts) && m.cursor > 0 {
			m.cursor = len(m.drafts) - 1
		}
		if msg.err != nil {
			m.status = errorStyle.Render(fmt.Sprintf("sync failed: %v", msg.err))
		} else if msg.entry != nil {
			m.status = okStyle.Render("synced as entry " + msg.entry.ID)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.drafts)-1 {
			m.cursor++
		}

	case "r":
		m.drafts = m.store.Drafts()
		m.status = ""

	case "d":
		if m.cursor < len(m.drafts) {
			id := m.drafts[m.cursor].ID
			if err := m.store.RemoveDraft(id); err != nil {
				m.status = errorStyle.Render(err.Error())
			} else {
				m.status = "draft discarded"
			}
			m.drafts = m.store.Drafts()
			if m.cursor >= len(m.drafts) && m.cursor > 0 {
				m.cursor = len(m.drafts) - 1
			}
		}

	case "s":
		if m.cursor < len(m.drafts) {
			id := m.drafts[m.cursor].ID
			if !m.syncing[id] {
				m.syncing[id] = true
				m.drafts = m.store.Drafts()
				return m, m.syncCmd(id)
			}
		}

	case "a":
		var cmds []tea.Cmd
		for _, d := range m.drafts {
			if !m.syncing[d.ID] {
				m.syncing[d.ID] = true
				cmds = append(cmds, m.syncCmd(d.ID))
			}
		}
		if len(cmds) > 0 {
			return m, tea.Sequence(cmds...)
		}
	}

	return m, nil
}

func (m Model) syncCmd(id string) tea.Cmd {
	return func() tea.Msg {
		entry, err := m.syncer.SyncDraft(context.Background(), id)
		return syncDoneMsg{id: id, entry: entry, err: err}
	}
}

// Run launches the drafts dashboard and blocks until it exits.
func Run(store *drafts.Store, syncer *drafts.Syncer) error {
	p := tea.NewProgram(NewModel(store, syncer))
	_, err := p.Run()
	return err
}
