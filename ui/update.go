package ui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/misbaha/feedback"
	"github.com/ayoisaiah/misbaha/internal/models"
	"github.com/ayoisaiah/misbaha/tally"
)

// announceMsg reports the outcome of a completion announcement.
type announceMsg struct {
	err error
}

func (m *Model) announce(c *tally.Completion) tea.Cmd {
	if m.announcer == nil {
		return nil
	}

	ann := feedback.Announcement{
		Name:    c.Name,
		Message: c.Message,
		Target:  c.Target,
	}

	announcer := m.announcer

	return func() tea.Msg {
		return announceMsg{
			err: announcer.Announce(context.Background(), ann),
		}
	}
}

func (m *Model) quit() tea.Cmd {
	return tea.Batch(tea.ClearScreen, tea.Quit)
}

func (m *Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, defaultKeymap.down):
		if m.cursor < len(m.snap.Counters)-1 {
			m.cursor++
		}

	case key.Matches(msg, defaultKeymap.enter):
		if m.tally.Select(m.selected()) == tally.SelectPrompt {
			c, _ := m.tally.Pending()
			return m, m.openTargetForm(c)
		}

	case key.Matches(msg, defaultKeymap.add):
		return m, m.openEditForm(models.Counter{})

	case key.Matches(msg, defaultKeymap.edit):
		if c, ok := m.tally.Get(m.selected()); ok {
			return m, m.openEditForm(c)
		}

	case key.Matches(msg, defaultKeymap.remove):
		if c, ok := m.tally.Get(m.selected()); ok {
			return m, m.openDeleteForm(c)
		}

	case key.Matches(msg, defaultKeymap.theme):
		m.tally.ToggleTheme()

	case key.Matches(msg, defaultKeymap.quit):
		return m, m.quit()
	}

	return m, nil
}

func (m *Model) handleCountingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.hit):
		res := m.tally.Hit()
		if res.Completion != nil {
			m.completion = res.Completion.Message
			return m, m.announce(res.Completion)
		}

	case key.Matches(msg, defaultKeymap.reset):
		m.tally.Reset()

	case key.Matches(msg, defaultKeymap.back):
		m.tally.GoBack()

	case key.Matches(msg, defaultKeymap.quit):
		return m, m.quit()
	}

	return m, nil
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, defaultKeymap.forceEnd) {
		return m, m.quit()
	}

	// any key dismisses the completion message
	if m.completion != "" {
		m.completion = ""
		return m, nil
	}

	if m.snap.Screen == tally.ScreenCounting {
		return m.handleCountingKey(msg)
	}

	return m.handleListKey(msg)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.logger.Enabled(context.Background(), slog.LevelDebug) {
		m.logger.Debug(spew.Sdump(msg))
	}

	switch msg := msg.(type) {
	case announceMsg:
		if msg.err != nil {
			m.logger.Error("completion command failed", "err", msg.err)
		}

		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

		m.progress.Width = max(min(msg.Width-padding*2-4, maxWidth), 10)

		if m.form == nil {
			return m, nil
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress, _ = progressModel.(progress.Model)

		return m, cmd
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKeyPress(msg)
	}

	return m, nil
}
