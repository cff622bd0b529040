package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/misbaha/internal/models"
	"github.com/ayoisaiah/misbaha/tally"
)

const (
	appTitle    = "مسبحة الصفاء"
	appSubtitle = "اجعل لسانك رطباً بذكر الله"
	emptyList   = "لا توجد أذكار حالياً، ابدأ بإضافة ذكرك المفضل."
	doneTitle   = "ما شاء الله!"
)

// modeLabel describes how a counter is entered from the list.
func modeLabel(c *models.Counter) string {
	if !c.IsFixed {
		return "تحديد يدوي"
	}

	if c.Target > 0 {
		return fmt.Sprintf("هدف: %d", c.Target)
	}

	return "دخول مباشر"
}

func (m *Model) headerView() string {
	var s strings.Builder

	s.WriteString(m.styles.Title.Render(appTitle))
	s.WriteString("\n")
	s.WriteString(m.styles.Subtitle.Render(appSubtitle))

	return s.String()
}

func (m *Model) itemView(i int, c *models.Counter) string {
	name := c.Name
	details := m.styles.Hint.Render(fmt.Sprintf(
		"الإنجاز الكلي: %s | %s",
		m.styles.Accent.Render(fmt.Sprintf("%d", c.Lifetime)),
		modeLabel(c),
	))

	if i == m.cursor {
		return m.styles.Selected.Render(name + "\n" + details)
	}

	return m.styles.Item.Render(name + "\n" + details)
}

func (m *Model) listView() string {
	var s strings.Builder

	s.WriteString(m.headerView())
	s.WriteString("\n\n")

	if len(m.snap.Counters) == 0 {
		s.WriteString(m.styles.Hint.Render(emptyList))
	}

	for i := range m.snap.Counters {
		s.WriteString(m.itemView(i, &m.snap.Counters[i]))
		s.WriteString("\n\n")
	}

	s.WriteString(m.help.ShortHelpView(defaultKeymap.listHelp()))

	return s.String()
}

func (m *Model) countingView() string {
	c, ok := m.tally.Active()
	if !ok {
		return m.listView()
	}

	var s strings.Builder

	s.WriteString(m.styles.Title.Render(c.Name))
	s.WriteString("\n\n")

	count := m.styles.Count
	if c.Completed() {
		count = m.styles.Done
	}

	s.WriteString(count.Render(fmt.Sprintf("%d", c.CurrentCount)))
	s.WriteString("\n\n")

	if c.HasTarget() {
		s.WriteString(m.styles.Hint.Render(fmt.Sprintf("الهدف: %d", c.Target)))
		s.WriteString("\n")

		if m.showBar {
			s.WriteString(m.progress.ViewAs(c.Progress()))
			s.WriteString("\n")
		}

		s.WriteString(m.styles.Hint.Render(fmt.Sprintf("المتبقي: %d", c.Remaining())))
	} else {
		s.WriteString(m.styles.Hint.Render("بدون هدف محدد"))
	}

	s.WriteString("\n\n")
	s.WriteString(m.styles.Hint.Render(fmt.Sprintf("الإنجاز الكلي: %d", c.Lifetime)))
	s.WriteString("\n\n")
	s.WriteString(m.help.ShortHelpView(defaultKeymap.countingHelp()))

	return s.String()
}

func (m *Model) completionView() string {
	return m.styles.Modal.Render(lipgloss.JoinVertical(
		lipgloss.Center,
		m.styles.Accent.Render(doneTitle),
		"",
		m.completion,
	))
}

// View implements tea.Model.
func (m *Model) View() string {
	var view string

	switch {
	case m.form != nil:
		view = m.headerView() + "\n\n" + m.form.View()
	case m.completion != "":
		view = m.headerView() + "\n\n" + m.completionView()
	case m.snap.Screen == tally.ScreenCounting:
		view = m.countingView()
	default:
		view = m.listView()
	}

	return m.styles.Base.Render(view)
}
