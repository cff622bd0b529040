package ui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/misbaha/internal/models"
	"github.com/ayoisaiah/misbaha/tally"
)

func (m *Model) formTheme() *huh.Theme {
	if m.snap.Theme.IsDark() {
		return huh.ThemeCharm()
	}

	return huh.ThemeBase()
}

func (m *Model) openForm(kind formKind, form *huh.Form) tea.Cmd {
	m.formKind = kind
	m.form = form.
		WithTheme(m.formTheme()).
		WithShowHelp(true).
		WithWidth(maxWidth)

	return m.form.Init()
}

func (m *Model) closeForm() {
	m.form = nil
	m.formKind = formNone
	m.fields = formFields{}
}

// openTargetForm asks for the session target of the pending counter.
func (m *Model) openTargetForm(c models.Counter) tea.Cmd {
	m.fields = formFields{counterID: c.ID}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("تحديد الهدف").
				Description("اترك الحقل فارغاً للبدء بدون هدف محدد.").
				Placeholder("أدخل الرقم هنا...").
				Value(&m.fields.target),
			huh.NewConfirm().
				Title("تثبيت هذا الخيار دائماً لهذا الذكر").
				Affirmative("نعم").
				Negative("لا").
				Value(&m.fields.pin),
		),
	)

	return m.openForm(formTarget, form)
}

// openEditForm edits c, or creates a new counter when c has no id.
func (m *Model) openEditForm(c models.Counter) tea.Cmd {
	m.fields = formFields{
		counterID: c.ID,
		name:      c.Name,
		pin:       c.IsFixed,
	}

	if c.Target > 0 {
		m.fields.target = strconv.Itoa(c.Target)
	}

	title := "إضافة ذكر جديد"
	if c.ID != "" {
		title = "تعديل الذكر"
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title(title),
			huh.NewInput().
				Title("اسم الذكر").
				Placeholder("مثلاً: سبحان الله...").
				Value(&m.fields.name),
			huh.NewInput().
				Title("الهدف الافتراضي").
				Placeholder("0 للبدء بدون هدف...").
				Value(&m.fields.target),
			huh.NewConfirm().
				Title("تثبيت الهدف (دخول سريع للعداد)").
				Affirmative("نعم").
				Negative("لا").
				Value(&m.fields.pin),
		),
	)

	return m.openForm(formEdit, form)
}

func (m *Model) openDeleteForm(c models.Counter) tea.Cmd {
	m.fields = formFields{counterID: c.ID}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("تأكيد الحذف").
				Description(fmt.Sprintf(
					"هل أنت متأكد من رغبتك في حذف \"%s\"؟\nسيتم مسح جميع الإحصائيات الخاصة به.",
					c.Name,
				)).
				Affirmative("نعم، احذف").
				Negative("إلغاء").
				Value(&m.fields.confirm),
		),
	)

	return m.openForm(formDelete, form)
}

// submitForm applies the values of a completed form.
func (m *Model) submitForm() {
	f := m.fields
	kind := m.formKind

	m.closeForm()

	switch kind {
	case formTarget:
		m.tally.ConfirmTargetSetup(tally.ParseTarget(f.target), f.pin)
	case formEdit:
		_, err := m.tally.Save(f.counterID, f.name, tally.ParseTarget(f.target), f.pin)
		if err != nil {
			m.logger.Warn("unable to save counter", "id", f.counterID, "err", err)
			return
		}

		if f.counterID == "" {
			m.cursor = len(m.snap.Counters) - 1
		}
	case formDelete:
		if f.confirm {
			m.tally.Delete(f.counterID)
		}
	}
}

// cancelForm dismisses the active form without changes.
func (m *Model) cancelForm() {
	if m.formKind == formTarget {
		m.tally.CancelTargetSetup()
	}

	m.closeForm()
}

func (m *Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, defaultKeymap.forceEnd):
			return m, m.quit()
		case key.Matches(msg, defaultKeymap.cancel):
			m.cancelForm()
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.submitForm()
		return m, nil
	case huh.StateAborted:
		m.cancelForm()
		return m, nil
	}

	return m, cmd
}
