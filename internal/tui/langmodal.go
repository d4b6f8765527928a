package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/farmlook/farmlook/internal/i18n"
	"github.com/farmlook/farmlook/internal/store"
)

// langModalModel is the first-run language prompt. It shows until a
// language has been chosen once; closing without choosing leaves the
// first-run flag unset, so it comes back on the next start.
type langModalModel struct {
	idx int
}

func newLangModal(current i18n.Lang) *langModalModel {
	return &langModalModel{idx: langIndex(current)}
}

func (m *langModalModel) update(msg tea.Msg, a *App) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	langs := i18n.All()
	switch key.String() {
	case "up", "k":
		m.idx = (m.idx + len(langs) - 1) % len(langs)
	case "down", "j":
		m.idx = (m.idx + 1) % len(langs)
	case "enter":
		ctx := context.Background()
		lang := langs[m.idx]
		if err := i18n.Save(ctx, a.store, lang); err != nil {
			a.setAlert(err.Error(), true)
			return nil
		}
		if err := a.store.Set(ctx, store.KeyHasSelectedLanguage, "true"); err != nil {
			a.setAlert(err.Error(), true)
			return nil
		}
		a.lang = lang
		a.langModal = nil
		a.pick.refresh(a)
	case "esc":
		a.langModal = nil
	}
	return nil
}

func (m *langModalModel) view(a *App) string {
	welcome := "Welcome! Let's get started"
	if i18n.All()[m.idx] == i18n.Hausa {
		welcome = "Barka da zuwa! Mu fara"
	}
	content := titleStyle.Render(welcome) + "\n\n" + languagePicker(a, m.idx)
	return modalStyle.Render(content)
}
