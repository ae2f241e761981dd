package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"codeberg.org/snonux/dorphin/internal/catalog"
)

type uploadForm struct {
	visible bool
	busy    bool
	title   textinput.Model
	kind    catalog.Kind
}

func newUploadForm() uploadForm {
	title := textinput.New()
	title.Placeholder = "video title"
	title.Prompt = "Title: "
	title.CharLimit = 100
	return uploadForm{title: title, kind: catalog.KindLong}
}

func (f *uploadForm) open() tea.Cmd {
	f.visible = true
	f.busy = false
	f.kind = catalog.KindLong
	f.title.SetValue("")
	return f.title.Focus()
}

func (f *uploadForm) close() {
	f.visible = false
	f.busy = false
	f.title.Blur()
}

func (f *uploadForm) toggleKind() {
	if f.kind == catalog.KindLong {
		f.kind = catalog.KindShort
		return
	}
	f.kind = catalog.KindLong
}

func (m model) handleUploadKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if m.upload.busy {
		return m, nil
	}
	switch msg.String() {
	case "esc":
		m.upload.close()
		m.statusMessage = "Upload cancelled"
		return m, nil
	case "tab", "shift+tab":
		m.upload.toggleKind()
		return m, nil
	case "enter":
		return m.submitUpload()
	}
	var cmd tea.Cmd
	m.upload.title, cmd = m.upload.title.Update(msg)
	return m, cmd
}

// submitUpload validates the form and finishes the upload after the
// configured delay.
func (m model) submitUpload() (model, tea.Cmd) {
	v, err := catalog.NewUpload(m.upload.title.Value(), m.upload.kind, time.Now())
	if err != nil {
		m.statusMessage = err.Error()
		return m, nil
	}
	m.upload.busy = true
	m.upload.title.Blur()
	m.statusMessage = fmt.Sprintf("Uploading %q...", v.Title)
	return m, tea.Tick(m.uploadDelay, func(time.Time) tea.Msg {
		return uploadFinishedMsg{video: v}
	})
}

func (m model) renderUploadModal() string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render("Upload video"))
	b.WriteString("\n(Tab switches kind, Enter uploads, Esc cancels)\n\n")
	b.WriteString(m.upload.title.View())
	b.WriteString("\n")
	long, short := "( ) long", "( ) short"
	if m.upload.kind == catalog.KindLong {
		long = m.styles.highlight.Render("(x) long")
	} else {
		short = m.styles.highlight.Render("(x) short")
	}
	b.WriteString("Kind: " + long + "  " + short + "\n")
	if m.upload.busy {
		b.WriteString("\n" + m.styles.status.Render("Uploading..."))
	}
	return m.styles.modal.Render(b.String())
}
