package app

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"codeberg.org/snonux/dorphin/internal/catalog"
	"codeberg.org/snonux/dorphin/internal/nav"
)

// searchState pairs the query box with its result table. Tab moves focus
// between them so single-letter shortcuts work on the results.
type searchState struct {
	input   textinput.Model
	table   table.Model
	results []catalog.Video
}

func newSearchState() searchState {
	input := textinput.New()
	input.Placeholder = "title or creator"
	input.Prompt = "Search: "
	input.CharLimit = 128
	return searchState{
		input: input,
		table: buildTable([]table.Column{
			{Title: "Title", Width: 34},
			{Title: "Creator", Width: 20},
			{Title: "Kind", Width: 6},
			{Title: "Length", Width: 8},
			{Title: "Views", Width: 7},
		}, false),
	}
}

func (s *searchState) focusInput() tea.Cmd {
	s.table.Blur()
	return s.input.Focus()
}

func (s *searchState) focusResults() {
	s.input.Blur()
	s.table.Focus()
}

func (m model) openSearch() (model, tea.Cmd) {
	cmd := m.ctrl.SelectScreen(nav.ScreenSearch)
	return m, tea.Batch(cmd, m.search.focusInput())
}

func (m model) handleSearchKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.search.input.Blur()
		return m, m.ctrl.SelectScreen(nav.ScreenHome)
	case "tab":
		if m.search.input.Focused() {
			m.search.focusResults()
			return m, nil
		}
		return m, m.search.focusInput()
	case "enter":
		return m.openSearchResult()
	case "up", "down":
		return m.updateSearchTable(msg)
	}
	if m.search.input.Focused() {
		var cmd tea.Cmd
		m.search.input, cmd = m.search.input.Update(msg)
		m.search.table.SetCursor(0)
		return m, cmd
	}
	if msg.String() == "i" {
		if idx, ok := selectedIndex(m.search.table, len(m.search.results)); ok {
			m.ctrl.OpenDetails(m.search.results[idx])
		}
		return m, nil
	}
	return m.updateSearchTable(msg)
}

func (m model) updateSearchTable(msg tea.Msg) (model, tea.Cmd) {
	var cmd tea.Cmd
	m.search.table, cmd = m.search.table.Update(msg)
	return m, cmd
}

// openSearchResult plays long videos and drops shorts into the combined
// shorts feed at their position.
func (m model) openSearchResult() (model, tea.Cmd) {
	idx, ok := selectedIndex(m.search.table, len(m.search.results))
	if !ok {
		m.statusMessage = "No matching videos"
		return m, nil
	}
	v := m.search.results[idx]
	m.search.input.Blur()
	if !v.IsShort() {
		return m, m.ctrl.OpenVideo(v)
	}
	feed := m.ctrl.Catalog().ShortsFeed("")
	for i, s := range feed {
		if s.ID == v.ID {
			return m, m.ctrl.OpenShort("", i)
		}
	}
	return m, m.ctrl.OpenShort("", 0)
}
