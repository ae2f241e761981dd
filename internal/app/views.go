package app

import (
	"fmt"
	"strings"

	"codeberg.org/snonux/dorphin/internal/catalog"
	"codeberg.org/snonux/dorphin/internal/nav"
)

func (m model) View() string {
	var parts []string
	if m.ctrl.HeaderVisible() {
		parts = append(parts, m.renderHeader())
	}
	parts = append(parts, m.renderScreen())
	if m.ctrl.MiniPlayerVisible() {
		parts = append(parts, m.renderMiniPlayer())
	}
	parts = append(parts, m.styles.status.Render(m.statusMessage), m.styles.status.Render(m.helpLine()))
	body := strings.Join(parts, "\n")
	if overlay := m.renderOverlay(); overlay != "" {
		return body + "\n\n" + overlay
	}
	return body
}

func (m model) renderHeader() string {
	screen := m.ctrl.Screen()
	left := m.styles.header.Render("Dorphin")
	if screen.ShowsBackButton() {
		left = m.styles.status.Render("← esc") + "  " + left + " " + m.styles.title.Render(screen.String())
	}
	right := "[" + m.ctrl.Avatar() + "]"
	if m.ctrl.VoiceSearchActive() {
		right = m.styles.alert.Render("● listening") + "  " + right
	}
	return left + "    " + right
}

func (m model) renderScreen() string {
	switch m.ctrl.Screen() {
	case nav.ScreenShorts:
		return m.renderShorts()
	case nav.ScreenVideo:
		return m.renderPlayer()
	case nav.ScreenSearch:
		return m.renderSearch()
	case nav.ScreenProfile:
		return m.renderProfile()
	case nav.ScreenCreator:
		return m.renderCreator()
	default:
		return m.renderHome()
	}
}

func (m model) renderHome() string {
	var creators []string
	for i, c := range m.ctrl.Catalog().Creators() {
		label := fmt.Sprintf("%d %s", i+1, c.Name)
		if m.ctrl.IsFollowing(c.ID) {
			label = m.styles.highlight.Render(label + " ✓")
		}
		creators = append(creators, label)
	}
	return m.styles.table.Render(m.home.View()) + "\n" + strings.Join(creators, "  ")
}

func (m model) renderShorts() string {
	v, idx, ok := m.ctrl.CurrentShort()
	if !ok {
		return m.styles.status.Render("No shorts in this feed")
	}
	feed := m.ctrl.ShortsFeed()
	var b strings.Builder
	b.WriteString(m.styles.header.Render(fmt.Sprintf("Shorts %d/%d", idx+1, len(feed))))
	b.WriteString("\n\n")
	b.WriteString(m.styles.title.Render(v.Title))
	b.WriteString("\n")
	creator := v.Creator
	if m.ctrl.IsFollowing(catalog.CreatorIDFor(v.Creator)) {
		creator += " ✓ following"
	}
	b.WriteString(m.styles.text.Render(creator))
	if badges := m.playerBadges(v.ID); badges != "" {
		b.WriteString("  " + badges)
	}
	b.WriteString("\n")
	b.WriteString(m.styles.status.Render(fmt.Sprintf("%s  ♥ %s  💬 %s  ▶ %s  #%s",
		formatDuration(v.Duration), formatCount(v.Likes), formatCount(v.Comments), formatCount(v.Views), v.ShortCategory)))
	return m.styles.modal.Render(b.String())
}

func (m model) renderPlayer() string {
	full, ok := m.ctrl.FullScreenPlayer()
	if !ok {
		return m.styles.status.Render("Nothing playing")
	}
	v := full.Video
	state := "▶"
	if full.Paused {
		state = "⏸"
	}
	var b strings.Builder
	b.WriteString(m.styles.title.Render(v.Title))
	b.WriteString("\n")
	b.WriteString(m.styles.text.Render(fmt.Sprintf("%s · %s views · %s", v.Creator, formatCount(v.Views), v.UploadDate)))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s %s %s / %s", state, renderProgressBar(full.Position, v.Duration, 40),
		formatDuration(full.Position), formatDuration(v.Duration)))
	if badges := m.playerBadges(v.ID); badges != "" {
		b.WriteString("  " + badges)
	}
	b.WriteString("\n\n")
	b.WriteString(m.styles.table.Render(m.related.View()))
	return b.String()
}

func (m model) renderSearch() string {
	count := m.styles.status.Render(fmt.Sprintf("%d results", len(m.search.results)))
	return m.search.input.View() + "  " + count + "\n" + m.styles.table.Render(m.search.table.View())
}

func (m model) renderProfile() string {
	p := m.ctrl.Catalog().Profile()
	theme := "dark"
	if !m.ctrl.DarkMode() {
		theme = "light"
	}
	var b strings.Builder
	b.WriteString(m.styles.title.Render(fmt.Sprintf("[%s] %s", m.ctrl.Avatar(), p.DisplayName)))
	b.WriteString("\n")
	b.WriteString(m.styles.text.Render(fmt.Sprintf("@%s · %s followers · %d following · theme %s",
		p.Username, formatCount(p.Followers), len(m.ctrl.Following()), theme)))
	b.WriteString("\n")
	uploads := m.ctrl.Uploads()
	if len(uploads) == 0 {
		b.WriteString(m.styles.status.Render("No uploads yet. Press u to upload a video."))
		return b.String()
	}
	b.WriteString(m.styles.table.Render(m.uploads.View()))
	return b.String()
}

func (m model) renderCreator() string {
	id, _ := m.ctrl.SelectedCreator()
	c := m.ctrl.Catalog().Creator(id)
	follow := "not following"
	if m.ctrl.IsFollowing(c.ID) {
		follow = m.styles.highlight.Render("following")
	}
	var b strings.Builder
	b.WriteString(m.styles.title.Render(c.Name) + " " + m.styles.status.Render(c.Username) + "  " + follow)
	b.WriteString("\n")
	b.WriteString(m.styles.text.Render(c.Bio))
	b.WriteString("\n")
	b.WriteString(m.styles.status.Render(fmt.Sprintf("%s followers · %s following · %d videos",
		formatCount(c.Followers), formatCount(c.Following), c.Videos)))
	b.WriteString("\n")
	b.WriteString(m.styles.table.Render(m.creator.View()))
	return b.String()
}

func (m model) renderMiniPlayer() string {
	mini, ok := m.ctrl.MiniPlayer()
	if !ok {
		return ""
	}
	state := "▶"
	if mini.Paused {
		state = "⏸"
	}
	v := mini.Video
	line := fmt.Sprintf("%s %s · %s %s %s/%s", state, truncate(v.Title, 32), truncate(v.Creator, 20),
		renderProgressBar(mini.Position, v.Duration, 20), formatDuration(mini.Position), formatDuration(v.Duration))
	return m.styles.mini.Render(line)
}

func (m model) renderOverlay() string {
	if v, ok := m.ctrl.Details(); ok {
		return m.renderDetails(v)
	}
	if m.upload.visible {
		return m.renderUploadModal()
	}
	if m.settingsVisible {
		return m.renderSettings()
	}
	return ""
}

// playerBadges shows the like and mute state next to a playing video.
func (m model) playerBadges(videoID string) string {
	var badges []string
	if m.ctrl.IsLiked(videoID) {
		badges = append(badges, m.styles.highlight.Render("♥ liked"))
	}
	if m.ctrl.Muted() {
		badges = append(badges, m.styles.status.Render("muted"))
	}
	return strings.Join(badges, "  ")
}

func (m model) renderDetails(v catalog.Video) string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render(v.Title))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("By %s · uploaded %s\n", v.Creator, v.UploadDate))
	b.WriteString(fmt.Sprintf("%s views · %s likes · %s comments · %s\n",
		formatCount(v.Views), formatCount(v.Likes), formatCount(v.Comments), formatDuration(v.Duration)))
	b.WriteString("\n")
	b.WriteString(m.styles.status.Render("r report · esc close"))
	return m.styles.modal.Render(b.String())
}

func (m model) helpLine() string {
	var help string
	switch m.ctrl.Screen() {
	case nav.ScreenHome:
		help = "↑/↓ navigate • enter play • i details • s shorts • 1-5 creators • / search • p profile • v voice • q quit"
	case nav.ScreenShorts:
		help = "j/k swipe • f follow • l like • M mute • i details • m mini-player • esc back"
	case nav.ScreenVideo:
		help = "space pause • ←/→ seek • l like • M mute • m mini-player • f follow • i details • enter play next • esc close"
	case nav.ScreenSearch:
		help = "type to search • tab results • enter open • esc back"
	case nav.ScreenProfile:
		help = "u upload • d delete • S settings • t theme • a avatar • enter play • esc back"
	case nav.ScreenCreator:
		help = "f follow • enter play • i details • esc back"
	}
	if m.ctrl.MiniPlayerVisible() {
		help += "  |  mini: e expand • x close • n next • space pause"
	}
	return help
}
