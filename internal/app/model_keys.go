package app

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"codeberg.org/snonux/dorphin/internal/catalog"
	"codeberg.org/snonux/dorphin/internal/nav"
)

func (m model) handleKeyMsg(msg tea.KeyMsg) (model, tea.Cmd) {
	if cmd, handled := globalKeyHandler(msg, m.typing()); handled {
		return m, cmd
	}
	if _, ok := m.ctrl.Details(); ok {
		return m.handleDetailsKey(msg)
	}
	if m.upload.visible {
		return m.handleUploadKey(msg)
	}
	if m.pendingDelete != "" {
		return m.handleDeleteKey(msg)
	}
	if m.settingsVisible {
		return m.handleSettingsKey(msg)
	}
	if !m.typing() {
		if cmd, handled := m.handleMiniPlayerKey(msg); handled {
			return m, cmd
		}
		if next, cmd, handled := m.handleHeaderKey(msg); handled {
			return next, cmd
		}
	}
	switch m.ctrl.Screen() {
	case nav.ScreenHome:
		return m.handleHomeKey(msg)
	case nav.ScreenShorts:
		return m.handleShortsKey(msg)
	case nav.ScreenVideo:
		return m.handleVideoKey(msg)
	case nav.ScreenSearch:
		return m.handleSearchKey(msg)
	case nav.ScreenProfile:
		return m.handleProfileKey(msg)
	case nav.ScreenCreator:
		return m.handleCreatorKey(msg)
	default:
		return m, nil
	}
}

// typing reports whether a text input owns plain keystrokes.
func (m model) typing() bool {
	if m.upload.visible {
		return true
	}
	return m.ctrl.Screen() == nav.ScreenSearch && m.search.input.Focused()
}

func globalKeyHandler(msg tea.KeyMsg, typing bool) (tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit, true
	case "q":
		if typing {
			return nil, false
		}
		return tea.Quit, true
	default:
		return nil, false
	}
}

func (m model) handleMiniPlayerKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if !m.ctrl.MiniPlayerVisible() {
		return nil, false
	}
	switch msg.String() {
	case "e":
		return m.ctrl.ExpandMiniPlayer(), true
	case "x":
		m.ctrl.CloseMiniPlayer()
		return nil, true
	case "n":
		return m.ctrl.AdvanceToNextInDock(), true
	case " ":
		return m.ctrl.TogglePlayback(), true
	default:
		return nil, false
	}
}

// handleHeaderKey serves the header buttons on screens that draw it.
func (m model) handleHeaderKey(msg tea.KeyMsg) (model, tea.Cmd, bool) {
	if !m.ctrl.HeaderVisible() {
		return m, nil, false
	}
	switch msg.String() {
	case "/":
		next, cmd := m.openSearch()
		return next, cmd, true
	case "p":
		return m, m.ctrl.SelectScreen(nav.ScreenProfile), true
	case "h":
		return m, m.ctrl.SelectScreen(nav.ScreenHome), true
	case "v":
		cmd := m.ctrl.ToggleVoiceSearch()
		if m.ctrl.VoiceSearchActive() {
			m.statusMessage = "Listening..."
		} else {
			m.statusMessage = "Voice search off"
		}
		return m, cmd, true
	default:
		return m, nil, false
	}
}

func (m model) handleHomeKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch key := msg.String(); key {
	case "enter":
		return m.openFeedSelection()
	case "s":
		return m, m.ctrl.OpenShort("", 0)
	case "i":
		if idx, ok := selectedIndex(m.home, len(m.feed)); ok {
			m.ctrl.OpenDetails(m.feed[idx].video)
		}
		return m, nil
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		n, _ := strconv.Atoi(key)
		creators := m.ctrl.Catalog().Creators()
		if n > len(creators) {
			return m, nil
		}
		return m, m.ctrl.OpenCreator(creators[n-1].ID)
	default:
		var cmd tea.Cmd
		m.home, cmd = m.home.Update(msg)
		return m, cmd
	}
}

func (m model) openFeedSelection() (model, tea.Cmd) {
	idx, ok := selectedIndex(m.home, len(m.feed))
	if !ok {
		return m, nil
	}
	entry := m.feed[idx]
	if entry.video.IsShort() {
		return m, m.ctrl.OpenShort(entry.shortsCategory, entry.shortIndex)
	}
	return m, m.ctrl.OpenVideo(entry.video)
}

func (m model) handleShortsKey(msg tea.KeyMsg) (model, tea.Cmd) {
	v, _, ok := m.ctrl.CurrentShort()
	switch msg.String() {
	case "esc":
		return m, m.ctrl.SelectScreen(nav.ScreenHome)
	case "j", "down":
		if !m.ctrl.SwipeShort(1) {
			m.statusMessage = "End of feed"
		}
		return m, nil
	case "k", "up":
		if !m.ctrl.SwipeShort(-1) {
			m.statusMessage = "Start of feed"
		}
		return m, nil
	}
	if !ok {
		return m, nil
	}
	switch msg.String() {
	case "f":
		m.statusMessage = m.toggleFollow(catalog.CreatorIDFor(v.Creator), v.Creator)
		return m, nil
	case "i":
		m.ctrl.OpenDetails(v)
		return m, nil
	case "l":
		m.statusMessage = m.toggleLike(v.ID)
		return m, nil
	case "M":
		m.statusMessage = m.toggleMute()
		return m, nil
	case "m":
		m.statusMessage = "Playing in mini-player"
		return m, m.ctrl.CollapseToMiniPlayer(v)
	default:
		return m, nil
	}
}

func (m model) handleVideoKey(msg tea.KeyMsg) (model, tea.Cmd) {
	full, ok := m.ctrl.FullScreenPlayer()
	if !ok {
		if msg.String() == "esc" {
			m.ctrl.ClosePlayer()
		}
		return m, nil
	}
	switch msg.String() {
	case "esc":
		m.ctrl.ClosePlayer()
		return m, nil
	case " ":
		return m, m.ctrl.TogglePlayback()
	case "left":
		m.ctrl.Seek(-seekStep)
		return m, nil
	case "right":
		m.ctrl.Seek(seekStep)
		return m, nil
	case "m":
		m.statusMessage = "Playing in mini-player"
		return m, m.ctrl.CollapseToMiniPlayerAt(full.Video, full.Position)
	case "i":
		m.ctrl.OpenDetails(full.Video)
		return m, nil
	case "l":
		m.statusMessage = m.toggleLike(full.Video.ID)
		return m, nil
	case "M":
		m.statusMessage = m.toggleMute()
		return m, nil
	case "f":
		m.statusMessage = m.toggleFollow(catalog.CreatorIDFor(full.Video.Creator), full.Video.Creator)
		return m, nil
	case "enter":
		if idx, ok := selectedIndex(m.related, len(m.relatedVideos)); ok {
			return m, m.ctrl.OpenVideo(m.relatedVideos[idx])
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.related, cmd = m.related.Update(msg)
		return m, cmd
	}
}

func (m model) handleProfileKey(msg tea.KeyMsg) (model, tea.Cmd) {
	uploads := m.ctrl.Uploads()
	switch msg.String() {
	case "esc":
		return m, m.ctrl.SelectScreen(nav.ScreenHome)
	case "u":
		return m, m.upload.open()
	case "S":
		m.settingsVisible = true
		m.statusMessage = "Settings"
		return m, nil
	case "t":
		m.ctrl.ToggleTheme()
		if m.ctrl.DarkMode() {
			m.statusMessage = "Dark theme"
		} else {
			m.statusMessage = "Light theme"
		}
		return m, nil
	case "a":
		m.avatarIndex = (m.avatarIndex + 1) % len(catalog.AvatarChoices)
		m.ctrl.SetAvatar(catalog.AvatarChoices[m.avatarIndex])
		m.statusMessage = "Avatar set to " + m.ctrl.Avatar()
		return m, nil
	case "d":
		if idx, ok := selectedIndex(m.uploads, len(uploads)); ok {
			m.pendingDelete = uploads[idx].ID
			m.statusMessage = fmt.Sprintf("Delete %q? (y/n)", uploads[idx].Title)
		}
		return m, nil
	case "enter", "i":
		idx, ok := selectedIndex(m.uploads, len(uploads))
		if !ok {
			return m, nil
		}
		if v := uploads[idx]; msg.String() == "enter" && !v.IsShort() {
			return m, m.ctrl.OpenVideo(v)
		}
		m.ctrl.OpenDetails(uploads[idx])
		return m, nil
	default:
		var cmd tea.Cmd
		m.uploads, cmd = m.uploads.Update(msg)
		return m, cmd
	}
}

func (m model) handleDeleteKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "y":
		m.ctrl.DeleteVideo(m.pendingDelete)
		m.pendingDelete = ""
		m.statusMessage = "Video deleted"
	case "n", "esc":
		m.pendingDelete = ""
		m.statusMessage = "Delete cancelled"
	}
	return m, nil
}

func (m model) handleCreatorKey(msg tea.KeyMsg) (model, tea.Cmd) {
	id, _ := m.ctrl.SelectedCreator()
	switch msg.String() {
	case "esc":
		return m, m.ctrl.CloseCreator()
	case "f":
		creator := m.ctrl.Catalog().Creator(id)
		m.statusMessage = m.toggleFollow(creator.ID, creator.Name)
		return m, nil
	case "enter":
		if idx, ok := selectedIndex(m.creator, len(m.creatorVideos)); ok {
			return m, m.ctrl.OpenVideo(m.creatorVideos[idx])
		}
		return m, nil
	case "i":
		if idx, ok := selectedIndex(m.creator, len(m.creatorVideos)); ok {
			m.ctrl.OpenDetails(m.creatorVideos[idx])
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.creator, cmd = m.creator.Update(msg)
		return m, cmd
	}
}

func (m model) handleDetailsKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.ctrl.CloseDetails()
	case "r":
		v, _ := m.ctrl.Details()
		m.ctrl.CloseDetails()
		m.statusMessage = "Video reported. Thank you for helping keep Dorphin safe!"
		m.log.Info("video reported", "video_id", v.ID)
	}
	return m, nil
}

func (m model) toggleFollow(creatorID, name string) string {
	if m.ctrl.ToggleFollow(creatorID) {
		return "Following " + name
	}
	return "Unfollowed " + name
}

func (m model) toggleLike(videoID string) string {
	if m.ctrl.ToggleLike(videoID) {
		return "Liked"
	}
	return "Like removed"
}

func (m model) toggleMute() string {
	if m.ctrl.ToggleMute() {
		return "Muted"
	}
	return "Unmuted"
}
