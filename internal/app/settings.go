package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"codeberg.org/snonux/dorphin/internal/nav"
)

func (m model) handleSettingsKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "esc", "S":
		m.settingsVisible = false
		m.statusMessage = "Settings closed"
	case "1":
		m.statusMessage = onOff("Autoplay", m.ctrl.ToggleSetting(nav.SettingAutoplay))
	case "2":
		m.statusMessage = onOff("Push notifications", m.ctrl.ToggleSetting(nav.SettingPushNotifications))
	case "3":
		m.statusMessage = onOff("Email updates", m.ctrl.ToggleSetting(nav.SettingEmailUpdates))
	case "4":
		m.statusMessage = "Video quality " + m.ctrl.CycleVideoQuality()
	case "5":
		if m.ctrl.ToggleSetting(nav.SettingPrivateAccount) {
			m.statusMessage = "Account is now private"
		} else {
			m.statusMessage = "Account is now public"
		}
	case "t":
		m.ctrl.ToggleTheme()
		m.statusMessage = onOff("Dark mode", m.ctrl.DarkMode())
	}
	return m, nil
}

func onOff(label string, on bool) string {
	if on {
		return label + " on"
	}
	return label + " off"
}

func (m model) renderSettings() string {
	s := m.ctrl.Settings()
	privacy := "Public"
	if s.PrivateAccount {
		privacy = "Private"
	}
	lines := []string{
		fmt.Sprintf("t  Dark mode           %s", enabled(m.ctrl.DarkMode())),
		fmt.Sprintf("1  Autoplay            %s", enabled(s.Autoplay)),
		fmt.Sprintf("2  Push notifications  %s", enabled(s.PushNotifications)),
		fmt.Sprintf("3  Email updates       %s", enabled(s.EmailUpdates)),
		fmt.Sprintf("4  Video quality       %s", s.VideoQuality),
		fmt.Sprintf("5  Account privacy     %s", privacy),
	}
	var b strings.Builder
	b.WriteString(m.styles.title.Render("Settings"))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.status.Render("esc close"))
	return m.styles.modal.Render(b.String())
}

func enabled(on bool) string {
	if on {
		return "Enabled"
	}
	return "Disabled"
}
