package nav

// Screen selects the top-level view. Exactly one is active at a time.
type Screen string

const (
	ScreenHome    Screen = "home"
	ScreenShorts  Screen = "shorts"
	ScreenSearch  Screen = "search"
	ScreenProfile Screen = "profile"
	ScreenVideo   Screen = "video"
	ScreenCreator Screen = "creator"
)

// Screens lists every screen in display order.
var Screens = []Screen{ScreenHome, ScreenShorts, ScreenSearch, ScreenProfile, ScreenVideo, ScreenCreator}

func (s Screen) String() string {
	return string(s)
}

// IsValid reports whether s is one of the known screens.
func (s Screen) IsValid() bool {
	switch s {
	case ScreenHome, ScreenShorts, ScreenSearch, ScreenProfile, ScreenVideo, ScreenCreator:
		return true
	default:
		return false
	}
}

// ShowsHeader reports whether the app header (logo, search bar, avatar)
// is drawn above the screen.
func (s Screen) ShowsHeader() bool {
	return s != ScreenShorts && s != ScreenVideo && s != ScreenCreator
}

// ShowsMiniPlayer reports whether a docked mini-player is visible.
func (s Screen) ShowsMiniPlayer() bool {
	return s != ScreenShorts && s != ScreenVideo
}

// ShowsBackButton reports whether the header offers a way back home.
func (s Screen) ShowsBackButton() bool {
	return s == ScreenSearch || s == ScreenProfile
}

// IsImmersive reports whether the screen plays video full screen.
func (s Screen) IsImmersive() bool {
	return s == ScreenShorts || s == ScreenVideo
}
