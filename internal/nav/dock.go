package nav

import "codeberg.org/snonux/dorphin/internal/catalog"

// Dock is the single playback slot. It holds exactly one of NoDock,
// MiniPlayer or FullScreenPlayer, so a video can never sit in both the
// mini-player and the full-screen player.
type Dock interface {
	isDock()
	// Playing returns the docked video, if any.
	Playing() (catalog.Video, bool)
}

// NoDock means nothing is playing.
type NoDock struct{}

// MiniPlayer is the docked, backgrounded player shown over non-immersive
// screens.
type MiniPlayer struct {
	Video    catalog.Video
	Position int
	Paused   bool
	// Resume records the shorts feed the video was collapsed from.
	Resume *ShortsSession
}

// FullScreenPlayer is the expanded long-video player.
type FullScreenPlayer struct {
	Video           catalog.Video
	InitialPosition int
	Position        int
	Paused          bool
}

func (NoDock) isDock()           {}
func (MiniPlayer) isDock()       {}
func (FullScreenPlayer) isDock() {}

func (NoDock) Playing() (catalog.Video, bool) { return catalog.Video{}, false }

func (m MiniPlayer) Playing() (catalog.Video, bool) { return m.Video, true }

func (f FullScreenPlayer) Playing() (catalog.Video, bool) { return f.Video, true }

func dockName(d Dock) string {
	switch d.(type) {
	case MiniPlayer:
		return "mini"
	case FullScreenPlayer:
		return "fullscreen"
	default:
		return "none"
	}
}

func clampPosition(pos, duration int) int {
	if pos < 0 {
		return 0
	}
	if duration > 0 && pos > duration {
		return duration
	}
	return pos
}
