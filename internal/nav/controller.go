// Package nav implements the navigation and playback state of the app:
// which screen is active, what is docked in the player, watch progress,
// follows, uploads and the small overlays that sit on top of any screen.
//
// A Controller is owned by the Bubble Tea model and must only be touched
// from its Update loop. Operations that mount or unmount a player return a
// tea.Cmd that keeps the simulated playback clock running.
package nav

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"codeberg.org/snonux/dorphin/internal/catalog"
	"codeberg.org/snonux/dorphin/internal/logging"
)

const (
	DefaultDebounce           = 500 * time.Millisecond
	DefaultTickInterval       = time.Second
	DefaultVoiceSearchTimeout = 2 * time.Second
	DefaultAvatar             = "UQ"
)

// Options tune a Controller. Zero values fall back to the defaults.
type Options struct {
	Debounce           time.Duration
	TickInterval       time.Duration
	VoiceSearchTimeout time.Duration
	LightMode          bool
	Avatar             string
	// Follows seeds the follow set; nil means catalog.DefaultFollows.
	Follows []string
	Logger  *slog.Logger
}

// Controller owns all cross-screen state.
type Controller struct {
	catalog *catalog.Catalog
	log     *slog.Logger

	debounce     time.Duration
	tickInterval time.Duration
	voiceTimeout time.Duration

	screen    Screen
	dock      Dock
	progress  progressMap
	follows   idSet
	likes     idSet
	uploads   uploadList
	details   *catalog.Video
	creatorID string
	shorts    ShortsSession

	darkMode    bool
	muted       bool
	settings    Settings
	avatar      string
	voiceSearch bool
	voiceTag    int

	clockGen int
	clockKey string

	flushTag int
	pending  *pendingWrite
}

// New returns a controller on the home screen with nothing docked.
func New(cat *catalog.Catalog, opts Options) *Controller {
	if cat == nil {
		cat = catalog.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	follows := opts.Follows
	if follows == nil {
		follows = catalog.DefaultFollows
	}
	avatar := opts.Avatar
	if avatar == "" {
		avatar = DefaultAvatar
	}
	return &Controller{
		catalog:      cat,
		log:          logger,
		debounce:     orDefault(opts.Debounce, DefaultDebounce),
		tickInterval: orDefault(opts.TickInterval, DefaultTickInterval),
		voiceTimeout: orDefault(opts.VoiceSearchTimeout, DefaultVoiceSearchTimeout),
		screen:       ScreenHome,
		dock:         NoDock{},
		progress:     newProgressMap(),
		follows:      newIDSet(follows),
		likes:        newIDSet(nil),
		settings:     DefaultSettings(),
		darkMode:     !opts.LightMode,
		avatar:       avatar,
	}
}

func orDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}

// Catalog exposes the library the controller navigates.
func (c *Controller) Catalog() *catalog.Catalog {
	return c.catalog
}

// Screen returns the active screen.
func (c *Controller) Screen() Screen {
	return c.screen
}

// Dock returns the current playback slot.
func (c *Controller) Dock() Dock {
	return c.dock
}

// MiniPlayer returns the docked mini-player, if any.
func (c *Controller) MiniPlayer() (MiniPlayer, bool) {
	m, ok := c.dock.(MiniPlayer)
	return m, ok
}

// FullScreenPlayer returns the expanded player, if any.
func (c *Controller) FullScreenPlayer() (FullScreenPlayer, bool) {
	f, ok := c.dock.(FullScreenPlayer)
	return f, ok
}

// HeaderVisible reports whether the app header is drawn.
func (c *Controller) HeaderVisible() bool {
	return c.screen.ShowsHeader()
}

// MiniPlayerVisible reports whether the mini-player is drawn.
func (c *Controller) MiniPlayerVisible() bool {
	_, ok := c.dock.(MiniPlayer)
	return ok && c.screen.ShowsMiniPlayer()
}

// SelectScreen switches to screen. Leaving the video screen unmounts the
// full-screen player.
func (c *Controller) SelectScreen(screen Screen) tea.Cmd {
	if !screen.IsValid() {
		return nil
	}
	c.setScreen(screen)
	return c.syncClock()
}

func (c *Controller) setScreen(screen Screen) {
	prev := c.screen
	c.screen = screen
	if prev == ScreenVideo && screen != ScreenVideo {
		if _, ok := c.dock.(FullScreenPlayer); ok {
			c.dock = NoDock{}
		}
	}
	if prev != screen {
		c.log.Debug("screen changed", "from", prev, "to", screen, "dock", dockName(c.dock))
	}
}

// OpenVideo expands a long video into the full-screen player. Shorts are
// ignored; they open through OpenShort.
func (c *Controller) OpenVideo(v catalog.Video) tea.Cmd {
	if v.Kind != catalog.KindLong {
		return nil
	}
	if mini, ok := c.dock.(MiniPlayer); ok {
		c.recordProgress(mini.Video.ID, mini.Position)
	}
	start := c.initialPosition(v)
	c.dock = FullScreenPlayer{Video: v, InitialPosition: start, Position: start}
	c.screen = ScreenVideo
	c.log.Debug("video opened", "video_id", v.ID, "position", start)
	return c.syncClock()
}

func (c *Controller) initialPosition(v catalog.Video) int {
	if pos, ok := c.progress.get(v.ID); ok {
		return clampPosition(pos, v.Duration)
	}
	if pos, ok := v.ProgressSeconds(); ok {
		return pos
	}
	return 0
}

// CollapseToMiniPlayer docks v in the mini-player at its last known
// position and returns home.
func (c *Controller) CollapseToMiniPlayer(v catalog.Video) tea.Cmd {
	pos, _ := c.progress.get(v.ID)
	return c.collapse(v, pos)
}

// CollapseToMiniPlayerAt records position for v, then docks it.
func (c *Controller) CollapseToMiniPlayerAt(v catalog.Video, position int) tea.Cmd {
	position = clampPosition(position, v.Duration)
	c.recordProgress(v.ID, position)
	return c.collapse(v, position)
}

func (c *Controller) collapse(v catalog.Video, position int) tea.Cmd {
	mini := MiniPlayer{Video: v, Position: position}
	if c.screen == ScreenShorts {
		resume := c.shorts
		mini.Resume = &resume
	}
	c.dock = mini
	c.screen = ScreenHome
	c.log.Debug("collapsed to mini-player", "video_id", v.ID, "position", position)
	return c.syncClock()
}

// ExpandMiniPlayer re-enters the immersive view of the docked video and
// releases the dock. Shorts resume in the shorts feed at the docked short.
func (c *Controller) ExpandMiniPlayer() tea.Cmd {
	mini, ok := c.dock.(MiniPlayer)
	if !ok {
		return nil
	}
	c.dock = NoDock{}
	if mini.Video.IsShort() {
		c.shorts = c.resumeSession(mini)
		c.screen = ScreenShorts
	} else {
		c.dock = FullScreenPlayer{Video: mini.Video, InitialPosition: mini.Position, Position: mini.Position, Paused: mini.Paused}
		c.screen = ScreenVideo
	}
	c.log.Debug("mini-player expanded", "video_id", mini.Video.ID, "screen", c.screen)
	return c.syncClock()
}

func (c *Controller) resumeSession(mini MiniPlayer) ShortsSession {
	id := mini.Video.ID
	if mini.Resume != nil {
		if idx := indexOf(c.catalog.ShortsFeed(mini.Resume.CategoryID), id); idx >= 0 {
			return ShortsSession{CategoryID: mini.Resume.CategoryID, Index: idx}
		}
	}
	if idx := indexOf(c.catalog.ShortsFeed(""), id); idx >= 0 {
		return ShortsSession{Index: idx}
	}
	if mini.Resume != nil {
		return *mini.Resume
	}
	return ShortsSession{}
}

// CloseMiniPlayer drops the mini-player without saving progress.
func (c *Controller) CloseMiniPlayer() {
	if _, ok := c.dock.(MiniPlayer); !ok {
		return
	}
	c.dock = NoDock{}
	c.syncClock()
	c.log.Debug("mini-player closed")
}

// ClosePlayer closes the full-screen player and returns home without
// saving progress.
func (c *Controller) ClosePlayer() {
	if _, ok := c.dock.(FullScreenPlayer); ok {
		c.dock = NoDock{}
	}
	c.screen = ScreenHome
	c.syncClock()
	c.log.Debug("player closed")
}

// AdvanceToNextInDock replaces the docked mini-player video with the next
// one of the same kind, wrapping around at the end of the list.
func (c *Controller) AdvanceToNextInDock() tea.Cmd {
	mini, ok := c.dock.(MiniPlayer)
	if !ok {
		return nil
	}
	list := c.catalog.ListFor(mini.Video.Kind)
	idx := indexOf(list, mini.Video.ID)
	if idx < 0 {
		return nil
	}
	next := list[(idx+1)%len(list)]
	pos, _ := c.progress.get(next.ID)
	mini.Video = next
	mini.Position = clampPosition(pos, next.Duration)
	c.dock = mini
	c.log.Debug("advanced mini-player", "video_id", next.ID)
	return c.syncClock()
}

// TogglePlayback pauses or resumes the docked player. Resuming a
// full-screen video that reached its end starts it over.
func (c *Controller) TogglePlayback() tea.Cmd {
	switch d := c.dock.(type) {
	case MiniPlayer:
		d.Paused = !d.Paused
		c.dock = d
	case FullScreenPlayer:
		d.Paused = !d.Paused
		if !d.Paused && d.Position >= d.Video.Duration {
			d.Position = 0
		}
		c.dock = d
	default:
		return nil
	}
	return c.syncClock()
}

// Seek moves the docked player by delta seconds within the video.
func (c *Controller) Seek(delta int) {
	switch d := c.dock.(type) {
	case MiniPlayer:
		d.Position = clampPosition(d.Position+delta, d.Video.Duration)
		c.dock = d
	case FullScreenPlayer:
		d.Position = clampPosition(d.Position+delta, d.Video.Duration)
		c.dock = d
	}
}

// Progress returns the recorded position for a video.
func (c *Controller) Progress(videoID string) (int, bool) {
	return c.progress.get(videoID)
}

// ProgressSnapshot copies the progress map.
func (c *Controller) ProgressSnapshot() map[string]int {
	return c.progress.snapshot()
}

// ToggleFollow follows or unfollows a creator and reports the new state.
func (c *Controller) ToggleFollow(creatorID string) bool {
	following := c.follows.toggle(creatorID)
	c.log.Debug("follow toggled", "creator_id", creatorID, "following", following)
	return following
}

// IsFollowing reports whether creatorID is followed.
func (c *Controller) IsFollowing(creatorID string) bool {
	return c.follows.has(creatorID)
}

// Following lists followed creator ids in sorted order.
func (c *Controller) Following() []string {
	return c.follows.sorted()
}

// UploadVideo adds v to the front of the user's uploads.
func (c *Controller) UploadVideo(v catalog.Video) {
	c.uploads = c.uploads.prepend(v)
	c.log.Debug("video uploaded", "video_id", v.ID)
}

// DeleteVideo removes an upload. Unknown ids are ignored.
func (c *Controller) DeleteVideo(videoID string) {
	c.uploads = c.uploads.without(videoID)
}

// Uploads returns the user's uploads, newest first.
func (c *Controller) Uploads() []catalog.Video {
	return append([]catalog.Video(nil), c.uploads...)
}

// OpenDetails shows the details overlay for v over any screen.
func (c *Controller) OpenDetails(v catalog.Video) {
	c.details = &v
}

// CloseDetails hides the details overlay.
func (c *Controller) CloseDetails() {
	c.details = nil
}

// Details returns the video shown in the details overlay.
func (c *Controller) Details() (catalog.Video, bool) {
	if c.details == nil {
		return catalog.Video{}, false
	}
	return *c.details, true
}

// OpenCreator shows a creator's profile.
func (c *Controller) OpenCreator(creatorID string) tea.Cmd {
	c.creatorID = creatorID
	c.setScreen(ScreenCreator)
	return c.syncClock()
}

// CloseCreator leaves the creator profile for home.
func (c *Controller) CloseCreator() tea.Cmd {
	c.creatorID = ""
	c.setScreen(ScreenHome)
	return c.syncClock()
}

// SelectedCreator returns the creator whose profile is open.
func (c *Controller) SelectedCreator() (string, bool) {
	return c.creatorID, c.creatorID != ""
}

// ToggleTheme flips between dark and light mode.
func (c *Controller) ToggleTheme() {
	c.darkMode = !c.darkMode
}

// DarkMode reports whether the dark theme is active.
func (c *Controller) DarkMode() bool {
	return c.darkMode
}

// SetAvatar changes the user's avatar. Blank values are ignored.
func (c *Controller) SetAvatar(avatar string) {
	if avatar == "" {
		return
	}
	c.avatar = avatar
}

// Avatar returns the user's avatar text.
func (c *Controller) Avatar() string {
	return c.avatar
}
