package nav

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Timer messages carry the tag they were scheduled with. Rescheduling bumps
// the tag, so a message that arrives after its timer was replaced or its
// player unmounted no longer matches and is dropped.
type playbackTickMsg struct{ generation int }

type progressFlushMsg struct{ tag int }

type voiceResetMsg struct{ tag int }

type pendingWrite struct {
	videoID  string
	position int
}

// Update handles the controller's own timer messages. It reports whether
// msg belonged to the controller.
func (c *Controller) Update(msg tea.Msg) (tea.Cmd, bool) {
	switch typed := msg.(type) {
	case playbackTickMsg:
		return c.handleTick(typed), true
	case progressFlushMsg:
		c.flushProgress(typed)
		return nil, true
	case voiceResetMsg:
		if typed.tag == c.voiceTag {
			c.voiceSearch = false
		}
		return nil, true
	default:
		return nil, false
	}
}

// mountedKey identifies the player whose clock should be running, or ""
// when no clock should run.
func (c *Controller) mountedKey() string {
	switch d := c.dock.(type) {
	case MiniPlayer:
		if d.Paused || !c.screen.ShowsMiniPlayer() {
			return ""
		}
		return "mini:" + d.Video.ID
	case FullScreenPlayer:
		if d.Paused || c.screen != ScreenVideo {
			return ""
		}
		return "full:" + d.Video.ID
	default:
		return ""
	}
}

// syncClock restarts or cancels the playback clock when the mounted player
// changed. An unchanged player keeps its running tick chain.
func (c *Controller) syncClock() tea.Cmd {
	key := c.mountedKey()
	if key == c.clockKey {
		return nil
	}
	c.clockGen++
	c.clockKey = key
	if key == "" {
		return nil
	}
	return c.tick()
}

func (c *Controller) tick() tea.Cmd {
	gen := c.clockGen
	return tea.Tick(c.tickInterval, func(time.Time) tea.Msg {
		return playbackTickMsg{generation: gen}
	})
}

func (c *Controller) handleTick(msg playbackTickMsg) tea.Cmd {
	if msg.generation != c.clockGen || c.clockKey == "" {
		return nil
	}
	switch d := c.dock.(type) {
	case MiniPlayer:
		if d.Position >= d.Video.Duration {
			d.Position = 0
		} else {
			d.Position++
		}
		c.dock = d
		return tea.Batch(c.tick(), c.ScheduleProgressUpdate(d.Video.ID, d.Position))
	case FullScreenPlayer:
		if d.Position >= d.Video.Duration {
			d.Position = d.Video.Duration
			d.Paused = true
			c.dock = d
			c.syncClock()
			return nil
		}
		d.Position++
		c.dock = d
		return c.tick()
	default:
		return nil
	}
}

// ScheduleProgressUpdate records position for videoID after the debounce
// window. A newer call replaces any pending write.
func (c *Controller) ScheduleProgressUpdate(videoID string, position int) tea.Cmd {
	c.flushTag++
	c.pending = &pendingWrite{videoID: videoID, position: position}
	tag := c.flushTag
	return tea.Tick(c.debounce, func(time.Time) tea.Msg {
		return progressFlushMsg{tag: tag}
	})
}

// ReportProgress schedules a progress update for the docked video.
func (c *Controller) ReportProgress(position int) tea.Cmd {
	v, ok := c.dock.Playing()
	if !ok {
		return nil
	}
	return c.ScheduleProgressUpdate(v.ID, position)
}

// recordProgress writes position for videoID immediately. A pending
// debounced write for the same video is dropped so it cannot land later
// with an older value.
func (c *Controller) recordProgress(videoID string, position int) {
	c.progress.set(videoID, position)
	if c.pending != nil && c.pending.videoID == videoID {
		c.pending = nil
		c.flushTag++
	}
}

func (c *Controller) flushProgress(msg progressFlushMsg) {
	if c.pending == nil || msg.tag != c.flushTag {
		return
	}
	c.progress.set(c.pending.videoID, c.pending.position)
	c.pending = nil
}

// ToggleVoiceSearch flips the listening indicator. Turning it on schedules
// an automatic reset.
func (c *Controller) ToggleVoiceSearch() tea.Cmd {
	c.voiceTag++
	c.voiceSearch = !c.voiceSearch
	if !c.voiceSearch {
		return nil
	}
	tag := c.voiceTag
	return tea.Tick(c.voiceTimeout, func(time.Time) tea.Msg {
		return voiceResetMsg{tag: tag}
	})
}

// VoiceSearchActive reports whether the listening indicator is on.
func (c *Controller) VoiceSearchActive() bool {
	return c.voiceSearch
}
