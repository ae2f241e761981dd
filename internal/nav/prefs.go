package nav

// VideoQualities lists the playback quality choices in cycle order.
var VideoQualities = []string{"Auto (720p)", "1080p", "720p", "480p", "360p"}

// Settings are the session's playback, notification and privacy
// preferences.
type Settings struct {
	Autoplay          bool
	PushNotifications bool
	EmailUpdates      bool
	VideoQuality      string
	PrivateAccount    bool
}

// DefaultSettings returns the preferences of a fresh session.
func DefaultSettings() Settings {
	return Settings{
		Autoplay:          true,
		PushNotifications: true,
		VideoQuality:      VideoQualities[0],
	}
}

// Setting names a boolean preference.
type Setting int

const (
	SettingAutoplay Setting = iota
	SettingPushNotifications
	SettingEmailUpdates
	SettingPrivateAccount
)

func (s Setting) String() string {
	switch s {
	case SettingAutoplay:
		return "autoplay"
	case SettingPushNotifications:
		return "push_notifications"
	case SettingEmailUpdates:
		return "email_updates"
	case SettingPrivateAccount:
		return "private_account"
	default:
		return "unknown"
	}
}

// Settings returns the current preferences.
func (c *Controller) Settings() Settings {
	return c.settings
}

// ToggleSetting flips a boolean preference and reports its new value.
// Unknown settings are ignored and report false.
func (c *Controller) ToggleSetting(s Setting) bool {
	var field *bool
	switch s {
	case SettingAutoplay:
		field = &c.settings.Autoplay
	case SettingPushNotifications:
		field = &c.settings.PushNotifications
	case SettingEmailUpdates:
		field = &c.settings.EmailUpdates
	case SettingPrivateAccount:
		field = &c.settings.PrivateAccount
	default:
		return false
	}
	*field = !*field
	c.log.Debug("setting toggled", "setting", s, "value", *field)
	return *field
}

// CycleVideoQuality moves to the next quality choice, wrapping at the end.
func (c *Controller) CycleVideoQuality() string {
	next := 0
	for i, q := range VideoQualities {
		if q == c.settings.VideoQuality {
			next = (i + 1) % len(VideoQualities)
			break
		}
	}
	c.settings.VideoQuality = VideoQualities[next]
	return c.settings.VideoQuality
}

// ToggleLike likes or unlikes a video and reports the new state.
func (c *Controller) ToggleLike(videoID string) bool {
	liked := c.likes.toggle(videoID)
	c.log.Debug("like toggled", "video_id", videoID, "liked", liked)
	return liked
}

// IsLiked reports whether videoID is liked.
func (c *Controller) IsLiked(videoID string) bool {
	return c.likes.has(videoID)
}

// ToggleMute flips the session-wide mute flag and reports the new value.
func (c *Controller) ToggleMute() bool {
	c.muted = !c.muted
	return c.muted
}

// Muted reports whether playback is muted.
func (c *Controller) Muted() bool {
	return c.muted
}
