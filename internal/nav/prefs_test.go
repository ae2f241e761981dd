package nav

import "testing"

func TestDefaultSettings(t *testing.T) {
	c := newTestController(t)
	s := c.Settings()
	if !s.Autoplay || !s.PushNotifications || s.EmailUpdates || s.PrivateAccount {
		t.Fatalf("unexpected defaults %+v", s)
	}
	if s.VideoQuality != "Auto (720p)" {
		t.Fatalf("unexpected quality %q", s.VideoQuality)
	}
}

func TestToggleSetting(t *testing.T) {
	c := newTestController(t)
	cases := []struct {
		setting Setting
		want    bool
		get     func(Settings) bool
	}{
		{SettingAutoplay, false, func(s Settings) bool { return s.Autoplay }},
		{SettingPushNotifications, false, func(s Settings) bool { return s.PushNotifications }},
		{SettingEmailUpdates, true, func(s Settings) bool { return s.EmailUpdates }},
		{SettingPrivateAccount, true, func(s Settings) bool { return s.PrivateAccount }},
	}
	for _, tc := range cases {
		t.Run(tc.setting.String(), func(t *testing.T) {
			if got := c.ToggleSetting(tc.setting); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
			if tc.get(c.Settings()) != tc.want {
				t.Fatalf("setting not stored")
			}
		})
	}
	if c.ToggleSetting(Setting(99)) {
		t.Fatalf("unknown setting must report false")
	}
}

func TestCycleVideoQualityWraps(t *testing.T) {
	c := newTestController(t)
	for i := 1; i < len(VideoQualities); i++ {
		if got := c.CycleVideoQuality(); got != VideoQualities[i] {
			t.Fatalf("step %d: expected %q, got %q", i, VideoQualities[i], got)
		}
	}
	if got := c.CycleVideoQuality(); got != VideoQualities[0] {
		t.Fatalf("expected wrap to %q, got %q", VideoQualities[0], got)
	}
}

func TestLikeAndMute(t *testing.T) {
	c := newTestController(t)
	if c.IsLiked("3") {
		t.Fatalf("fresh session must not like anything")
	}
	if !c.ToggleLike("3") || !c.IsLiked("3") {
		t.Fatalf("expected video 3 liked")
	}
	if c.ToggleLike("3") || c.IsLiked("3") {
		t.Fatalf("expected second toggle to unlike")
	}
	if c.Muted() {
		t.Fatalf("expected unmuted start")
	}
	if !c.ToggleMute() || !c.Muted() {
		t.Fatalf("expected muted")
	}
	if c.ToggleMute() {
		t.Fatalf("expected unmuted again")
	}
}
