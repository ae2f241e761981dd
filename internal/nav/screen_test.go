package nav

import "testing"

func TestScreenPredicates(t *testing.T) {
	cases := []struct {
		screen Screen
		header bool
		mini   bool
		back   bool
	}{
		{ScreenHome, true, true, false},
		{ScreenShorts, false, false, false},
		{ScreenSearch, true, true, true},
		{ScreenProfile, true, true, true},
		{ScreenVideo, false, false, false},
		{ScreenCreator, false, true, false},
	}
	for _, tc := range cases {
		if !tc.screen.IsValid() {
			t.Fatalf("%s should be valid", tc.screen)
		}
		if got := tc.screen.ShowsHeader(); got != tc.header {
			t.Fatalf("%s header: got %v", tc.screen, got)
		}
		if got := tc.screen.ShowsMiniPlayer(); got != tc.mini {
			t.Fatalf("%s mini: got %v", tc.screen, got)
		}
		if got := tc.screen.ShowsBackButton(); got != tc.back {
			t.Fatalf("%s back: got %v", tc.screen, got)
		}
	}
	if Screen("settings").IsValid() {
		t.Fatalf("unknown screen reported valid")
	}
}
