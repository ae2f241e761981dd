package catalog

import (
	"errors"
	"regexp"
	"testing"
	"time"
)

func TestDefaultCatalogCounts(t *testing.T) {
	c := Default()
	if got := len(c.Videos()); got != 31 {
		t.Fatalf("expected 31 videos, got %d", got)
	}
	if got := len(c.Long()); got != 16 {
		t.Fatalf("expected 16 long videos, got %d", got)
	}
	if got := len(c.Shorts()); got != 15 {
		t.Fatalf("expected 15 shorts, got %d", got)
	}
	if got := len(c.Categories()); got != 5 {
		t.Fatalf("expected 5 categories, got %d", got)
	}
}

func TestContinueWatchingUsesProgress(t *testing.T) {
	c := Default()
	for _, cat := range c.Categories() {
		if cat.ID != "continue-watching" {
			continue
		}
		if len(cat.Videos) != 3 {
			t.Fatalf("expected 3 in-progress videos, got %d", len(cat.Videos))
		}
		for _, v := range cat.Videos {
			if v.Progress == nil {
				t.Fatalf("video %s has no progress", v.ID)
			}
		}
		return
	}
	t.Fatalf("continue-watching category missing")
}

func TestShortsFeed(t *testing.T) {
	c := Default()
	cases := []struct {
		category string
		want     int
	}{
		{category: "comedy-shorts", want: 6},
		{category: "music-shorts", want: 5},
		{category: "dance-shorts", want: 4},
		{category: "", want: 15},
		{category: "missing", want: 0},
	}
	for _, tc := range cases {
		if got := len(c.ShortsFeed(tc.category)); got != tc.want {
			t.Fatalf("feed %q: expected %d, got %d", tc.category, tc.want, got)
		}
	}
}

func TestRelatedExcludesSelf(t *testing.T) {
	c := Default()
	related := c.Related("1")
	if len(related) != 6 {
		t.Fatalf("expected 6 related videos, got %d", len(related))
	}
	for _, v := range related {
		if v.ID == "1" || v.Kind != KindLong {
			t.Fatalf("unexpected related video %+v", v)
		}
	}
}

func TestSearch(t *testing.T) {
	c := Default()
	if got := len(c.Search("   ")); got != 31 {
		t.Fatalf("blank query should return all, got %d", got)
	}
	got := c.Search("DANCE")
	if len(got) != 4 {
		t.Fatalf("expected 4 dance matches, got %d", len(got))
	}
	if got := c.Search("music creator 2"); len(got) != 1 || got[0].ID != "24" {
		t.Fatalf("expected creator match, got %v", got)
	}
}

func TestCreatorFallback(t *testing.T) {
	c := Default()
	if got := c.Creator("creator-3").Name; got != "Creator Gamma" {
		t.Fatalf("unexpected creator %s", got)
	}
	if got := c.Creator("nobody").ID; got != "creator-1" {
		t.Fatalf("expected fallback to creator-1, got %s", got)
	}
	videos := c.CreatorVideos("creator-2")
	if len(videos) != 3 || videos[0].Creator != "Creator Beta" {
		t.Fatalf("unexpected creator videos %v", videos)
	}
}

func TestCreatorIDFor(t *testing.T) {
	cases := map[string]string{
		"creator account 3": "creator-3",
		"Music Creator 1":   "creator-1",
		"Solo  Artist":      "solo-artist",
	}
	for name, want := range cases {
		if got := CreatorIDFor(name); got != want {
			t.Fatalf("CreatorIDFor(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestProgressSeconds(t *testing.T) {
	c := Default()
	v, ok := c.Lookup("12")
	if !ok {
		t.Fatalf("video 12 missing")
	}
	secs, ok := v.ProgressSeconds()
	if !ok || secs != 252 {
		t.Fatalf("expected 252 seconds, got %d (%v)", secs, ok)
	}
	v, _ = c.Lookup("1")
	if _, ok := v.ProgressSeconds(); ok {
		t.Fatalf("video without progress reported seconds")
	}
}

func TestNewUpload(t *testing.T) {
	now := time.Date(2025, 10, 20, 9, 0, 0, 0, time.UTC)
	v, err := NewUpload("  My clip ", KindShort, now)
	if err != nil {
		t.Fatalf("NewUpload: %v", err)
	}
	if v.Title != "My clip" || v.Duration != 30 || v.ShortCategory != ShortComedy {
		t.Fatalf("unexpected short upload %+v", v)
	}
	if v.UploadDate != "2025-10-20" {
		t.Fatalf("unexpected date %s", v.UploadDate)
	}
	if !regexp.MustCompile(`^#[0-9A-F]{6}$`).MatchString(v.Thumbnail) {
		t.Fatalf("unexpected thumbnail %s", v.Thumbnail)
	}
	other, err := NewUpload("Long one", KindLong, now)
	if err != nil {
		t.Fatalf("NewUpload: %v", err)
	}
	if other.Duration != 300 || other.ShortCategory != "" {
		t.Fatalf("unexpected long upload %+v", other)
	}
	if other.ID == v.ID {
		t.Fatalf("expected unique ids")
	}
	if _, err := NewUpload(" ", KindLong, now); !errors.Is(err, ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}
	if _, err := NewUpload("x", Kind("vertical"), now); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}
