package nav

import (
	tea "github.com/charmbracelet/bubbletea"

	"codeberg.org/snonux/dorphin/internal/catalog"
)

// OpenShort enters the shorts feed for categoryID at startIndex. The index
// is not validated here; CurrentShort clamps it to the feed.
func (c *Controller) OpenShort(categoryID string, startIndex int) tea.Cmd {
	if startIndex < 0 {
		startIndex = 0
	}
	c.shorts = ShortsSession{CategoryID: categoryID, Index: startIndex}
	c.setScreen(ScreenShorts)
	return c.syncClock()
}

// ShortsSession returns the active shorts feed position.
func (c *Controller) ShortsSession() ShortsSession {
	return c.shorts
}

// ShortsFeed returns the videos of the active shorts feed.
func (c *Controller) ShortsFeed() []catalog.Video {
	return c.catalog.ShortsFeed(c.shorts.CategoryID)
}

// CurrentShort returns the short on screen and its clamped index.
func (c *Controller) CurrentShort() (catalog.Video, int, bool) {
	feed := c.ShortsFeed()
	if len(feed) == 0 {
		return catalog.Video{}, 0, false
	}
	idx := c.shorts.Index
	if idx >= len(feed) {
		idx = len(feed) - 1
	}
	return feed[idx], idx, true
}

// SwipeShort moves through the feed by delta. Swipes past either end are
// ignored.
func (c *Controller) SwipeShort(delta int) bool {
	_, idx, ok := c.CurrentShort()
	if !ok {
		return false
	}
	target := idx + delta
	if target < 0 || target >= len(c.ShortsFeed()) {
		return false
	}
	c.shorts.Index = target
	return true
}
