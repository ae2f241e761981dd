// Package catalog holds the in-memory video library the app browses.
package catalog

import (
	"regexp"
	"strings"
)

const relatedLimit = 6

// Catalog is a read-only view over the mock library. Accessors return
// copies, so callers may reorder or truncate the results freely.
type Catalog struct {
	videos           []Video
	byID             map[string]Video
	categories       []Category
	shortsCategories []ShortsCategory
	creators         []Creator
	profile          UserProfile
}

// Default builds the catalog from the bundled mock data.
func Default() *Catalog {
	return New(mockVideos(), mockCreators())
}

// New builds a catalog over videos. Long categories and shorts categories
// are derived the same way as for the bundled data.
func New(videos []Video, creators []Creator) *Catalog {
	c := &Catalog{
		videos:   append([]Video(nil), videos...),
		byID:     make(map[string]Video, len(videos)),
		creators: append([]Creator(nil), creators...),
		profile:  defaultProfile,
	}
	for _, v := range c.videos {
		c.byID[v.ID] = v
	}
	for _, spec := range longCategorySpecs {
		c.categories = append(c.categories, Category{ID: spec.id, Name: spec.name, Videos: c.categoryVideos(spec)})
	}
	for _, spec := range shortsCategorySpecs {
		var shorts []Video
		for _, v := range c.videos {
			if v.IsShort() && v.ShortCategory == spec.tag {
				shorts = append(shorts, v)
			}
		}
		c.shortsCategories = append(c.shortsCategories, ShortsCategory{ID: spec.id, Name: spec.name, Shorts: shorts})
	}
	return c
}

func (c *Catalog) categoryVideos(spec categorySpec) []Video {
	var out []Video
	if len(spec.ids) == 0 {
		for _, v := range c.videos {
			if v.Progress != nil {
				out = append(out, v)
			}
		}
		return out
	}
	for _, id := range spec.ids {
		if v, ok := c.byID[id]; ok {
			out = append(out, v)
		}
	}
	return out
}

// Videos returns every catalog entry in catalog order.
func (c *Catalog) Videos() []Video {
	return append([]Video(nil), c.videos...)
}

// Lookup finds a video by id.
func (c *Catalog) Lookup(id string) (Video, bool) {
	v, ok := c.byID[id]
	return v, ok
}

// Long returns the long videos in catalog order.
func (c *Catalog) Long() []Video {
	return c.filter(func(v Video) bool { return v.Kind == KindLong })
}

// Shorts returns every short in catalog order.
func (c *Catalog) Shorts() []Video {
	return c.filter(Video.IsShort)
}

// ListFor returns the ordered list a docked video cycles through.
func (c *Catalog) ListFor(kind Kind) []Video {
	if kind == KindShort {
		return c.Shorts()
	}
	return c.Long()
}

func (c *Catalog) filter(keep func(Video) bool) []Video {
	out := make([]Video, 0, len(c.videos))
	for _, v := range c.videos {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// Categories returns the long-video rows of the home feed.
func (c *Catalog) Categories() []Category {
	return append([]Category(nil), c.categories...)
}

// ShortsCategories returns the shorts rows of the home feed.
func (c *Catalog) ShortsCategories() []ShortsCategory {
	return append([]ShortsCategory(nil), c.shortsCategories...)
}

// ShortsFeed returns the swipe list for a shorts category. An empty id
// selects every category back to back; an unknown id yields nothing.
func (c *Catalog) ShortsFeed(categoryID string) []Video {
	if categoryID == "" {
		var all []Video
		for _, cat := range c.shortsCategories {
			all = append(all, cat.Shorts...)
		}
		return all
	}
	for _, cat := range c.shortsCategories {
		if cat.ID == categoryID {
			return append([]Video(nil), cat.Shorts...)
		}
	}
	return nil
}

// Related returns up to six long videos other than id.
func (c *Catalog) Related(id string) []Video {
	out := make([]Video, 0, relatedLimit)
	for _, v := range c.videos {
		if v.Kind != KindLong || v.ID == id {
			continue
		}
		out = append(out, v)
		if len(out) == relatedLimit {
			break
		}
	}
	return out
}

// Search matches query case-insensitively against titles and creators.
// A blank query returns the whole catalog.
func (c *Catalog) Search(query string) []Video {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.Videos()
	}
	return c.filter(func(v Video) bool {
		return strings.Contains(strings.ToLower(v.Title), q) || strings.Contains(strings.ToLower(v.Creator), q)
	})
}

// Creators returns all known creators.
func (c *Catalog) Creators() []Creator {
	return append([]Creator(nil), c.creators...)
}

// Creator resolves a creator profile, falling back to the first creator
// for unknown ids.
func (c *Catalog) Creator(id string) Creator {
	for _, cr := range c.creators {
		if cr.ID == id {
			return cr
		}
	}
	if len(c.creators) == 0 {
		return Creator{ID: id, Name: id}
	}
	return c.creators[0]
}

// CreatorVideos lists the uploads shown on a creator page.
func (c *Catalog) CreatorVideos(id string) []Video {
	return showcaseVideos(c.Creator(id))
}

// Profile returns the viewing user's profile.
func (c *Catalog) Profile() UserProfile {
	return c.profile
}

var digitsPattern = regexp.MustCompile(`\d+`)

// CreatorIDFor maps a display name to a creator id: "creator account 3"
// becomes "creator-3", names without digits are kebab-cased.
func CreatorIDFor(name string) string {
	if n := digitsPattern.FindString(name); n != "" {
		return "creator-" + n
	}
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
