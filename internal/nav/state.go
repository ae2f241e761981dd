package nav

import (
	"sort"

	"codeberg.org/snonux/dorphin/internal/catalog"
)

// ShortsSession is a position in a shorts feed. An empty CategoryID means
// every shorts category back to back.
type ShortsSession struct {
	CategoryID string
	Index      int
}

// progressMap records the last seen position per video, in seconds.
type progressMap struct {
	positions map[string]int
	writes    int
}

func newProgressMap() progressMap {
	return progressMap{positions: make(map[string]int)}
}

func (p *progressMap) get(id string) (int, bool) {
	pos, ok := p.positions[id]
	return pos, ok
}

func (p *progressMap) set(id string, pos int) {
	if pos < 0 {
		pos = 0
	}
	p.positions[id] = pos
	p.writes++
}

func (p *progressMap) snapshot() map[string]int {
	out := make(map[string]int, len(p.positions))
	for k, v := range p.positions {
		out[k] = v
	}
	return out
}

// idSet holds followed creators or liked videos.
type idSet map[string]struct{}

func newIDSet(ids []string) idSet {
	set := make(idSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// toggle flips membership and reports whether id is now in the set.
func (f idSet) toggle(id string) bool {
	if _, ok := f[id]; ok {
		delete(f, id)
		return false
	}
	f[id] = struct{}{}
	return true
}

func (f idSet) has(id string) bool {
	_, ok := f[id]
	return ok
}

func (f idSet) sorted() []string {
	ids := make([]string, 0, len(f))
	for id := range f {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// uploadList keeps user uploads newest first.
type uploadList []catalog.Video

func (u uploadList) prepend(v catalog.Video) uploadList {
	return append(uploadList{v}, u...)
}

func (u uploadList) without(id string) uploadList {
	if indexOf(u, id) < 0 {
		return u
	}
	out := make(uploadList, 0, len(u))
	for _, v := range u {
		if v.ID != id {
			out = append(out, v)
		}
	}
	return out
}

func indexOf(videos []catalog.Video, id string) int {
	for i, v := range videos {
		if v.ID == id {
			return i
		}
	}
	return -1
}
