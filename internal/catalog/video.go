package catalog

import "math"

// Kind separates swipeable shorts from regular long-form videos.
type Kind string

const (
	KindShort Kind = "short"
	KindLong  Kind = "long"
)

func (k Kind) String() string {
	return string(k)
}

// IsValid reports whether k is one of the known kinds.
func (k Kind) IsValid() bool {
	return k == KindShort || k == KindLong
}

// ShortCategory tags a short with its feed.
type ShortCategory string

const (
	ShortComedy      ShortCategory = "comedy"
	ShortMusic       ShortCategory = "music"
	ShortDance       ShortCategory = "dance"
	ShortEducational ShortCategory = "educational"
	ShortLifestyle   ShortCategory = "lifestyle"
)

// Video is an immutable catalog entry. Duration is in whole seconds.
type Video struct {
	ID            string
	Title         string
	Creator       string
	CreatorAvatar string
	Thumbnail     string
	Duration      int
	Progress      *float64
	UploadDate    string
	Kind          Kind
	Views         int
	Likes         int
	Comments      int
	ShortCategory ShortCategory
}

// IsShort reports whether the video belongs to the shorts feed.
func (v Video) IsShort() bool {
	return v.Kind == KindShort
}

// ProgressSeconds converts the optional watch fraction into seconds.
func (v Video) ProgressSeconds() (int, bool) {
	if v.Progress == nil || v.Duration <= 0 {
		return 0, false
	}
	fraction := *v.Progress
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	return int(math.Round(fraction * float64(v.Duration))), true
}

// Category is a titled row of long videos on the home feed.
type Category struct {
	ID     string
	Name   string
	Videos []Video
}

// ShortsCategory is a titled row of shorts.
type ShortsCategory struct {
	ID     string
	Name   string
	Shorts []Video
}

// Creator describes a followable account.
type Creator struct {
	ID        string
	Name      string
	Username  string
	Avatar    string
	Followers int
	Following int
	Videos    int
	Bio       string
}

// UserProfile is the viewing user's own account.
type UserProfile struct {
	Username    string
	DisplayName string
	Avatar      string
	Followers   int
	Following   int
}
