package catalog

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrEmptyTitle is returned when an upload has no title.
var ErrEmptyTitle = errors.New("upload title is required")

const (
	uploadCreator       = "user_account"
	uploadCreatorAvatar = "#9D4EDD"
	uploadShortDuration = 30
	uploadLongDuration  = 300
)

// NewUpload builds the video entity for a user upload.
func NewUpload(title string, kind Kind, now time.Time) (Video, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Video{}, ErrEmptyTitle
	}
	if !kind.IsValid() {
		return Video{}, fmt.Errorf("unknown video kind %q", kind)
	}
	v := Video{
		ID:            uuid.NewString(),
		Title:         title,
		Creator:       uploadCreator,
		CreatorAvatar: uploadCreatorAvatar,
		Thumbnail:     fmt.Sprintf("#%06X", rand.Intn(0xFFFFFF+1)),
		Duration:      uploadLongDuration,
		UploadDate:    now.Format("2006-01-02"),
		Kind:          kind,
	}
	if kind == KindShort {
		v.Duration = uploadShortDuration
		v.ShortCategory = ShortComedy
	}
	return v, nil
}
