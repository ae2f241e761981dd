package app

import "codeberg.org/snonux/dorphin/internal/catalog"

type uploadFinishedMsg struct {
	video catalog.Video
}
