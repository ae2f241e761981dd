package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"

	"codeberg.org/snonux/dorphin/internal/catalog"
)

func renderProgressBar(done, total, width int) string {
	if width <= 0 || total <= 0 {
		return ""
	}
	if done < 0 {
		done = 0
	}
	if done > total {
		done = total
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("#", filled) + strings.Repeat("-", width-filled)
	return fmt.Sprintf("[%s]", bar)
}

// formatDuration renders seconds as m:ss, or h:mm:ss past the hour.
func formatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d:%02d", minutes, secs)
}

// formatCount abbreviates view, like and follower counts.
func formatCount(n int) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}

func kindLabel(v catalog.Video) string {
	if v.IsShort() {
		return "short"
	}
	return "video"
}

func searchRow(v catalog.Video) table.Row {
	return table.Row{v.Title, v.Creator, kindLabel(v), formatDuration(v.Duration), formatCount(v.Views)}
}

func relatedRow(v catalog.Video) table.Row {
	return table.Row{v.Title, v.Creator, formatDuration(v.Duration), formatCount(v.Views)}
}

func uploadRow(v catalog.Video) table.Row {
	return table.Row{v.Title, kindLabel(v), formatDuration(v.Duration), v.UploadDate}
}

func creatorVideoRow(v catalog.Video) table.Row {
	return table.Row{v.Title, formatDuration(v.Duration), formatCount(v.Views), v.UploadDate}
}

func truncate(s string, width int) string {
	r := []rune(s)
	if width <= 0 || len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}
