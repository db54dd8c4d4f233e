package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// youtubeIDLen is the length of a YouTube video ID.
const youtubeIDLen = 11

var youtubeURLPattern = regexp.MustCompile(`^.*(youtu\.be/|v/|u/\w/|embed/|watch\?v=|&v=)([^#&?]*).*`)

// ExtractYoutubeID returns the video ID embedded in a YouTube watch, short,
// embed or legacy URL. ok is false unless an 11-character ID was found.
func ExtractYoutubeID(rawURL string) (id string, ok bool) {
	m := youtubeURLPattern.FindStringSubmatch(strings.TrimSpace(rawURL))
	if m == nil || len(m[2]) != youtubeIDLen {
		return "", false
	}
	return m[2], true
}

// YoutubeThumbnailURL returns the high resolution thumbnail for a video.
func YoutubeThumbnailURL(id string) string {
	return fmt.Sprintf("https://img.youtube.com/vi/%s/maxresdefault.jpg", id)
}

// NonBlank returns the values that are not empty after trimming spaces.
// The result is never nil.
func NonBlank(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
