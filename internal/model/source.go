package model

import "strings"

// Source types reported by the backend for a study pack.
const (
	SourceVideo    = "video"
	SourcePlaylist = "playlist"
)

// IsLikelyYouTubeURL is the client-side gate applied before any network
// call. It is deliberately loose: the backend does the real resolution.
func IsLikelyYouTubeURL(raw string) bool {
	s := strings.TrimSpace(raw)
	if s == "" {
		return false
	}
	return strings.Contains(s, "youtube.com/") || strings.Contains(s, "youtu.be/")
}

// IsPlaylistURL reports whether a URL will be ingested as a playlist
// (one study pack row per entry) rather than a single video.
func IsPlaylistURL(raw string) bool {
	s := strings.TrimSpace(raw)
	return strings.Contains(s, "list=") || strings.Contains(s, "/playlist")
}
