package service

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	youtubeIDPattern    = regexp.MustCompile(`^[A-Za-z0-9_-]{6,20}$`)
	allowedEmbedPattern = regexp.MustCompile(
		`^https://(?:www\.)?(?:youtube\.com/embed/|youtube-nocookie\.com/embed/)`,
	)
)

// NormalizeEmbedURL turns the link an editor pastes into a canonical embed
// URL. YouTube watch, share and embed forms are rewritten to the
// https://www.youtube.com/embed/<id> form; already-valid embed URLs pass
// through. Anything else is rejected.
func NormalizeEmbedURL(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return "", false
	}

	host := strings.ToLower(parsed.Hostname())
	switch host {
	case "youtu.be":
		id := strings.Trim(parsed.Path, "/")
		if videoID, ok := validYouTubeID(id); ok {
			return "https://www.youtube.com/embed/" + videoID, true
		}
		return "", false
	case "youtube.com", "www.youtube.com", "m.youtube.com", "www.youtube-nocookie.com", "youtube-nocookie.com":
		path := parsed.EscapedPath()
		switch {
		case path == "/watch":
			if videoID, ok := validYouTubeID(parsed.Query().Get("v")); ok {
				return "https://www.youtube.com/embed/" + videoID, true
			}
			return "", false
		case strings.HasPrefix(path, "/embed/"):
			if videoID, ok := validYouTubeID(strings.TrimPrefix(path, "/embed/")); ok {
				candidate := "https://www.youtube.com/embed/" + videoID
				return candidate, allowedEmbedPattern.MatchString(candidate)
			}
			return "", false
		case strings.HasPrefix(path, "/shorts/"):
			if videoID, ok := validYouTubeID(strings.TrimPrefix(path, "/shorts/")); ok {
				return "https://www.youtube.com/embed/" + videoID, true
			}
			return "", false
		}
		return "", false
	}

	return "", false
}

func validYouTubeID(id string) (string, bool) {
	id = strings.TrimSpace(id)
	if idx := strings.IndexAny(id, "/?&"); idx >= 0 {
		id = id[:idx]
	}
	if youtubeIDPattern.MatchString(id) {
		return id, true
	}
	return "", false
}
