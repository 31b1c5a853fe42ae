package video

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/kkdai/youtube/v2"
)

var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

var youtubeHosts = map[string]bool{
	"youtube.com":              true,
	"www.youtube.com":          true,
	"m.youtube.com":            true,
	"music.youtube.com":        true,
	"youtu.be":                 true,
	"www.youtu.be":             true,
	"youtube-nocookie.com":     true,
	"www.youtube-nocookie.com": true,
}

// ExtractID pulls the video id out of a watch, short, embed or youtu.be URL.
// A bare id is accepted as is.
func ExtractID(raw string) (Reference, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidInput
	}

	if strings.Contains(raw, "/") && !onYouTube(raw) {
		return "", ErrUnrecognizedURL
	}

	id, err := youtube.ExtractVideoID(raw)
	if err != nil || !idPattern.MatchString(id) {
		return "", ErrUnrecognizedURL
	}

	return Reference(id), nil
}

// onYouTube reports whether raw is a URL on a YouTube host. A missing scheme is tolerated.
func onYouTube(raw string) bool {
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return youtubeHosts[strings.ToLower(u.Hostname())]
}
