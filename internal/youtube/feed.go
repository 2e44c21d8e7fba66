package youtube

import (
	"net/url"
	"regexp"
	"strings"
)

// watchPatterns match the supported watch-URL shapes, tried in order.
// The capture group is the video id.
var watchPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^https?://(?:[a-z]+\.)?youtube\.com/v/(.*)\.swf`),
	regexp.MustCompile(`(?i)^https?://(?:[a-z]+\.)?youtube\.com/watch\?v=([^&]*)`),
	regexp.MustCompile(`(?i)^https?://(?:[a-z]+\.)?youtube\.com/v/(.*)[?]`),
}

// channelPatterns match the known channel/user feed and webpage URL
// shapes, tried in order. The capture group is the channel or user token.
var channelPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^https?://(?:[a-z]+\.)?youtube\.com/user/([a-z0-9]+)`),
	regexp.MustCompile(`(?i)^https?://(?:[a-z]+\.)?youtube\.com/profile\?user=([a-z0-9]+)`),
	regexp.MustCompile(`(?i)^https?://(?:[a-z]+\.)?youtube\.com/channel/([-_a-zA-Z0-9]+)`),
	regexp.MustCompile(`(?i)^https?://(?:[a-z]+\.)?youtube\.com/rss/user/([a-z0-9]+)/videos\.rss`),
	regexp.MustCompile(`(?i)^https?://gdata\.youtube\.com/feeds/users/([^/]+)/uploads`),
	regexp.MustCompile(`(?i)^https?://gdata\.youtube\.com/feeds/base/users/([^/]+)/uploads`),
	regexp.MustCompile(`(?i)^https?://(?:[a-z]+\.)?youtube\.com/feeds/videos\.xml\?channel_id=([-_a-zA-Z0-9]+)`),
}

// youTubeGUIDPrefix marks feed entry GUIDs that refer to YouTube videos.
const youTubeGUIDPrefix = "tag:youtube.com,2008:video:"

// ExtractVideoID extracts the video id from a watch-page URL.
//
// The three watch-URL shapes (/v/ID.swf, /watch?v=ID, /v/ID?...) are
// tried in order; first match wins. When none match, the channel-pattern
// matcher is consulted and its captured token returned instead, so a
// channel URL also reports ok — callers that need a strict video id must
// not feed channel URLs through this fallback.
func ExtractVideoID(rawURL string) (string, bool) {
	for _, pattern := range watchPatterns {
		if m := pattern.FindStringSubmatch(rawURL); m != nil {
			return m[1], true
		}
	}

	return ChannelToken(rawURL)
}

// ChannelToken extracts the channel or user token from any of the known
// channel feed/webpage URL shapes. Returns false when no shape matches.
func ChannelToken(rawURL string) (string, bool) {
	for _, pattern := range channelPatterns {
		if m := pattern.FindStringSubmatch(rawURL); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// IsVideoLink reports whether the URL is recognized as a video link.
func IsVideoLink(rawURL string) bool {
	_, ok := ExtractVideoID(rawURL)
	return ok
}

// IsYouTubeGUID reports whether a feed entry GUID refers to a YouTube video.
func IsYouTubeGUID(guid string) bool {
	return strings.HasPrefix(guid, youTubeGUIDPrefix)
}

// NormalizeChannelURL rewrites channel, user and playlist links into their
// canonical feeds/videos.xml form. Non-matching URLs are returned unchanged.
//
//	/user/NAME              -> /feeds/videos.xml?user=NAME
//	/channel/ID             -> /feeds/videos.xml?channel_id=ID
//	...?list=PLAYLIST_ID... -> /feeds/videos.xml?playlist_id=PLAYLIST_ID
//
// The checks are sequential: a user or channel path rewrite replaces the
// query string, so a list= parameter that co-occurs with one of those
// paths no longer triggers the playlist rewrite.
func NormalizeChannelURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	if !strings.Contains(parsed.Host, "youtube.com") {
		return rawURL
	}

	path := parsed.EscapedPath()
	query := parsed.RawQuery

	if !strings.Contains(path, "/user/") && !strings.Contains(path, "/channel/") && !strings.Contains(query, "list=") {
		return rawURL
	}

	if strings.HasPrefix(path, "/user/") {
		if segments := strings.Split(path, "/"); len(segments) > 2 {
			query = "user=" + segments[2]
		}
	}

	if strings.HasPrefix(path, "/channel/") {
		if segments := strings.Split(path, "/"); len(segments) > 2 {
			query = "channel_id=" + segments[2]
		}
	}

	if strings.Contains(query, "list=") {
		if id := playlistID(query); id != "" {
			query = "playlist_id=" + id
		}
	}

	parsed.Path = "/feeds/videos.xml"
	parsed.RawPath = ""
	parsed.RawQuery = query
	return parsed.String()
}

// playlistID pulls the playlist id out of the first list= query parameter.
func playlistID(query string) string {
	for _, pair := range strings.Split(query, "&") {
		if idx := strings.Index(pair, "list="); idx != -1 {
			return pair[idx+len("list="):]
		}
	}
	return ""
}
