package youtube

import (
	"context"
	"regexp"
	"strings"

	"github.com/podqueue/ytfeed/internal/feed"
)

// Cover art lives on the channel page, not in the feed, so the lookup is
// feed XML -> channel id -> channel HTML -> image URL. The markup scan is
// fragile coupling to a third party's HTML and treated as best effort:
// a parse miss yields an empty URL, not an error.
var (
	// Preferred: the 900x900 image_src link element.
	coverLinkPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)<link[^>]+rel="image_src"[^>]+href="([^"]+)"`),
		regexp.MustCompile(`(?i)<link[^>]+href="([^"]+)"[^>]+rel="image_src"`),
	}

	// Fallback: the header avatar, which may only be 100x100.
	coverImgPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)<img[^>]+class="channel-header-profile-image"[^>]+src="([^"]+)"`),
		regexp.MustCompile(`(?i)<img[^>]+src="([^"]+)"[^>]+class="channel-header-profile-image"`),
	}
)

// CoverArtURL looks up the cover art image URL for a channel feed.
//
// Returns an empty string when the URL is not a YouTube feed or the
// channel page carries no recognizable cover image. Fetch errors
// propagate to the caller.
func (r *Resolver) CoverArtURL(ctx context.Context, feedURL string) (string, error) {
	if !strings.Contains(feedURL, "youtube.com") {
		return "", nil
	}

	parsed, err := feed.Fetch(ctx, r.fetcher, feedURL)
	if err != nil {
		return "", err
	}
	if parsed.ChannelID == "" {
		return "", nil
	}

	channelURL := "https://www.youtube.com/channel/" + parsed.ChannelID
	page, err := r.fetcher.GetString(ctx, channelURL)
	if err != nil {
		return "", err
	}

	for _, pattern := range coverLinkPatterns {
		if m := pattern.FindStringSubmatch(page); m != nil {
			return m[1], nil
		}
	}
	for _, pattern := range coverImgPatterns {
		if m := pattern.FindStringSubmatch(page); m != nil {
			return m[1], nil
		}
	}

	return "", nil
}
