package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

const (
	v3Endpoint       = "https://www.googleapis.com/youtube/v3"
	channelVideosXML = "https://www.youtube.com/feeds/videos.xml"
)

// ChannelsForUser maps a username to the feed URLs of its channels.
//
// Names that already look like a channel id ("UC..." prefix) are probed
// directly against the feed endpoint; automatic discovery cannot be
// relied on for those. Anything else goes through the Data API v3
// forUsername lookup, which requires an API key.
func (r *Resolver) ChannelsForUser(ctx context.Context, username, apiKey string) ([]string, error) {
	if strings.HasPrefix(username, "UC") {
		feedURL := channelVideosXML + "?channel_id=" + url.QueryEscape(username)
		if _, err := r.fetcher.GetString(ctx, feedURL); err == nil {
			return []string{feedURL}, nil
		}
		// Not a channel id after all; fall through to the API lookup.
	}

	lookupURL := fmt.Sprintf("%s/channels?forUsername=%s&part=id&key=%s",
		v3Endpoint, url.QueryEscape(username), url.QueryEscape(apiKey))
	body, err := r.fetcher.GetString(ctx, lookupURL)
	if err != nil {
		return nil, err
	}

	var response struct {
		Items []struct {
			ID string `json:"id"`
		} `json:"items"`
	}
	if err := json.Unmarshal([]byte(body), &response); err != nil {
		return nil, fmt.Errorf("failed to parse channel lookup response: %w", err)
	}

	feedURLs := make([]string, 0, len(response.Items))
	for _, item := range response.Items {
		feedURLs = append(feedURLs, channelVideosXML+"?channel_id="+url.QueryEscape(item.ID))
	}

	return feedURLs, nil
}
