package feed

import (
	"context"
	"encoding/xml"
	"fmt"
	"time"

	"github.com/podqueue/ytfeed/internal/model"
)

// Fetcher is the fetch capability Fetch needs.
type Fetcher interface {
	GetString(ctx context.Context, url string) (string, error)
}

// document mirrors the Atom structure of a feeds/videos.xml page.
type document struct {
	XMLName   xml.Name `xml:"feed"`
	Title     string   `xml:"title"`
	ChannelID string   `xml:"http://www.youtube.com/xml/schemas/2015 channelId"`
	Links     []link   `xml:"link"`
	Entries   []entry  `xml:"entry"`
}

type link struct {
	Rel  string `xml:"rel,attr"`
	Href string `xml:"href,attr"`
}

type entry struct {
	VideoID   string     `xml:"http://www.youtube.com/xml/schemas/2015 videoId"`
	Title     string     `xml:"title"`
	Links     []link     `xml:"link"`
	Published string     `xml:"published"`
	Group     mediaGroup `xml:"http://search.yahoo.com/mrss/ group"`
}

type mediaGroup struct {
	Thumbnail   thumbnail `xml:"http://search.yahoo.com/mrss/ thumbnail"`
	Description string    `xml:"http://search.yahoo.com/mrss/ description"`
}

type thumbnail struct {
	URL string `xml:"url,attr"`
}

// Parse decodes a feeds/videos.xml document into a model.Feed.
func Parse(data []byte) (*model.Feed, error) {
	var doc document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse feed XML: %w", err)
	}

	result := &model.Feed{
		Title:     doc.Title,
		ChannelID: doc.ChannelID,
		Link:      alternateLink(doc.Links),
	}

	for _, e := range doc.Entries {
		episode := &model.Episode{
			VideoID:     e.VideoID,
			Title:       e.Title,
			Link:        alternateLink(e.Links),
			Description: e.Group.Description,
			Thumbnail:   e.Group.Thumbnail.URL,
		}
		if e.Published != "" {
			// Feed timestamps are RFC 3339; a malformed one leaves the
			// episode with a zero Published rather than failing the feed.
			if ts, err := time.Parse(time.RFC3339, e.Published); err == nil {
				episode.Published = ts
			}
		}
		result.Episodes = append(result.Episodes, episode)
	}

	return result, nil
}

// Fetch retrieves and parses the feed at feedURL.
func Fetch(ctx context.Context, fetcher Fetcher, feedURL string) (*model.Feed, error) {
	body, err := fetcher.GetString(ctx, feedURL)
	if err != nil {
		return nil, err
	}

	result, err := Parse([]byte(body))
	if err != nil {
		return nil, err
	}
	result.FeedURL = feedURL

	return result, nil
}

func alternateLink(links []link) string {
	for _, l := range links {
		if l.Rel == "alternate" {
			return l.Href
		}
	}
	if len(links) > 0 {
		return links[0].Href
	}
	return ""
}
