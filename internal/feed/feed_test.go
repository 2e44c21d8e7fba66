package feed

import (
	"context"
	"strings"
	"testing"
	"time"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns:yt="http://www.youtube.com/xml/schemas/2015"
      xmlns:media="http://search.yahoo.com/mrss/"
      xmlns="http://www.w3.org/2005/Atom">
  <link rel="self" href="https://www.youtube.com/feeds/videos.xml?channel_id=UCabc123"/>
  <id>yt:channel:UCabc123</id>
  <yt:channelId>UCabc123</yt:channelId>
  <title>Test Channel</title>
  <link rel="alternate" href="https://www.youtube.com/channel/UCabc123"/>
  <entry>
    <id>yt:video:dQw4w9WgXcQ</id>
    <yt:videoId>dQw4w9WgXcQ</yt:videoId>
    <yt:channelId>UCabc123</yt:channelId>
    <title>First Video</title>
    <link rel="alternate" href="https://www.youtube.com/watch?v=dQw4w9WgXcQ"/>
    <published>2023-05-15T10:00:00+00:00</published>
    <media:group>
      <media:title>First Video</media:title>
      <media:thumbnail url="https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg" width="480" height="360"/>
      <media:description>A description.</media:description>
    </media:group>
  </entry>
  <entry>
    <yt:videoId>abcdefghijk</yt:videoId>
    <title>Second Video</title>
    <link rel="alternate" href="https://www.youtube.com/watch?v=abcdefghijk"/>
  </entry>
</feed>`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(sampleFeed))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if f.Title != "Test Channel" {
		t.Errorf("Title = %q, want %q", f.Title, "Test Channel")
	}
	if f.ChannelID != "UCabc123" {
		t.Errorf("ChannelID = %q, want %q", f.ChannelID, "UCabc123")
	}
	if f.Link != "https://www.youtube.com/channel/UCabc123" {
		t.Errorf("Link = %q", f.Link)
	}
	if len(f.Episodes) != 2 {
		t.Fatalf("Episode count = %d, want 2", len(f.Episodes))
	}

	first := f.Episodes[0]
	if first.VideoID != "dQw4w9WgXcQ" {
		t.Errorf("VideoID = %q", first.VideoID)
	}
	if first.Link != "https://www.youtube.com/watch?v=dQw4w9WgXcQ" {
		t.Errorf("Link = %q", first.Link)
	}
	if first.Thumbnail != "https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg" {
		t.Errorf("Thumbnail = %q", first.Thumbnail)
	}
	if first.Description != "A description." {
		t.Errorf("Description = %q", first.Description)
	}
	want := time.Date(2023, 5, 15, 10, 0, 0, 0, time.UTC)
	if !first.Published.Equal(want) {
		t.Errorf("Published = %v, want %v", first.Published, want)
	}

	// Entry without published/media data parses with zero values.
	second := f.Episodes[1]
	if second.VideoID != "abcdefghijk" {
		t.Errorf("VideoID = %q", second.VideoID)
	}
	if !second.Published.IsZero() {
		t.Errorf("Published = %v, want zero", second.Published)
	}
}

func TestParse_InvalidXML(t *testing.T) {
	if _, err := Parse([]byte("not xml at all <<<")); err == nil {
		t.Error("expected error for invalid XML")
	}
}

type stubFetcher struct {
	body string
	err  error
}

func (s *stubFetcher) GetString(ctx context.Context, url string) (string, error) {
	return s.body, s.err
}

func TestFetch(t *testing.T) {
	fetcher := &stubFetcher{body: sampleFeed}
	f, err := Fetch(context.Background(), fetcher, "https://www.youtube.com/feeds/videos.xml?channel_id=UCabc123")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if !strings.Contains(f.FeedURL, "channel_id=UCabc123") {
		t.Errorf("FeedURL = %q", f.FeedURL)
	}
}
