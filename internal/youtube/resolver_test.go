package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"testing"

	ytfeedhttp "github.com/podqueue/ytfeed/internal/http"
)

// fakeFetcher serves canned responses: info holds sequential GetNoFollow
// responses, pages maps URLs to GetString bodies.
type fakeFetcher struct {
	info     []*ytfeedhttp.Response
	infoErr  error
	pages    map[string]string
	requests []string
}

func (f *fakeFetcher) GetNoFollow(ctx context.Context, u string) (*ytfeedhttp.Response, error) {
	f.requests = append(f.requests, u)
	if f.infoErr != nil {
		return nil, f.infoErr
	}
	if len(f.info) == 0 {
		return &ytfeedhttp.Response{StatusCode: 200}, nil
	}
	resp := f.info[0]
	f.info = f.info[1:]
	return resp, nil
}

func (f *fakeFetcher) GetString(ctx context.Context, u string) (string, error) {
	f.requests = append(f.requests, u)
	body, ok := f.pages[u]
	if !ok {
		return "", fmt.Errorf("HTTP 404: not found")
	}
	return body, nil
}

// streamMapPage builds a video-info page advertising the given formats.
func streamMapPage(streams map[int]string) string {
	var pairs []string
	for id, u := range streams {
		pairs = append(pairs, fmt.Sprintf("itag=%d&url=%s", id, url.QueryEscape(u)))
	}
	inner := strings.Join(pairs, ",")
	return "status=ok&url_encoded_fmt_stream_map=" + url.QueryEscape(inner)
}

const watchURL = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"

func TestResolveMediaURL_PreferredFormat(t *testing.T) {
	page := streamMapPage(map[int]string{5: "http://cdn/u5", 18: "http://cdn/u18", 22: "http://cdn/u22"})
	fetcher := &fakeFetcher{info: []*ytfeedhttp.Response{{StatusCode: 200, Body: []byte(page)}}}
	resolver := NewResolver(fetcher)

	got, err := resolver.ResolveMediaURL(context.Background(), watchURL, []int{18, 5})
	if err != nil {
		t.Fatalf("ResolveMediaURL failed: %v", err)
	}
	if got != "http://cdn/u18" {
		t.Errorf("resolved %q, want %q", got, "http://cdn/u18")
	}
}

func TestResolveMediaURL_DefaultChain(t *testing.T) {
	page := streamMapPage(map[int]string{5: "http://cdn/u5", 18: "http://cdn/u18", 22: "http://cdn/u22"})
	fetcher := &fakeFetcher{info: []*ytfeedhttp.Response{{StatusCode: 200, Body: []byte(page)}}}
	resolver := NewResolver(fetcher)

	// Empty preference falls back to the built-in chain for MP4 720p.
	got, err := resolver.ResolveMediaURL(context.Background(), watchURL, nil)
	if err != nil {
		t.Fatalf("ResolveMediaURL failed: %v", err)
	}
	if got != "http://cdn/u22" {
		t.Errorf("resolved %q, want %q", got, "http://cdn/u22")
	}
}

func TestResolveMediaURL_NoPreferenceMatchPicksHighest(t *testing.T) {
	page := streamMapPage(map[int]string{5: "http://cdn/u5", 18: "http://cdn/u18"})
	fetcher := &fakeFetcher{info: []*ytfeedhttp.Response{{StatusCode: 200, Body: []byte(page)}}}
	resolver := NewResolver(fetcher)

	got, err := resolver.ResolveMediaURL(context.Background(), watchURL, []int{99})
	if err != nil {
		t.Fatalf("ResolveMediaURL failed: %v", err)
	}
	if got != "http://cdn/u18" {
		t.Errorf("resolved %q, want highest-id fallback %q", got, "http://cdn/u18")
	}
}

func TestResolveMediaURL_FollowsRedirect(t *testing.T) {
	page := streamMapPage(map[int]string{22: "http://cdn/u22"})
	fetcher := &fakeFetcher{info: []*ytfeedhttp.Response{
		{StatusCode: 302, Location: "https://www.youtube.com/get_video_info?step=2"},
		{StatusCode: 200, Body: []byte(page)},
	}}
	resolver := NewResolver(fetcher)

	got, err := resolver.ResolveMediaURL(context.Background(), watchURL, nil)
	if err != nil {
		t.Fatalf("ResolveMediaURL failed: %v", err)
	}
	if got != "http://cdn/u22" {
		t.Errorf("resolved %q", got)
	}
	if len(fetcher.requests) != 2 {
		t.Errorf("request count = %d, want 2", len(fetcher.requests))
	}
	if fetcher.requests[1] != "https://www.youtube.com/get_video_info?step=2" {
		t.Errorf("second request = %q", fetcher.requests[1])
	}
}

func TestResolveMediaURL_RemoteReason(t *testing.T) {
	page := "status=fail&errorcode=150&reason=" + url.QueryEscape("<b>Video unavailable</b> in your country")
	fetcher := &fakeFetcher{info: []*ytfeedhttp.Response{{StatusCode: 200, Body: []byte(page)}}}
	resolver := NewResolver(fetcher)

	_, err := resolver.ResolveMediaURL(context.Background(), watchURL, nil)
	var resErr *ResolutionError
	if !errors.As(err, &resErr) {
		t.Fatalf("error = %v, want *ResolutionError", err)
	}
	if !strings.Contains(resErr.Reason, "Video unavailable") {
		t.Errorf("Reason = %q, want it to contain %q", resErr.Reason, "Video unavailable")
	}
	if strings.Contains(resErr.Reason, "<b>") {
		t.Errorf("Reason %q still contains markup", resErr.Reason)
	}
}

func TestResolveMediaURL_NoStreamMapNoReason(t *testing.T) {
	fetcher := &fakeFetcher{info: []*ytfeedhttp.Response{{StatusCode: 200, Body: []byte("status=fail&errorcode=2")}}}
	resolver := NewResolver(fetcher)

	_, err := resolver.ResolveMediaURL(context.Background(), watchURL, nil)
	if !errors.Is(err, ErrNoStreamMap) {
		t.Errorf("error = %v, want ErrNoStreamMap", err)
	}
}

func TestResolveMediaURL_EmptyFormatMap(t *testing.T) {
	// A stream map that decodes to no usable (itag, url) pairs.
	page := "url_encoded_fmt_stream_map=" + url.QueryEscape("foo=bar")
	fetcher := &fakeFetcher{info: []*ytfeedhttp.Response{{StatusCode: 200, Body: []byte(page)}}}
	resolver := NewResolver(fetcher)

	_, err := resolver.ResolveMediaURL(context.Background(), watchURL, nil)
	if !errors.Is(err, ErrNoFormats) {
		t.Errorf("error = %v, want ErrNoFormats", err)
	}
}

func TestResolveMediaURL_NoVideoIDReturnsInput(t *testing.T) {
	fetcher := &fakeFetcher{}
	resolver := NewResolver(fetcher)

	input := "https://example.com/episode.mp3"
	got, err := resolver.ResolveMediaURL(context.Background(), input, nil)
	if err != nil {
		t.Fatalf("ResolveMediaURL failed: %v", err)
	}
	if got != input {
		t.Errorf("resolved %q, want input unchanged", got)
	}
	if len(fetcher.requests) != 0 {
		t.Errorf("unexpected network requests: %v", fetcher.requests)
	}
}

func TestResolveMediaURL_NetworkErrorPropagates(t *testing.T) {
	netErr := errors.New("connection refused")
	fetcher := &fakeFetcher{infoErr: netErr}
	resolver := NewResolver(fetcher)

	_, err := resolver.ResolveMediaURL(context.Background(), watchURL, nil)
	if !errors.Is(err, netErr) {
		t.Errorf("error = %v, want fetch error unwrapped", err)
	}
}

const coverFeedXML = `<?xml version="1.0"?>
<feed xmlns:yt="http://www.youtube.com/xml/schemas/2015" xmlns="http://www.w3.org/2005/Atom">
  <yt:channelId>UCabc123</yt:channelId>
  <title>Test Channel</title>
</feed>`

func TestCoverArtURL(t *testing.T) {
	feedURL := "https://www.youtube.com/feeds/videos.xml?channel_id=UCabc123"
	fetcher := &fakeFetcher{pages: map[string]string{
		feedURL: coverFeedXML,
		"https://www.youtube.com/channel/UCabc123": `<html><head>
			<link rel="image_src" href="https://yt3.ggpht.com/cover900.jpg">
		</head></html>`,
	}}
	resolver := NewResolver(fetcher)

	got, err := resolver.CoverArtURL(context.Background(), feedURL)
	if err != nil {
		t.Fatalf("CoverArtURL failed: %v", err)
	}
	if got != "https://yt3.ggpht.com/cover900.jpg" {
		t.Errorf("cover URL = %q", got)
	}
}

func TestCoverArtURL_FallbackAvatar(t *testing.T) {
	feedURL := "https://www.youtube.com/feeds/videos.xml?channel_id=UCabc123"
	fetcher := &fakeFetcher{pages: map[string]string{
		feedURL: coverFeedXML,
		"https://www.youtube.com/channel/UCabc123": `<html><body>
			<img class="channel-header-profile-image" src="https://yt3.ggpht.com/avatar100.jpg">
		</body></html>`,
	}}
	resolver := NewResolver(fetcher)

	got, err := resolver.CoverArtURL(context.Background(), feedURL)
	if err != nil {
		t.Fatalf("CoverArtURL failed: %v", err)
	}
	if got != "https://yt3.ggpht.com/avatar100.jpg" {
		t.Errorf("cover URL = %q", got)
	}
}

func TestCoverArtURL_NonYouTube(t *testing.T) {
	resolver := NewResolver(&fakeFetcher{})

	got, err := resolver.CoverArtURL(context.Background(), "https://example.com/feed.xml")
	if err != nil || got != "" {
		t.Errorf("CoverArtURL = %q, %v, want empty, nil", got, err)
	}
}

func TestChannelsForUser_ChannelID(t *testing.T) {
	feedURL := "https://www.youtube.com/feeds/videos.xml?channel_id=UCabc123"
	fetcher := &fakeFetcher{pages: map[string]string{feedURL: coverFeedXML}}
	resolver := NewResolver(fetcher)

	got, err := resolver.ChannelsForUser(context.Background(), "UCabc123", "")
	if err != nil {
		t.Fatalf("ChannelsForUser failed: %v", err)
	}
	if len(got) != 1 || got[0] != feedURL {
		t.Errorf("ChannelsForUser = %v", got)
	}
}

func TestChannelsForUser_APILookup(t *testing.T) {
	lookupURL := "https://www.googleapis.com/youtube/v3/channels?forUsername=somebody&part=id&key=test-key"
	fetcher := &fakeFetcher{pages: map[string]string{
		lookupURL: `{"items": [{"id": "UCfirst"}, {"id": "UCsecond"}]}`,
	}}
	resolver := NewResolver(fetcher)

	got, err := resolver.ChannelsForUser(context.Background(), "somebody", "test-key")
	if err != nil {
		t.Fatalf("ChannelsForUser failed: %v", err)
	}
	want := []string{
		"https://www.youtube.com/feeds/videos.xml?channel_id=UCfirst",
		"https://www.youtube.com/feeds/videos.xml?channel_id=UCsecond",
	}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("ChannelsForUser = %v, want %v", got, want)
	}
}
