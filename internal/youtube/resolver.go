package youtube

import (
	"context"
	"fmt"
	"html"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"

	ytfeedhttp "github.com/podqueue/ytfeed/internal/http"
	"github.com/podqueue/ytfeed/internal/model"
)

// videoInfoURL is the endpoint serving the encoded format map for a video.
const videoInfoURL = "https://www.youtube.com/get_video_info?&el=detailpage&video_id="

// streamMapPattern locates the encoded format map on a video-info page.
// (http://forum.videohelp.com/topic336882-1800.html#1912972)
var streamMapPattern = regexp.MustCompile(`url_encoded_fmt_stream_map=([^&]+)`)

// htmlTagPattern strips markup from remote error messages.
var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// Fetcher is the fetch capability the Resolver consumes.
//
// Redirects are signalled through the Location field of the response
// rather than followed by the transport; the resolver follows them
// itself. Timeout and cancellation policy belong to the caller via ctx.
type Fetcher interface {
	GetNoFollow(ctx context.Context, url string) (*ytfeedhttp.Response, error)
	GetString(ctx context.Context, url string) (string, error)
}

// stream is one (format id, direct URL) pair decoded from the format map.
type stream struct {
	FormatID int
	URL      string
}

// Resolver resolves watch-page URLs into direct media URLs.
//
// A Resolver holds no per-call state; each resolution is independent and
// idempotent given an unchanged remote resource.
//
// Example usage:
//
//	resolver := NewResolver(client)
//	directURL, err := resolver.ResolveMediaURL(ctx, watchURL, []int{22, 18})
//	if err != nil {
//	    var resErr *ResolutionError
//	    if errors.As(err, &resErr) {
//	        fmt.Println("remote refused:", resErr.Reason)
//	    }
//	}
type Resolver struct {
	fetcher Fetcher
}

// NewResolver creates a new Resolver using the given fetch capability.
func NewResolver(fetcher Fetcher) *Resolver {
	return &Resolver{fetcher: fetcher}
}

// ResolveMediaURL resolves a watch-page URL to a direct media URL.
//
// When preferredIDs is empty the built-in default chain (MP4 720p and its
// fallbacks) is used. The first preferred id offered by the video wins;
// if none match, the highest offered format id is selected.
//
// URLs that carry no recognizable video id are returned unchanged.
// Failure modes:
//   - *ResolutionError when the remote page signals an explicit reason
//   - ErrNoStreamMap when neither format map nor reason can be parsed
//   - ErrNoFormats when the format map decodes to an empty set
//   - network errors from the fetch layer, unwrapped
func (r *Resolver) ResolveMediaURL(ctx context.Context, watchURL string, preferredIDs []int) (string, error) {
	vid, ok := ExtractVideoID(watchURL)
	if !ok {
		return watchURL, nil
	}

	if len(preferredIDs) == 0 {
		preferredIDs = model.DefaultFormatIDs()
	}

	page, err := r.fetchVideoInfo(ctx, vid)
	if err != nil {
		return "", err
	}

	streams, err := parseStreamMap(page)
	if err != nil {
		return "", err
	}
	if len(streams) == 0 {
		return "", fmt.Errorf("%w for video id %q", ErrNoFormats, vid)
	}

	// Streams are sorted descending, so the highest format id is the
	// deterministic default when no preference matches.
	selected := streams[0].URL

	available := make(map[int]string, len(streams))
	for _, s := range streams {
		available[s.FormatID] = s.URL
	}

	for _, id := range preferredIDs {
		if u, ok := available[id]; ok {
			selected = u
			break
		}
	}

	return selected, nil
}

// fetchVideoInfo retrieves the video-info page, following redirects
// signalled by the transport through the Location header.
func (r *Resolver) fetchVideoInfo(ctx context.Context, videoID string) (string, error) {
	infoURL := videoInfoURL + url.QueryEscape(videoID)

	for {
		resp, err := r.fetcher.GetNoFollow(ctx, infoURL)
		if err != nil {
			return "", err
		}
		if resp.Location != "" {
			infoURL = resp.Location
			continue
		}
		return string(resp.Body), nil
	}
}

// parseStreamMap decodes the encoded format map from a video-info page
// into (format id, URL) pairs, sorted descending by format id.
//
// A page without a format map is expected to carry an error reason as a
// query parameter; that reason is stripped of markup and surfaced as a
// ResolutionError.
func parseStreamMap(page string) ([]stream, error) {
	m := streamMapPattern.FindStringSubmatch(page)
	if m == nil {
		if reason, ok := parseErrorReason(page); ok {
			return nil, &ResolutionError{Reason: reason}
		}
		return nil, ErrNoStreamMap
	}

	decoded, err := url.QueryUnescape(m[1])
	if err != nil {
		return nil, fmt.Errorf("malformed stream map: %w", err)
	}

	var streams []stream
	for _, encoded := range strings.Split(decoded, ",") {
		values, err := url.ParseQuery(encoded)
		if err != nil {
			continue
		}
		id, err := strconv.Atoi(values.Get("itag"))
		if err != nil || values.Get("url") == "" {
			continue
		}
		streams = append(streams, stream{FormatID: id, URL: values.Get("url")})
	}

	sort.Slice(streams, func(i, j int) bool {
		return streams[i].FormatID > streams[j].FormatID
	})

	return streams, nil
}

// parseErrorReason extracts the error reason from a video-info page that
// carries no format map.
func parseErrorReason(page string) (string, bool) {
	values, err := url.ParseQuery(page)
	if err != nil {
		return "", false
	}
	reason := values.Get("reason")
	if reason == "" {
		return "", false
	}
	reason = htmlTagPattern.ReplaceAllString(reason, "")
	return strings.TrimSpace(html.UnescapeString(reason)), true
}
