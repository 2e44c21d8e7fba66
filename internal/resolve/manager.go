package resolve

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/podqueue/ytfeed/internal/config"
	"github.com/podqueue/ytfeed/internal/feed"
	ytfeedhttp "github.com/podqueue/ytfeed/internal/http"
	"github.com/podqueue/ytfeed/internal/media"
	"github.com/podqueue/ytfeed/internal/model"
	"github.com/podqueue/ytfeed/internal/playlist"
	"github.com/podqueue/ytfeed/internal/youtube"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a pipeline progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Fetcher is the fetch capability the Manager needs: the resolver surface
// plus raw byte downloads for cover art.
type Fetcher interface {
	youtube.Fetcher
	DownloadBytes(ctx context.Context, url string) ([]byte, error)
}

// Result is the outcome of resolving one episode.
type Result struct {
	// Feed is the feed the episode came from.
	Feed *model.Feed

	// Episode is the resolved episode.
	Episode *model.Episode

	// URL pairs the episode link with the resolved direct media URL.
	// Zero when Err is set.
	URL model.ResolvedURL

	// Err is the resolution failure, if any.
	Err error
}

// Manager coordinates feed fetching and media URL resolution.
type Manager struct {
	settings *config.Settings
	fetcher  Fetcher
	resolver *youtube.Resolver
	scaler   *media.Scaler

	feeds   []*model.Feed
	results []Result

	resolvedCount int32
	failedCount   int32

	onProgress func(ProgressEvent)
	mu         sync.RWMutex
}

// NewManager creates a new resolution Manager.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent)) *Manager {
	client := ytfeedhttp.NewClient()
	return &Manager{
		settings:   settings,
		fetcher:    client,
		resolver:   youtube.NewResolver(client),
		scaler:     media.NewScaler(),
		onProgress: onProgress,
	}
}

// Initialize normalizes the input URLs and fetches feed info.
//
// Input is one URL per line. Channel, user and playlist links are
// rewritten to their canonical feed URL and fetched; single watch URLs
// become one-episode feeds without a network round trip.
func (m *Manager) Initialize(ctx context.Context, input string) error {
	urls := m.parseInputURLs(input)
	if len(urls) == 0 {
		return fmt.Errorf("no URLs provided")
	}

	for _, inputURL := range urls {
		feedURL := youtube.NormalizeChannelURL(inputURL)
		if feedURL != inputURL {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Resolved channel link: %s => %s", inputURL, feedURL), Level: LevelVerbose})
		}

		switch {
		case strings.Contains(feedURL, "/feeds/videos.xml"):
			parsed, err := feed.Fetch(ctx, m.fetcher, feedURL)
			if err != nil {
				m.progress(ProgressEvent{Message: fmt.Sprintf("Error fetching feed %s: %v", feedURL, err), Level: LevelError})
				continue
			}
			m.feeds = append(m.feeds, parsed)
			m.progress(ProgressEvent{Message: fmt.Sprintf("Found feed: %s (%d episodes)", parsed.Title, len(parsed.Episodes)), Level: LevelInfo})

		case youtube.IsVideoLink(feedURL):
			vid, _ := youtube.ExtractVideoID(feedURL)
			m.feeds = append(m.feeds, &model.Feed{
				Title:   vid,
				FeedURL: feedURL,
				Episodes: []*model.Episode{
					{VideoID: vid, Title: vid, Link: feedURL},
				},
			})
			m.progress(ProgressEvent{Message: fmt.Sprintf("Found video: %s", vid), Level: LevelInfo})

		default:
			m.progress(ProgressEvent{Message: fmt.Sprintf("Not a recognized YouTube URL, skipping: %s", inputURL), Level: LevelWarning})
		}
	}

	return nil
}

// Resolve resolves every initialized episode to a direct media URL.
//
// Episodes are resolved concurrently up to the configured limit.
// Individual failures are recorded per Result and reported as progress
// events; only context cancellation aborts the run.
func (m *Manager) Resolve(ctx context.Context) error {
	preferred := m.settings.FormatIDs()

	type slot struct {
		feed    *model.Feed
		episode *model.Episode
	}
	var slots []slot
	for _, f := range m.feeds {
		for _, ep := range f.Episodes {
			slots = append(slots, slot{feed: f, episode: ep})
		}
	}

	m.mu.Lock()
	m.results = make([]Result, len(slots))
	m.mu.Unlock()

	limit := m.settings.MaxConcurrentResolves
	if limit < 1 {
		limit = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, s := range slots {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			directURL, err := m.resolver.ResolveMediaURL(ctx, s.episode.Link, preferred)
			result := Result{Feed: s.feed, Episode: s.episode, Err: err}
			if err != nil {
				atomic.AddInt32(&m.failedCount, 1)
				m.progress(ProgressEvent{Message: fmt.Sprintf("Error resolving %s: %v", s.episode.Title, err), Level: LevelError})
			} else {
				result.URL = model.ResolvedURL{Original: s.episode.Link, Resolved: directURL}
				atomic.AddInt32(&m.resolvedCount, 1)
				m.progress(ProgressEvent{Message: fmt.Sprintf("Resolved: %s", s.episode.Title), Level: LevelVerbose})
			}

			m.mu.Lock()
			m.results[i] = result
			m.mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if m.settings.CreatePlaylist {
		m.writePlaylists()
	}
	if m.settings.SaveCoverArt {
		m.saveCovers(ctx)
	}

	resolved, failed, total := m.Progress()
	if failed == 0 {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Resolved %d/%d episodes", resolved, total), Level: LevelSuccess})
	} else {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Resolved %d/%d episodes, %d failed", resolved, total, failed), Level: LevelWarning})
	}

	return nil
}

// Results returns the per-episode outcomes, in feed order.
func (m *Manager) Results() []Result {
	m.mu.RLock()
	defer m.mu.RUnlock()
	results := make([]Result, len(m.results))
	copy(results, m.results)
	return results
}

// Progress returns current resolution progress.
func (m *Manager) Progress() (resolved, failed, total int32) {
	m.mu.RLock()
	total = int32(len(m.results))
	m.mu.RUnlock()
	return atomic.LoadInt32(&m.resolvedCount), atomic.LoadInt32(&m.failedCount), total
}

// FeedNames returns display names for all initialized feeds.
func (m *Manager) FeedNames() []string {
	names := make([]string, len(m.feeds))
	for i, f := range m.feeds {
		names[i] = fmt.Sprintf("%s (%d episodes)", f.Title, len(f.Episodes))
	}
	return names
}

func (m *Manager) parseInputURLs(input string) []string {
	var urls []string
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && (strings.HasPrefix(line, "http://") || strings.HasPrefix(line, "https://")) {
			urls = append(urls, line)
		}
	}
	return urls
}

// writePlaylists writes one playlist per feed containing the resolved URLs.
func (m *Manager) writePlaylists() {
	format := playlist.ParseFormat(m.settings.PlaylistFormat)
	creator := playlist.NewCreator(format, m.settings.M3UExtended)

	for _, f := range m.feeds {
		var entries []playlist.Entry
		for _, result := range m.Results() {
			if result.Feed == f && result.Err == nil {
				entries = append(entries, playlist.Entry{Title: result.Episode.Title, URL: result.URL.Resolved})
			}
		}
		if len(entries) == 0 {
			continue
		}

		if err := os.MkdirAll(m.settings.PlaylistPath, 0755); err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error creating playlist directory: %v", err), Level: LevelWarning})
			return
		}

		path := filepath.Join(m.settings.PlaylistPath, playlist.FileName(f.Title, format))
		content := creator.Create(f.Title, entries)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error writing playlist for %s: %v", f.Title, err), Level: LevelWarning})
			continue
		}
		m.progress(ProgressEvent{Message: fmt.Sprintf("Created playlist: %s", path), Level: LevelSuccess})
	}
}

// saveCovers looks up, scales and saves cover art for each feed.
// Cover art is best effort: failures degrade to warnings.
func (m *Manager) saveCovers(ctx context.Context) {
	for _, f := range m.feeds {
		if f.FeedURL == "" || !strings.Contains(f.FeedURL, "/feeds/videos.xml") {
			continue
		}

		coverURL, err := m.resolver.CoverArtURL(ctx, f.FeedURL)
		if err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error looking up cover art for %s: %v", f.Title, err), Level: LevelWarning})
			continue
		}
		if coverURL == "" {
			m.progress(ProgressEvent{Message: fmt.Sprintf("No cover art found for %s", f.Title), Level: LevelVerbose})
			continue
		}

		data, err := m.fetcher.DownloadBytes(ctx, coverURL)
		if err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error downloading cover art for %s: %v", f.Title, err), Level: LevelWarning})
			continue
		}

		thumb, err := m.scaler.Thumbnail(ctx, data, m.settings.CoverArtMaxSize)
		if err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error scaling cover art for %s: %v", f.Title, err), Level: LevelWarning})
			continue
		}

		if err := os.MkdirAll(m.settings.CoverArtPath, 0755); err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error creating cover art directory: %v", err), Level: LevelWarning})
			return
		}

		path := filepath.Join(m.settings.CoverArtPath, playlist.SanitizeFileName(f.Title)+".jpg")
		if err := os.WriteFile(path, thumb, 0644); err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error saving cover art for %s: %v", f.Title, err), Level: LevelWarning})
			continue
		}
		m.progress(ProgressEvent{Message: fmt.Sprintf("Saved cover art: %s", path), Level: LevelSuccess})
	}
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
