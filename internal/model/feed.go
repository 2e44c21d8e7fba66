package model

import "time"

// Feed represents a YouTube channel or playlist feed.
//
// A Feed is the parsed view of a feeds/videos.xml document: the channel
// metadata plus one Episode per video entry.
type Feed struct {
	// Title is the channel or playlist title.
	Title string

	// ChannelID is the channel identifier ("UC..."), when present.
	ChannelID string

	// Link is the alternate (web) link for the channel or playlist.
	Link string

	// FeedURL is the canonical feed URL this Feed was loaded from.
	FeedURL string

	// Episodes contains one entry per video, in feed order.
	Episodes []*Episode
}

// Episode represents a single video entry within a feed.
type Episode struct {
	// VideoID is the video identifier from the feed entry.
	VideoID string

	// Title is the video title.
	Title string

	// Link is the watch-page URL for the video.
	Link string

	// Description is the video description, possibly truncated by the feed.
	Description string

	// Thumbnail is the thumbnail image URL, if the feed provides one.
	Thumbnail string

	// Published is when the video was published. Zero if the feed omits
	// the timestamp or it cannot be parsed.
	Published time.Time
}

// ResolvedURL pairs an input URL with the URL it resolved to.
//
// ResolvedURL values have no persistent identity: they are computed fresh
// per resolution call and never mutated after construction.
type ResolvedURL struct {
	// Original is the URL as supplied by the caller.
	Original string

	// Resolved is the direct media URL (or the canonical feed URL, for
	// channel-link normalization).
	Resolved string
}
