// Package model defines the core data structures used throughout ytfeed.
//
// # Formats
//
// FormatSpec describes one YouTube video format (itag) together with its
// ordered fallback chain. The Formats table lists every format this tool
// knows about, highest quality first:
//
//	spec, ok := model.FormatByID(22)
//	fmt.Println(spec.Description) // "MP4 HD 720p (1280x720)"
//	fmt.Println(spec.Fallbacks)   // [22 35 18 34 6 5]
//
// # Feeds and Episodes
//
// Feed represents a YouTube channel or playlist feed, Episode one video
// entry within it:
//
//	feed := &model.Feed{Title: "Channel", ChannelID: "UC..."}
//	for _, ep := range feed.Episodes {
//	    fmt.Println(ep.Title, ep.Link)
//	}
//
// ResolvedURL pairs an input URL with the direct media URL it resolved to.
// Values are computed fresh per resolution and never mutated.
package model
