// Package resolve provides the orchestration logic for turning input
// URLs into resolved direct media URLs.
//
// # Manager
//
// The Manager coordinates the resolution pipeline:
//
//  1. Parse input URLs
//  2. Normalize channel/user/playlist links into canonical feed URLs
//  3. Fetch and parse each feed
//  4. Resolve episode watch URLs to direct media URLs concurrently
//  5. Generate playlists of the resolved URLs (optional)
//  6. Save channel cover art thumbnails (optional)
//
// # Basic Usage
//
//	manager := resolve.NewManager(settings, func(event resolve.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	if err := manager.Initialize(ctx, "https://www.youtube.com/channel/UC..."); err != nil {
//	    log.Fatal(err)
//	}
//	if err := manager.Resolve(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	for _, result := range manager.Results() {
//	    fmt.Println(result.URL.Resolved)
//	}
//
// # Concurrency
//
// The resolver itself is synchronous and stateless; the Manager is the
// caller-side worker pool, bounded by settings.MaxConcurrentResolves.
// Individual episode failures are reported per result and do not abort
// the run; context cancellation does.
//
// # Progress Tracking
//
// Progress is reported via a callback receiving ProgressEvent values
// with a message and a level (Info, Verbose, Warning, Error, Success).
package resolve
