// Package youtube resolves YouTube URLs for the feed pipeline.
//
// The package handles three main use cases:
//
//  1. Normalizing channel, user and playlist links into canonical
//     feeds/videos.xml URLs
//  2. Resolving a watch-page URL into a direct media URL, honoring a
//     ranked list of preferred format ids
//  3. Best-effort lookups for channel cover art and username-to-channel
//     mappings
//
// # URL Normalization
//
// NormalizeChannelURL rewrites recognized channel shapes and leaves
// everything else untouched:
//
//	youtube.NormalizeChannelURL("https://www.youtube.com/channel/UCabc")
//	// "https://www.youtube.com/feeds/videos.xml?channel_id=UCabc"
//
// # Media Resolution
//
// Resolver fetches the video-info page and picks the best offered format:
//
//	resolver := youtube.NewResolver(client)
//	url, err := resolver.ResolveMediaURL(ctx, watchURL, settings.FormatIDs())
//
// Resolution is stateless: every call is independent and performs no
// retries. Network errors propagate unwrapped from the fetch layer.
package youtube
