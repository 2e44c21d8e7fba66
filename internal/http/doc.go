// Package http wraps HTTP operations for ytfeed.
//
// The Client sets a consistent User-Agent and timeout for all requests.
// Besides plain GETs it offers GetNoFollow, which surfaces redirects to
// the caller through the Location header instead of following them —
// the video-info resolver needs to see each hop.
package http
