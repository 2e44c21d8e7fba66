// Package feed fetches and parses YouTube feeds/videos.xml documents.
//
// The feed format is Atom with YouTube (yt:) and Media RSS (media:)
// extension elements:
//
//	f, err := feed.Fetch(ctx, client, "https://www.youtube.com/feeds/videos.xml?channel_id=UC...")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%s: %d episodes\n", f.Title, len(f.Episodes))
package feed
