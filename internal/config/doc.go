// Package config handles application settings for ytfeed.
//
// Settings are stored as a JSON file. Loading a missing file silently
// falls back to defaults:
//
//	settings, err := config.Load("~/.config/ytfeed/settings.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(settings.PreferredFmtIDs)
//
// The preferred-format fields mirror the configuration surface consumed
// by the resolver: PreferredFmtIDs is an explicit ordered fallback chain,
// and PreferredFmtID selects a built-in chain from the format table when
// the explicit list is empty.
package config
