// Package playlist generates playlist files from resolved media URLs.
//
// # Playlist Generation
//
// Generate playlists in various formats:
//
//	creator := playlist.NewCreator(playlist.FormatM3U, true) // extended M3U
//	content := creator.Create("My Channel", entries)
//	os.WriteFile(playlist.FileName("My Channel", playlist.FormatM3U), []byte(content), 0644)
//
// Supported formats:
//   - M3U (with optional extended info)
//   - PLS
//
// # Filename Sanitization
//
// Use SanitizeFileName to remove invalid characters from filenames:
//
//	safe := playlist.SanitizeFileName("Channel: Part 1/2") // Returns "Channel_ Part 1_2"
package playlist
