package playlist

import (
	"fmt"
	"regexp"
	"strings"
)

// Format represents supported playlist file formats.
//
// Each format has different features and compatibility:
//   - M3U: Simple text format, widely supported
//   - PLS: INI-style format, used by Winamp and streaming players
type Format int

const (
	// FormatM3U creates .m3u files (most compatible).
	// Can be extended with EXTINF lines for title info.
	FormatM3U Format = iota

	// FormatPLS creates .pls files (Winamp/SHOUTcast format).
	FormatPLS
)

// ParseFormat maps a settings string to a Format, defaulting to M3U.
func ParseFormat(name string) Format {
	switch name {
	case "pls":
		return FormatPLS
	default:
		return FormatM3U
	}
}

// Extension returns the file extension for the playlist format, including the dot.
func (f Format) Extension() string {
	switch f {
	case FormatPLS:
		return ".pls"
	default:
		return ".m3u"
	}
}

// Entry is one playlist line: an episode title and its direct media URL.
type Entry struct {
	Title string
	URL   string
}

// Creator generates playlist content in various formats.
//
// Creator takes a feed title and the resolved entries and produces a
// string ready to be written to a file:
//
//	creator := NewCreator(FormatM3U, true)
//	content := creator.Create("Channel Name", entries)
//	os.WriteFile(path, []byte(content), 0644)
type Creator struct {
	format   Format
	extended bool // For M3U: include EXTINF lines with titles
}

// NewCreator creates a new playlist Creator.
//
// For M3U, extended controls whether #EXTINF lines are emitted; it is
// ignored for other formats.
func NewCreator(format Format, extended bool) *Creator {
	return &Creator{
		format:   format,
		extended: extended,
	}
}

// Create generates playlist content for the given entries.
func (c *Creator) Create(title string, entries []Entry) string {
	switch c.format {
	case FormatPLS:
		return c.createPLS(entries)
	default:
		return c.createM3U(entries)
	}
}

// createM3U generates an M3U playlist of direct URLs.
//
// Extended M3U format (when extended=true):
//
//	#EXTM3U
//	#EXTINF:-1,Episode Title
//	https://...
//
// Feeds carry no episode durations, so EXTINF always reports -1.
func (c *Creator) createM3U(entries []Entry) string {
	var sb strings.Builder

	if c.extended {
		sb.WriteString("#EXTM3U\n")
	}

	for _, entry := range entries {
		if c.extended {
			sb.WriteString(fmt.Sprintf("#EXTINF:-1,%s\n", entry.Title))
		}
		sb.WriteString(entry.URL + "\n")
	}

	return sb.String()
}

// createPLS generates a PLS playlist.
//
// PLS format is an INI-style text file:
//
//	[playlist]
//	File1=https://...
//	Title1=Episode Title
//	Length1=-1
//	NumberOfEntries=2
//	Version=2
func (c *Creator) createPLS(entries []Entry) string {
	var sb strings.Builder

	sb.WriteString("[playlist]\n")

	for i, entry := range entries {
		idx := i + 1
		sb.WriteString(fmt.Sprintf("File%d=%s\n", idx, entry.URL))
		sb.WriteString(fmt.Sprintf("Title%d=%s\n", idx, entry.Title))
		sb.WriteString(fmt.Sprintf("Length%d=-1\n", idx))
	}

	sb.WriteString(fmt.Sprintf("NumberOfEntries=%d\n", len(entries)))
	sb.WriteString("Version=2\n")

	return sb.String()
}

// FileName computes a safe playlist filename for a feed title.
func FileName(title string, format Format) string {
	name := SanitizeFileName(title)
	if name == "" {
		name = "playlist"
	}
	return name + format.Extension()
}

// SanitizeFileName removes or replaces characters that are invalid in
// file names across platforms: invalid characters become underscores,
// trailing dots and whitespace are removed, runs of whitespace collapse
// to a single space.
func SanitizeFileName(name string) string {
	invalidChars := regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	name = invalidChars.ReplaceAllString(name, "_")

	name = regexp.MustCompile(`\.+$`).ReplaceAllString(name, "")
	name = regexp.MustCompile(`\s+`).ReplaceAllString(name, " ")
	name = strings.TrimRight(name, " ")

	return name
}
