package model

// FormatSpec describes a single YouTube video format (identified by its
// itag number) and the ordered list of formats to fall back to when the
// preferred one is not offered for a given video.
//
// The Fallbacks chain always starts with the format's own ID and ends at
// the lowest-quality format that is acceptable as a substitute.
type FormatSpec struct {
	// ID is the itag number identifying this encoding+resolution combination.
	ID int

	// Fallbacks is the ordered preference chain, highest quality first.
	// The first element is always ID itself.
	Fallbacks []int

	// Descriptor is the compact "itag/resolution/codec" descriptor string
	// used by legacy format negotiation.
	Descriptor string

	// Description is a human-readable name like "MP4 HD 720p (1280x720)".
	Description string
}

// Formats is the static format preference table, highest quality first.
// Insertion order is priority order. IDs are unique across the table.
//
// See http://en.wikipedia.org/wiki/YouTube#Quality_and_codecs for the
// meaning of the individual itag numbers.
var Formats = []FormatSpec{
	// WebM VP8 video, Vorbis audio.
	// Fall back to an MP4 version of the same quality, then to
	// 34 (FLV 360p) if 18 (MP4 360p) fails, then to 6 or 5 (FLV H.263).
	{46, []int{46, 37, 45, 22, 44, 35, 43, 18, 6, 34, 5}, "45/1280x720/99/0/0", "WebM 1080p (1920x1080)"},
	{45, []int{45, 22, 44, 35, 43, 18, 6, 34, 5}, "45/1280x720/99/0/0", "WebM 720p (1280x720)"},
	{44, []int{44, 35, 43, 18, 6, 34, 5}, "44/854x480/99/0/0", "WebM 480p (854x480)"},
	{43, []int{43, 18, 6, 34, 5}, "43/640x360/99/0/0", "WebM 360p (640x360)"},

	// MP4 H.264 video, AAC audio.
	// 35 (FLV 480p) sits between 720p and 360p because there is no MP4 480p.
	{38, []int{38, 37, 22, 35, 18, 34, 6, 5}, "38/1920x1080/9/0/115", "MP4 4K 3072p (4096x3072)"},
	{37, []int{37, 22, 35, 18, 34, 6, 5}, "37/1920x1080/9/0/115", "MP4 HD 1080p (1920x1080)"},
	{22, []int{22, 35, 18, 34, 6, 5}, "22/1280x720/9/0/115", "MP4 HD 720p (1280x720)"},
	{18, []int{18, 34, 6, 5}, "18/640x360/9/0/115", "MP4 360p (640x360)"},

	// FLV H.264 video, AAC audio.
	{35, []int{35, 34, 6, 5}, "35/854x480/9/0/115", "FLV 480p (854x480)"},
	{34, []int{34, 6, 5}, "34/640x360/9/0/115", "FLV 360p (640x360)"},

	// FLV Sorenson H.263 video, MP3 audio.
	{6, []int{6, 5}, "5/480x270/7/0/0", "FLV 270p (480x270)"},
	{5, []int{5}, "5/320x240/7/0/0", "FLV 240p (320x240)"},
}

// DefaultFormatID is the format assumed when no preference is configured.
const DefaultFormatID = 22 // MP4 720p

var formatsByID = func() map[int]FormatSpec {
	m := make(map[int]FormatSpec, len(Formats))
	for _, f := range Formats {
		m[f.ID] = f
	}
	return m
}()

// FormatByID returns the FormatSpec for the given itag number.
func FormatByID(id int) (FormatSpec, bool) {
	f, ok := formatsByID[id]
	return f, ok
}

// DefaultFormatIDs returns the built-in fallback chain used when the
// caller supplies no preferred format ids.
func DefaultFormatIDs() []int {
	f := formatsByID[DefaultFormatID]
	ids := make([]int, len(f.Fallbacks))
	copy(ids, f.Fallbacks)
	return ids
}
