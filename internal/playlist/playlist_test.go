package playlist

import (
	"strings"
	"testing"
)

func testEntries() []Entry {
	return []Entry{
		{Title: "First Episode", URL: "https://cdn.example.com/first.mp4"},
		{Title: "Second Episode", URL: "https://cdn.example.com/second.mp4"},
	}
}

func TestCreator_M3U(t *testing.T) {
	creator := NewCreator(FormatM3U, false)

	content := creator.Create("Test Channel", testEntries())

	if !strings.Contains(content, "https://cdn.example.com/first.mp4") {
		t.Error("M3U should contain entry URL")
	}
	if strings.Contains(content, "#EXTM3U") {
		t.Error("plain M3U should not contain #EXTM3U header")
	}
}

func TestCreator_M3UExtended(t *testing.T) {
	creator := NewCreator(FormatM3U, true)

	content := creator.Create("Test Channel", testEntries())

	if !strings.HasPrefix(content, "#EXTM3U") {
		t.Error("extended M3U should start with #EXTM3U")
	}
	if !strings.Contains(content, "#EXTINF:-1,First Episode") {
		t.Error("extended M3U should contain #EXTINF with title")
	}
}

func TestCreator_PLS(t *testing.T) {
	creator := NewCreator(FormatPLS, false)

	content := creator.Create("Test Channel", testEntries())

	if !strings.HasPrefix(content, "[playlist]") {
		t.Error("PLS should start with [playlist]")
	}
	if !strings.Contains(content, "File1=https://cdn.example.com/first.mp4") {
		t.Error("PLS should contain File1=")
	}
	if !strings.Contains(content, "NumberOfEntries=2") {
		t.Error("PLS should contain NumberOfEntries=2")
	}
}

func TestParseFormat(t *testing.T) {
	if ParseFormat("pls") != FormatPLS {
		t.Error(`ParseFormat("pls") != FormatPLS`)
	}
	if ParseFormat("m3u") != FormatM3U {
		t.Error(`ParseFormat("m3u") != FormatM3U`)
	}
	if ParseFormat("unknown") != FormatM3U {
		t.Error("unknown format should default to M3U")
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		title  string
		format Format
		want   string
	}{
		{"Test Channel", FormatM3U, "Test Channel.m3u"},
		{"Name: With/Invalid", FormatPLS, "Name_ With_Invalid.pls"},
		{"Trailing dots...", FormatM3U, "Trailing dots.m3u"},
		{"", FormatM3U, "playlist.m3u"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			got := FileName(tt.title, tt.format)
			if got != tt.want {
				t.Errorf("FileName(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}
