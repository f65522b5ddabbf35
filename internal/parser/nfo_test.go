package parser

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sampleNFO = `<?xml version="1.0" encoding="UTF-8"?>
<movie>
  <title>Strange Filters</title>
  <plot>Exploring...</plot>
  <thumb>https://i3.ytimg.com/vi/zbKjqHqy2no/hqdefault.jpg</thumb>
  <trailer>clips/zbKjqHqy2no.mp4</trailer>
  <studio>Posy</studio>
  <channelid>posy</channelid>
  <channelthumb>posy.jpg</channelthumb>
  <views>1234567</views>
  <premiered>2023-04-05</premiered>
  <runtime>12</runtime>
  <fileinfo><streamdetails><video><durationinseconds>725</durationinseconds></video></streamdetails></fileinfo>
  <tag>Posy</tag><tag>Demo</tag><tag> </tag>
</movie>`

func writeNFO(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "x.nfo")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestParseNFO_OK(t *testing.T) {
	md, err := ParseNFO(writeNFO(t, sampleNFO))
	if err != nil {
		t.Fatal(err)
	}
	if md.Title != "Strange Filters" {
		t.Fatalf("bad title: %q", md.Title)
	}
	if md.Plot == "" || md.Thumb == "" {
		t.Fatalf("empty plot or thumb: %+v", md)
	}
	if md.ChannelName != "Posy" || md.ChannelID != "posy" || md.ChannelThumb != "posy.jpg" {
		t.Fatalf("bad channel: %+v", md)
	}
	if md.Trailer != "clips/zbKjqHqy2no.mp4" {
		t.Fatalf("bad trailer: %q", md.Trailer)
	}
	if md.Views != 1234567 {
		t.Fatalf("bad views: %d", md.Views)
	}
	if want := time.Date(2023, 4, 5, 0, 0, 0, 0, time.UTC); !md.PostedAt.Equal(want) {
		t.Fatalf("bad posted at: %v", md.PostedAt)
	}
	if md.Duration != 725 {
		t.Fatalf("want stream duration 725, got %d", md.Duration)
	}
	if len(md.Tags) != 2 {
		t.Fatalf("want 2 tags, got %d", len(md.Tags))
	}
}

func TestParseNFO_RuntimeFallbackAndAired(t *testing.T) {
	md, err := ParseNFO(writeNFO(t, `<movie><title>T</title><runtime>3</runtime><aired>2020-01-02T03:04:05Z</aired></movie>`))
	if err != nil {
		t.Fatal(err)
	}
	if md.Duration != 180 {
		t.Fatalf("want 180 seconds, got %d", md.Duration)
	}
	if md.PostedAt.Year() != 2020 || md.PostedAt.Hour() != 3 {
		t.Fatalf("bad aired date: %v", md.PostedAt)
	}
}

func TestParseNFO_Malformed(t *testing.T) {
	if _, err := ParseNFO(writeNFO(t, "<movie><title>")); err == nil {
		t.Fatalf("expected error for truncated xml")
	}
	if _, err := ParseNFO(filepath.Join(t.TempDir(), "missing.nfo")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
