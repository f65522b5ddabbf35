package parser

import (
	"encoding/xml"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type movie struct {
	Title        string   `xml:"title"`
	Plot         string   `xml:"plot"`
	Thumb        string   `xml:"thumb"`
	Trailer      string   `xml:"trailer"`
	Studio       string   `xml:"studio"`
	ChannelID    string   `xml:"channelid"`
	ChannelThumb string   `xml:"channelthumb"`
	Views        string   `xml:"views"`
	Premiered    string   `xml:"premiered"`
	Aired        string   `xml:"aired"`
	Runtime      string   `xml:"runtime"`
	Seconds      string   `xml:"fileinfo>streamdetails>video>durationinseconds"`
	Tags         []string `xml:"tag"`
}

// Metadata is what a Kodi-style movie .nfo says about one video.
// Zero values mean the field was absent or unreadable.
type Metadata struct {
	Title        string
	Plot         string
	Thumb        string
	Trailer      string
	ChannelName  string
	ChannelID    string
	ChannelThumb string
	Views        int64
	PostedAt     time.Time
	Duration     int // seconds
	Tags         []string
}

// ParseNFO parses a Kodi-compatible .nfo XML file.
func ParseNFO(path string) (Metadata, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Metadata{}, errors.Wrapf(err, "failed to read nfo %s", path)
	}
	var m movie
	if err := xml.Unmarshal(b, &m); err != nil {
		return Metadata{}, errors.Wrapf(err, "failed to decode nfo %s", path)
	}
	md := Metadata{
		Title:        strings.TrimSpace(m.Title),
		Plot:         strings.TrimSpace(m.Plot),
		Thumb:        strings.TrimSpace(m.Thumb),
		Trailer:      strings.TrimSpace(m.Trailer),
		ChannelName:  strings.TrimSpace(m.Studio),
		ChannelID:    strings.TrimSpace(m.ChannelID),
		ChannelThumb: strings.TrimSpace(m.ChannelThumb),
		Tags:         make([]string, 0, len(m.Tags)),
	}
	if v, err := strconv.ParseInt(strings.TrimSpace(m.Views), 10, 64); err == nil && v >= 0 {
		md.Views = v
	}
	for _, d := range []string{m.Premiered, m.Aired} {
		if t, ok := parseDate(d); ok {
			md.PostedAt = t
			break
		}
	}
	md.Duration = parseDuration(m.Seconds, m.Runtime)
	for _, t := range m.Tags {
		t = strings.TrimSpace(t)
		if t != "" {
			md.Tags = append(md.Tags, t)
		}
	}
	return md, nil
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseDuration prefers the exact stream length and falls back to the
// runtime tag, which Kodi keeps in minutes.
func parseDuration(seconds, runtime string) int {
	if s, err := strconv.Atoi(strings.TrimSpace(seconds)); err == nil && s > 0 {
		return s
	}
	if m, err := strconv.Atoi(strings.TrimSpace(runtime)); err == nil && m > 0 {
		return m * 60
	}
	return 0
}
