package card

import (
	"github.com/claes/ytcard/internal/format"
	"github.com/claes/ytcard/internal/model"
)

// View holds the display strings derived from a video. It does not depend on
// PlaybackState.
type View struct {
	model.Video
	WatchURL     string
	ChannelURL   string
	DurationText string
	ViewsText    string
	PostedText   string
}

// NewView derives the display strings for v using f.
func NewView(v model.Video, f format.Formatter) View {
	return View{
		Video:        v,
		WatchURL:     WatchPath(v.ID),
		ChannelURL:   ChannelPath(v.Channel.ID),
		DurationText: f.Duration(v.Duration),
		ViewsText:    f.Views(v.Views),
		PostedText:   f.TimeAgo(v.PostedAt),
	}
}

// MetaLine is the line under the channel name, e.g. "1.2M Views · 3 days ago".
func (v View) MetaLine() string {
	return v.ViewsText + " Views · " + v.PostedText
}
