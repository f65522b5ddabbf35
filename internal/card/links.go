package card

import "net/url"

// WatchPath is the watch page for a video.
func WatchPath(videoID string) string {
	return "/watch?v=" + url.QueryEscape(videoID)
}

// ChannelPath is the channel page for a channel, e.g. "/@xyz".
func ChannelPath(channelID string) string {
	return "/@" + url.PathEscape(channelID)
}
