package model

import "time"

// Channel identifies the uploader of a video.
type Channel struct {
	ID         string
	Name       string
	ProfileURL string
}

// Video is everything a card needs to render one tile. All fields are required.
type Video struct {
	ID           string
	Title        string
	Channel      Channel
	Views        int64
	PostedAt     time.Time
	Duration     int // seconds
	ThumbnailURL string
	VideoURL     string // preview clip
}

// Listing represents one grid page.
type Listing struct {
	Title   string
	Videos  []Video
	Channel *Channel // set on channel pages
}
