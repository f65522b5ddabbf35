package browse

import "github.com/claes/ytcard/internal/model"

// Index looks up catalog entries by video and by channel.
type Index struct {
	entries   []Entry
	byID      map[string]int
	byChannel map[string][]int
}

// NewIndex indexes entries, keeping their order. The first entry wins when
// two share a video id.
func NewIndex(entries []Entry) *Index {
	idx := &Index{
		entries:   entries,
		byID:      make(map[string]int, len(entries)),
		byChannel: make(map[string][]int),
	}
	for i, e := range entries {
		if _, dup := idx.byID[e.ID]; dup {
			continue
		}
		idx.byID[e.ID] = i
		idx.byChannel[e.Channel.ID] = append(idx.byChannel[e.Channel.ID], i)
	}
	return idx
}

// Videos returns every indexed video.
func (x *Index) Videos() []model.Video {
	out := make([]model.Video, 0, len(x.byID))
	for i, e := range x.entries {
		if x.byID[e.ID] == i {
			out = append(out, e.Video)
		}
	}
	return out
}

func (x *Index) Video(id string) (Entry, bool) {
	i, ok := x.byID[id]
	if !ok {
		return Entry{}, false
	}
	return x.entries[i], true
}

// Channel returns the channel and its videos.
func (x *Index) Channel(id string) (model.Channel, []model.Video, bool) {
	is, ok := x.byChannel[id]
	if !ok {
		return model.Channel{}, nil, false
	}
	out := make([]model.Video, 0, len(is))
	for _, i := range is {
		out = append(out, x.entries[i].Video)
	}
	return out[0].Channel, out, true
}
