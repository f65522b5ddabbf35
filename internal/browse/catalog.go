package browse

import (
	"io/fs"
	"net/url"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/claes/ytcard/internal/model"
	"github.com/claes/ytcard/internal/parser"
)

// MediaPrefix is where files under the catalog root are served.
const MediaPrefix = "/media/"

// Entry is one catalog video plus the details only the watch page shows.
type Entry struct {
	model.Video
	Plot string
	Tags []string
}

// Catalog scans root recursively and returns every complete video, newest first.
// A video is a .strm file with a .nfo of the same base name; an optional .url
// file next to them overrides the preview clip named by the .nfo trailer.
// Entries missing any field a card needs are skipped.
func Catalog(root string) ([]Entry, error) {
	type sidecars struct {
		dir, base      string
		strm, nfo, url string
	}
	groups := make(map[string]*sidecars)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		name := d.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".strm" && ext != ".nfo" && ext != ".url" {
			return nil
		}
		dir := filepath.Dir(path)
		base := strings.TrimSuffix(name, filepath.Ext(name))
		key := filepath.Join(dir, base)
		g := groups[key]
		if g == nil {
			g = &sidecars{dir: dir, base: base}
			groups[key] = g
		}
		switch ext {
		case ".strm":
			g.strm = path
		case ".nfo":
			g.nfo = path
		case ".url":
			g.url = path
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to scan catalog %s", root)
	}

	var entries []Entry
	for _, g := range groups {
		if g.strm == "" || g.nfo == "" {
			continue // only include pairs
		}
		e, ok := buildEntry(root, g.dir, g.strm, g.nfo, g.url)
		if !ok {
			log.WithField("entry", filepath.Join(g.dir, g.base)).Debug("skipping incomplete catalog entry")
			continue
		}
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if !a.PostedAt.Equal(b.PostedAt) {
			return a.PostedAt.After(b.PostedAt)
		}
		if a.Title != b.Title {
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		}
		return a.ID < b.ID
	})
	return entries, nil
}

func buildEntry(root, dir, strm, nfo, urlFile string) (Entry, bool) {
	id, err := parser.ParseSTRM(strm)
	if err != nil || id == "" {
		return Entry{}, false
	}
	md, err := parser.ParseNFO(nfo)
	if err != nil {
		log.WithError(err).Debug("failed to parse nfo")
		return Entry{}, false
	}
	clip := md.Trailer
	if urlFile != "" {
		if u, err := parser.ParseURLFile(urlFile); err == nil && u != "" {
			clip = u
		}
	}
	e := Entry{
		Video: model.Video{
			ID:    id,
			Title: md.Title,
			Channel: model.Channel{
				ID:         md.ChannelID,
				Name:       md.ChannelName,
				ProfileURL: resolve(root, dir, md.ChannelThumb),
			},
			Views:        md.Views,
			PostedAt:     md.PostedAt,
			Duration:     md.Duration,
			ThumbnailURL: resolve(root, dir, md.Thumb),
			VideoURL:     resolve(root, dir, clip),
		},
		Plot: md.Plot,
		Tags: md.Tags,
	}
	return e, complete(e.Video)
}

func complete(v model.Video) bool {
	return v.ID != "" && v.Title != "" &&
		v.Channel.ID != "" && v.Channel.Name != "" && v.Channel.ProfileURL != "" &&
		!v.PostedAt.IsZero() && v.ThumbnailURL != "" && v.VideoURL != ""
}

// resolve turns a sidecar reference into a loadable URL. Absolute URLs and
// rooted paths are kept; relative paths are served from the catalog.
func resolve(root, dir, ref string) string {
	if ref == "" {
		return ""
	}
	if u, err := url.Parse(ref); err == nil && (u.IsAbs() || strings.HasPrefix(ref, "/")) {
		return ref
	}
	p := filepath.Join(dir, filepath.FromSlash(ref))
	if !IsSubpath(root, p) {
		return ""
	}
	rel, err := filepath.Rel(root, p)
	if err != nil {
		return ""
	}
	segs := strings.Split(filepath.ToSlash(rel), "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return MediaPrefix + strings.Join(segs, "/")
}

// IsSubpath ensures child is within root, preventing path traversal.
func IsSubpath(root, child string) bool {
	absRoot, _ := filepath.Abs(root)
	absChild, _ := filepath.Abs(child)
	rel, err := filepath.Rel(absRoot, absChild)
	if err != nil {
		return false
	}
	return !strings.HasPrefix(rel, ".."+string(filepath.Separator)) && rel != ".."
}
