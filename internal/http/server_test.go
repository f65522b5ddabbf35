package http

import (
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/claes/ytcard/internal/browse"
	"github.com/claes/ytcard/internal/format"
)

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func write(t *testing.T, path string, content []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

// newTestServer builds a catalog with two videos by "posy" and one by "hn".
func newTestServer(t *testing.T) (nethttp.Handler, string) {
	t.Helper()
	root := t.TempDir()
	videos := []struct{ dir, id, title, channel, views, date string }{
		{"HN", "abc", "Strange Filters", "posy", "1234567", "2024-05-29"},
		{"HN", "def", "Second", "posy", "999", "2024-05-01"},
		{"Other", "ghi", "Third", "hn", "12345", "2023-01-01"},
	}
	for _, v := range videos {
		write(t, filepath.Join(root, v.dir, v.id+".strm"), []byte("plugin://plugin.video.youtube/play/?video_id="+v.id+"\n"))
		nfo := `<movie><title>` + v.title + `</title><plot>P</plot><thumb>a#b.jpg</thumb><tag>t</tag>` +
			`<studio>` + v.channel + `</studio><channelid>` + v.channel + `</channelid><channelthumb>avatar.png</channelthumb>` +
			`<trailer>https://cdn.example.com/` + v.id + `.mp4</trailer><views>` + v.views + `</views>` +
			`<premiered>` + v.date + `</premiered><fileinfo><streamdetails><video><durationinseconds>3661</durationinseconds></video></streamdetails></fileinfo></movie>`
		write(t, filepath.Join(root, v.dir, v.id+".nfo"), []byte(nfo))
	}
	write(t, filepath.Join(root, "HN", "a#b.jpg"), []byte{0xFF, 0xD8, 0xFF, 0xDB, 0x00})
	write(t, filepath.Join(root, "HN", "avatar.png"), []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A})

	entries, err := browse.Catalog(root)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	f := format.NewLocale("en").WithClock(func() time.Time { return now })
	return NewServer(root, browse.NewIndex(entries), f), root
}

func get(t *testing.T, h nethttp.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", target, nil))
	return rr
}

func parse(t *testing.T, rr *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(rr.Body)
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

func TestGrid_RendersAllCards(t *testing.T) {
	h, _ := newTestServer(t)
	rr := get(t, h, "/")
	if rr.Code != 200 {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	doc := parse(t, rr)
	cards := doc.Find("[data-card]")
	if cards.Length() != 3 {
		t.Fatalf("expected 3 cards, got %d", cards.Length())
	}
	if id, _ := cards.First().Attr("data-id"); id != "abc" {
		t.Fatalf("expected newest first, got %q", id)
	}
	meta := strings.TrimSpace(cards.First().Find(".card-meta").Text())
	if meta != "1.2M Views · 3 days ago" {
		t.Fatalf("bad meta line: %q", meta)
	}
	if d := strings.TrimSpace(cards.First().Find(".card-duration").Text()); d != "1:01:01" {
		t.Fatalf("bad duration: %q", d)
	}
	if doc.Find("script").Length() != 1 {
		t.Fatalf("expected the preview script once per page")
	}
	body, _ := doc.Html()
	if !strings.Contains(body, "/media/HN/a%23b.jpg") {
		t.Fatalf("expected encoded thumbnail path in page")
	}
}

func TestChannelPage(t *testing.T) {
	h, _ := newTestServer(t)
	rr := get(t, h, "/@posy")
	if rr.Code != 200 {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	doc := parse(t, rr)
	if n := doc.Find("[data-card]").Length(); n != 2 {
		t.Fatalf("expected 2 cards, got %d", n)
	}
	if name := strings.TrimSpace(doc.Find(".channel h2").Text()); name != "posy" {
		t.Fatalf("bad channel heading: %q", name)
	}

	if rr := get(t, h, "/@nobody"); rr.Code != 404 {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestWatchPage(t *testing.T) {
	h, _ := newTestServer(t)
	rr := get(t, h, "/watch?v=ghi")
	if rr.Code != 200 {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	doc := parse(t, rr)
	if title := strings.TrimSpace(doc.Find(".watch h2").Text()); title != "Third" {
		t.Fatalf("bad title: %q", title)
	}
	if href, _ := doc.Find(".watch .channel a").First().Attr("href"); href != "/@hn" {
		t.Fatalf("bad channel link: %q", href)
	}

	if rr := get(t, h, "/watch"); rr.Code != 400 {
		t.Fatalf("expected 400 without v, got %d", rr.Code)
	}
	if rr := get(t, h, "/watch?v=nope"); rr.Code != 404 {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestCardFragment(t *testing.T) {
	h, _ := newTestServer(t)
	rr := get(t, h, "/cards/abc")
	if rr.Code != 200 {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	doc := parse(t, rr)
	if state, _ := doc.Find("[data-card]").Attr("data-state"); state != "idle" {
		t.Fatalf("expected idle card, got %q", state)
	}
	if n := doc.Find(`a[href="/watch?v=abc"]`).Length(); n != 2 {
		t.Fatalf("expected 2 watch links, got %d", n)
	}
	if rr := get(t, h, "/cards/nope"); rr.Code != 404 {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestMedia_ServesCatalogImages(t *testing.T) {
	h, _ := newTestServer(t)

	rr := get(t, h, "/media/HN/a%23b.jpg")
	if rr.Code != 200 {
		t.Fatalf("expected 200 for image, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "image/jpeg" {
		t.Fatalf("expected image/jpeg, got %q", ct)
	}
	if cc := rr.Header().Get("Cache-Control"); cc != "public, max-age=60" {
		t.Fatalf("expected Cache-Control public, max-age=60, got %q", cc)
	}

	rr = get(t, h, "/media/HN/avatar.png")
	if ct := rr.Header().Get("Content-Type"); rr.Code != 200 || ct != "image/png" {
		t.Fatalf("expected png, got %d %q", rr.Code, ct)
	}
}

func TestMedia_RejectsOtherFiles(t *testing.T) {
	h, _ := newTestServer(t)
	for _, target := range []string{"/media/HN/abc.nfo", "/media/HN/nope.jpg", "/media/HN"} {
		if rr := get(t, h, target); rr.Code != 404 {
			t.Fatalf("%s: expected 404, got %d", target, rr.Code)
		}
	}
}

func TestHealthHandler_OK(t *testing.T) {
	h, _ := newTestServer(t)
	rr := get(t, h, "/health")
	if rr.Code != 200 {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	var body struct {
		Status string `json:"status"`
		Videos int    `json:"videos"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body.Status != "ok" || body.Videos != 3 {
		t.Fatalf("unexpected body %+v", body)
	}
}
