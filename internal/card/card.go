// Package card renders a video thumbnail tile that swaps to a muted preview
// clip while hovered.
package card

import (
	"bytes"
	"embed"
	"html/template"
	"io"

	"github.com/claes/ytcard/internal/format"
	"github.com/claes/ytcard/internal/model"
)

//go:embed assets/*.tmpl
var assets embed.FS

var tpl = template.Must(template.ParseFS(assets, "assets/*.tmpl"))

// Card is one rendered tile together with its hover state.
type Card struct {
	View
	Preview Preview
}

// New builds an idle card for v.
func New(v model.Video, f format.Formatter) *Card {
	return &Card{View: NewView(v, f)}
}

// State reports the card's PlaybackState for the markup.
func (c *Card) State() State {
	return c.Preview.State()
}

// Render writes the card markup. The markup reflects the current state.
func (c *Card) Render(w io.Writer) error {
	return tpl.ExecuteTemplate(w, "card", c)
}

// HTML renders the card for embedding in another template.
func (c *Card) HTML() (template.HTML, error) {
	return execute("card", c)
}

// Style returns the stylesheet shared by all cards on a page.
func Style() (template.HTML, error) {
	return execute("card-style", nil)
}

// Script returns the client-side hover handling shared by all cards on a page.
func Script() (template.HTML, error) {
	return execute("card-script", nil)
}

func execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
