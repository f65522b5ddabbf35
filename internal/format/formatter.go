package format

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter turns raw card metadata into display strings.
type Formatter interface {
	Duration(seconds int) string
	Views(n int64) string
	TimeAgo(t time.Time) string
}

// Locale is the default Formatter. Numbers follow the configured language;
// elapsed-time phrases are measured against the clock.
type Locale struct {
	tag     language.Tag
	printer *message.Printer
	now     func() time.Time
}

// NewLocale builds a Locale for a BCP 47 tag such as "en" or "de-CH".
// Unknown or empty tags fall back to English.
func NewLocale(tag string) *Locale {
	t, err := language.Parse(tag)
	if err != nil || tag == "" {
		t = language.English
	}
	return &Locale{
		tag:     t,
		printer: message.NewPrinter(t),
		now:     time.Now,
	}
}

// WithClock replaces time.Now as the reference for TimeAgo.
func (l *Locale) WithClock(now func() time.Time) *Locale {
	l.now = now
	return l
}

// Tag returns the language the Locale formats numbers for.
func (l *Locale) Tag() language.Tag {
	return l.tag
}

func (l *Locale) Duration(seconds int) string {
	return Duration(seconds)
}

func (l *Locale) Views(n int64) string {
	return Compact(l.printer, n)
}

func (l *Locale) TimeAgo(t time.Time) string {
	return TimeAgo(t, l.now())
}

var _ Formatter = (*Locale)(nil)
