package helper

import (
	"bytes"
	"html/template"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

const (
	shortDateLayout = "Jan 2, 2006"
	longDateLayout  = "January 2, 2006"
	dateTimeLayout  = "Jan 2, 2006 3:04 PM"
)

var htmlSanitizer = bluemonday.UGCPolicy()

func FormatDate(t time.Time) string {
	return t.Format(shortDateLayout)
}

func FormatLongDate(t time.Time) string {
	return t.Format(longDateLayout)
}

func FormatDateTime(t time.Time) string {
	return t.Format(dateTimeLayout)
}

// TimeAgo renders t relative to now, e.g. "3 days ago".
func TimeAgo(t, now time.Time) string {
	return humanize.RelTime(t, now, "ago", "from now")
}

// RenderMarkdown converts user text to sanitised HTML. On a conversion error the text is
// returned escaped.
func RenderMarkdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(htmlSanitizer.SanitizeBytes(buf.Bytes()))
}
