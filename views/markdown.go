package views

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	// Post files are author-controlled, so raw HTML blocks render as-is.
	goldmark.WithRendererOptions(goldmarkhtml.WithUnsafe()),
)

// postPolicy sanitizes editor-produced rich text from the database. UGCPolicy
// plus the image/figure elements the editor emits.
var postPolicy = func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").OnElements("p", "span", "img", "figure", "blockquote", "pre", "code")
	p.AllowElements("figure", "figcaption")
	return p
}()

// Markdown renders a file-backed post body as HTML.
func Markdown(source string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		if err := md.Convert([]byte(source), &buf); err != nil {
			return err
		}
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// RichText renders database-backed post content. Content that already looks
// like HTML is sanitized and passed through; plain text is split into
// paragraphs on blank lines, matching what the editor produces either way.
func RichText(source string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		trimmed := strings.TrimSpace(source)
		var out string
		if strings.HasPrefix(trimmed, "<") {
			out = postPolicy.Sanitize(source)
		} else {
			out = plainParagraphs(trimmed)
		}
		_, err := io.WriteString(w, out)
		return err
	})
}

// plainParagraphs wraps blank-line separated text in <p> tags, turning single
// newlines into <br />.
func plainParagraphs(text string) string {
	if text == "" {
		return ""
	}
	var sb strings.Builder
	for _, para := range splitParagraphs(text) {
		sb.WriteString("<p>")
		sb.WriteString(strings.ReplaceAll(esc(para), "\n", "<br />"))
		sb.WriteString("</p>")
	}
	return sb.String()
}

func splitParagraphs(text string) []string {
	var out []string
	for _, para := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n") {
		para = strings.Trim(para, "\n")
		if strings.TrimSpace(para) != "" {
			out = append(out, para)
		}
	}
	return out
}
