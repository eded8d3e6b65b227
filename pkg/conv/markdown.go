package conv

import (
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/inbucket/html2text"
	"github.com/microcosm-cc/bluemonday"
)

var (
	extensions = parser.CommonExtensions | parser.NoEmptyLineBeforeBlock
	htmlFlags  = html.CommonFlags
	textPolicy = bluemonday.UGCPolicy()
)

// MarkdownToHTML renders md and strips anything a user-generated document
// should not carry (scripts, styles, event handlers).
func MarkdownToHTML(md string) string {
	p := parser.NewWithExtensions(extensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: htmlFlags})
	unsafeHTML := markdown.Render(p.Parse([]byte(md)), renderer)

	return string(textPolicy.SanitizeBytes(unsafeHTML))
}

// MarkdownToText renders md as plain terminal text. Input that fails to
// convert is returned unchanged.
func MarkdownToText(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}

	text, err := html2text.FromString(MarkdownToHTML(md), html2text.Options{
		OmitLinks:    false,
		PrettyTables: true,
	})
	if err != nil {
		return md
	}
	return strings.TrimSpace(text)
}
