// Package htmltomarkdown wraps html-to-markdown to convert extracted
// article HTML to Markdown with ![[...]] embeds for local media.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/dom"
	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/webclip"
	"golang.org/x/net/html"
)

// Ensure Converter implements webclip.Converter at compile time.
var _ webclip.Converter = (*Converter)(nil)

// Converter converts HTML to Markdown. Images whose src is a local
// asset reference render as ![[name]] embeds; remote images keep the
// standard ![alt](src) syntax. The embed rewrite is a renderer rule
// over the parsed tree, never a string substitution, so bracket
// sequences in prose are left alone.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)

	// Registered ahead of the commonmark image rule; images that are
	// not local asset references fall through to it.
	conv.Register.RendererFor("img", converter.TagTypeInline, renderEmbed, converter.PriorityEarly)

	return &Converter{conv: conv}
}

// renderEmbed renders a local image as an ![[name]] embed.
func renderEmbed(ctx converter.Context, w converter.Writer, node *html.Node) converter.RenderStatus {
	src := dom.GetAttributeOr(node, "src", "")
	ref, ok := webclip.AssetRef(src)
	if !ok {
		return converter.RenderTryNext
	}

	_, _ = w.WriteString("![[" + ref + "]]")
	return converter.RenderSuccess
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", webclip.Errorf(webclip.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	return result, nil
}
