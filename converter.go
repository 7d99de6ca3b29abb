package webclip

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms clean HTML (e.g., from an Extractor) into
	// Markdown. Images referencing local assets render as ![[name]]
	// embeds; everything else uses standard Markdown syntax.
	Convert(html string) (string, error)
}
