package webclip

import (
	"net/url"
	"path"
	"strings"
)

// Layout describes where a clipped note and its media live in storage.
// A clip titled T under reading root R materializes as:
//
//	R/T/T.md       the note
//	R/T/images/... one file per referenced asset
type Layout struct {
	NoteDir  string
	NotePath string
	ImageDir string
}

// NewLayout derives the storage layout for a clip. The title is used
// verbatim as both the folder name and the file stem, except that path
// separators are replaced so a title cannot escape its folder. Two
// clips sharing a title share a layout; the later clip overwrites.
func NewLayout(readingRoot, title string) Layout {
	t := strings.TrimSpace(title)
	t = strings.ReplaceAll(t, "/", "-")
	t = strings.ReplaceAll(t, `\`, "-")
	if t == "" {
		t = "Untitled"
	}

	dir := path.Join(readingRoot, t)
	return Layout{
		NoteDir:  dir,
		NotePath: dir + "/" + t + ".md",
		ImageDir: dir + "/images",
	}
}

// AssetPath returns the storage path for a relative asset reference.
func (l Layout) AssetPath(ref string) string {
	return path.Join(l.ImageDir, ref)
}

// AssetRef normalizes an image src into a path relative to the page's
// origin. It reports false for sources that are not local asset
// references: absolute URLs, protocol-relative URLs, data URIs,
// fragments and references that climb above the page root. The same normalization drives both embed rendering and
// asset retrieval, so the ![[name]] in the note always matches the
// stored file.
func AssetRef(src string) (string, bool) {
	s := strings.TrimSpace(src)
	if s == "" || strings.HasPrefix(s, "#") || strings.HasPrefix(s, "data:") {
		return "", false
	}
	if strings.HasPrefix(s, "//") {
		return "", false
	}
	if u, err := url.Parse(s); err != nil || u.IsAbs() {
		return "", false
	}

	s = strings.TrimPrefix(s, "./")
	s = strings.TrimPrefix(s, "/")
	if s == "" {
		return "", false
	}

	// A reference that still climbs upward after cleaning would resolve
	// outside the clip's images folder.
	s = path.Clean(s)
	if s == ".." || strings.HasPrefix(s, "../") {
		return "", false
	}
	return s, true
}

// AssetURL resolves a relative asset reference against the origin
// hostname it was discovered on.
func AssetURL(hostname, ref string) string {
	return "https://" + hostname + "/" + ref
}
