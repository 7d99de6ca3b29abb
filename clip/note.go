package clip

import (
	"encoding/binary"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

// FormatNote formats a clipped note with YAML frontmatter. The source
// and title values are double-quoted so titles containing YAML
// indicators like ": " stay valid.
func FormatNote(sourceURL, title string, clippedAt time.Time, markdown string) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(strconv.Quote(sourceURL))
	b.WriteString("\ntitle: ")
	b.WriteString(strconv.Quote(title))
	b.WriteString("\nclipped: ")
	b.WriteString(clippedAt.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(markdown)
	return b.String()
}

// ContentHash computes a hash of the content using xxhash and returns
// it as a hex string.
func ContentHash(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}
