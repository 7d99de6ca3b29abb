package clip_test

import (
	"testing"
	"time"

	"github.com/fwojciec/webclip/clip"
	"github.com/stretchr/testify/assert"
)

func TestFormatNote(t *testing.T) {
	t.Parallel()

	clippedAt := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)

	t.Run("frontmatter and body", func(t *testing.T) {
		t.Parallel()

		note := clip.FormatNote("https://example.com/post", "My Post", clippedAt, "Body text with ![[foo.png]].")

		want := `---
source: "https://example.com/post"
title: "My Post"
clipped: 2026-08-25
---

Body text with ![[foo.png]].`
		assert.Equal(t, want, note)
	})

	t.Run("title with colon stays valid YAML", func(t *testing.T) {
		t.Parallel()

		note := clip.FormatNote("https://example.com/post", "Go: The Good Parts", clippedAt, "Body.")

		assert.Contains(t, note, "title: \"Go: The Good Parts\"\n")
	})
}

func TestContentHash(t *testing.T) {
	t.Parallel()

	h1 := clip.ContentHash("content a")
	h2 := clip.ContentHash("content a")
	h3 := clip.ContentHash("content b")

	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, h3)
	assert.Len(t, h1, 16)
}
