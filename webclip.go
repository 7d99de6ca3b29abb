// Package webclip clips web pages into locally stored, linked notes.
// It fetches a page, isolates the readable article content away from
// navigation and boilerplate, converts it to Markdown with ![[...]]
// embeds, and persists the note together with its media into a
// hierarchical store, tolerating partial failure per asset.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., http/,
// readability/, sqlite/).
package webclip
