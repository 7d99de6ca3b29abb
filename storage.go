package webclip

import "context"

// Storage is a hierarchical container namespace, such as a note vault
// or a directory tree. Paths are slash-separated and relative to the
// storage root. Folder existence is monotonic: the pipeline creates
// folders but never removes them.
type Storage interface {
	// FolderExists reports whether a folder exists at path.
	FolderExists(ctx context.Context, path string) (bool, error)

	// CreateFolder creates a single folder. The parent must already
	// exist. Creating a folder that already exists is a no-op.
	CreateFolder(ctx context.Context, path string) error

	// CreateTextFile writes a text file, replacing any existing file.
	CreateTextFile(ctx context.Context, path string, content string) error

	// CreateBinaryFile writes a binary file, replacing any existing file.
	CreateBinaryFile(ctx context.Context, path string, data []byte) error
}

// Notifier emits user-facing messages. Notifications are
// fire-and-forget; there is no acknowledgment.
type Notifier interface {
	Notify(message string)
}

// Clipboard yields the URL to clip.
type Clipboard interface {
	ReadText() (string, error)
}
