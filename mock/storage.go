package mock

import (
	"context"
	"sync"

	"github.com/fwojciec/webclip"
)

var _ webclip.Storage = (*Storage)(nil)

// Storage is a mock implementation of webclip.Storage. When the
// function fields are nil it behaves as an empty in-memory store and
// records every call in Calls, which makes it convenient for asserting
// call ordering.
type Storage struct {
	FolderExistsFn     func(ctx context.Context, path string) (bool, error)
	CreateFolderFn     func(ctx context.Context, path string) error
	CreateTextFileFn   func(ctx context.Context, path string, content string) error
	CreateBinaryFileFn func(ctx context.Context, path string, data []byte) error

	mu      sync.Mutex
	folders map[string]bool
	files   map[string][]byte
	calls   []string
}

// Call is a recorded storage operation, formatted "op path".
func (s *Storage) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

// Folders returns the set of folders created through the default
// in-memory behavior.
func (s *Storage) Folders() map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]bool, len(s.folders))
	for k, v := range s.folders {
		out[k] = v
	}
	return out
}

// Files returns the files written through the default in-memory
// behavior.
func (s *Storage) Files() map[string][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string][]byte, len(s.files))
	for k, v := range s.files {
		out[k] = v
	}
	return out
}

func (s *Storage) record(op, path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, op+" "+path)
}

func (s *Storage) FolderExists(ctx context.Context, path string) (bool, error) {
	s.record("exists", path)
	if s.FolderExistsFn != nil {
		return s.FolderExistsFn(ctx, path)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.folders[path], nil
}

func (s *Storage) CreateFolder(ctx context.Context, path string) error {
	s.record("mkdir", path)
	if s.CreateFolderFn != nil {
		return s.CreateFolderFn(ctx, path)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.folders == nil {
		s.folders = make(map[string]bool)
	}
	s.folders[path] = true
	return nil
}

func (s *Storage) CreateTextFile(ctx context.Context, path string, content string) error {
	s.record("write", path)
	if s.CreateTextFileFn != nil {
		return s.CreateTextFileFn(ctx, path, content)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.files == nil {
		s.files = make(map[string][]byte)
	}
	s.files[path] = []byte(content)
	return nil
}

func (s *Storage) CreateBinaryFile(ctx context.Context, path string, data []byte) error {
	s.record("write", path)
	if s.CreateBinaryFileFn != nil {
		return s.CreateBinaryFileFn(ctx, path, data)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.files == nil {
		s.files = make(map[string][]byte)
	}
	s.files[path] = append([]byte(nil), data...)
	return nil
}
