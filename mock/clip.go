package mock

import (
	"context"

	"github.com/fwojciec/webclip"
)

var _ webclip.ClipService = (*ClipService)(nil)

// ClipService is a mock implementation of webclip.ClipService.
type ClipService struct {
	CreateClipFn   func(ctx context.Context, clip *webclip.Clip) error
	FindClipByIDFn func(ctx context.Context, id string) (*webclip.Clip, error)
	FindClipsFn    func(ctx context.Context, filter webclip.ClipFilter) ([]*webclip.Clip, error)
}

func (s *ClipService) CreateClip(ctx context.Context, clip *webclip.Clip) error {
	return s.CreateClipFn(ctx, clip)
}

func (s *ClipService) FindClipByID(ctx context.Context, id string) (*webclip.Clip, error) {
	return s.FindClipByIDFn(ctx, id)
}

func (s *ClipService) FindClips(ctx context.Context, filter webclip.ClipFilter) ([]*webclip.Clip, error) {
	return s.FindClipsFn(ctx, filter)
}
