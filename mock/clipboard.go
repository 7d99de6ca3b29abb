package mock

import "github.com/fwojciec/webclip"

var _ webclip.Clipboard = (*Clipboard)(nil)

// Clipboard is a mock implementation of webclip.Clipboard.
type Clipboard struct {
	ReadTextFn func() (string, error)
}

func (c *Clipboard) ReadText() (string, error) {
	return c.ReadTextFn()
}
