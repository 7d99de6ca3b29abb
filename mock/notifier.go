package mock

import (
	"sync"

	"github.com/fwojciec/webclip"
)

var _ webclip.Notifier = (*Notifier)(nil)

// Notifier is a mock implementation of webclip.Notifier. It records
// every message; NotifyFn is optional.
type Notifier struct {
	NotifyFn func(message string)

	mu       sync.Mutex
	messages []string
}

func (n *Notifier) Notify(message string) {
	n.mu.Lock()
	n.messages = append(n.messages, message)
	n.mu.Unlock()
	if n.NotifyFn != nil {
		n.NotifyFn(message)
	}
}

// Messages returns the notifications received so far.
func (n *Notifier) Messages() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.messages...)
}
