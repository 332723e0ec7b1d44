package production

import (
	"sync"

	"github.com/comalice/storetree/internal/core"
)

// ChannelReporter forwards warnings to a Go channel.
// Non-blocking report with drop on backpressure. Reports after Close are
// dropped.
type ChannelReporter struct {
	mu     sync.Mutex
	ch     chan<- core.Warning
	closed bool
}

// NewChannelReporter creates a ChannelReporter with the given output channel.
func NewChannelReporter(ch chan<- core.Warning) *ChannelReporter {
	return &ChannelReporter{ch: ch}
}

func (r *ChannelReporter) Report(w core.Warning) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	select {
	case r.ch <- w:
	default:
	}
}

// Close closes the output channel. It is safe to call more than once.
func (r *ChannelReporter) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true
	close(r.ch)
	return nil
}

// MultiReporter fans a warning out to several reporters in order.
type MultiReporter []core.Reporter

func (m MultiReporter) Report(w core.Warning) {
	for _, r := range m {
		r.Report(w)
	}
}
