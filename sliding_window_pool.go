package lzhf

import "sync"

// slidingWindowPool recycles match-finding state between compression runs;
// the buffers for the largest window run to a few megabytes.
var slidingWindowPool = sync.Pool{
	New: func() any {
		return &slidingWindow{}
	},
}

// acquireSlidingWindow returns a reset window sized for the given exponent.
func acquireSlidingWindow(bits int) *slidingWindow {
	s := slidingWindowPool.Get().(*slidingWindow)
	if s.winBits != bits {
		s.alloc(bits)
	}
	s.reset()
	return s
}

// releaseSlidingWindow returns a window to the pool.
func releaseSlidingWindow(s *slidingWindow) {
	if s == nil {
		return
	}
	slidingWindowPool.Put(s)
}
