package ticker

import (
	"sync"
	"time"
)

// Manual is a tick source driven explicitly by the caller. It is used where
// tick delivery has to be deterministic.
type Manual struct {
	mu       sync.Mutex
	callback func()
	period   time.Duration
	arms     int
}

// NewManual creates a disarmed Manual source.
func NewManual() *Manual {
	return &Manual{}
}

// Arm stores callback until Disarm is called.
func (manual *Manual) Arm(callback func(), period time.Duration) {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	manual.callback = callback
	manual.period = period
	manual.arms++
}

// Disarm drops the stored callback.
func (manual *Manual) Disarm() {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	manual.callback = nil
}

// Armed reports whether a callback is stored.
func (manual *Manual) Armed() bool {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	return manual.callback != nil
}

// Period returns the period of the latest arming.
func (manual *Manual) Period() time.Duration {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	return manual.period
}

// Arms returns how many times Arm has been called.
func (manual *Manual) Arms() int {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	return manual.arms
}

// Fire delivers count ticks and returns how many were delivered. Delivery
// stops early when the callback disarms the source.
func (manual *Manual) Fire(count int) int {
	delivered := 0
	for i := 0; i < count; i++ {
		manual.mu.Lock()
		callback := manual.callback
		manual.mu.Unlock()
		if callback == nil {
			break
		}
		callback()
		delivered++
	}
	return delivered
}

// Callback returns the stored callback, or nil when disarmed. Holding on to it
// across a Disarm simulates a tick that was already scheduled.
func (manual *Manual) Callback() func() {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	return manual.callback
}
