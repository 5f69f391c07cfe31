package ticker

import (
	"sync"
	"time"
)

// Ticker delivers callbacks from a background goroutine at a fixed period
// while armed.
type Ticker struct {
	mu     sync.Mutex
	stopCh chan struct{}
}

// New creates a disarmed Ticker.
func New() *Ticker {
	return &Ticker{}
}

// Arm starts delivering callback every period, replacing any earlier arming.
func (ticker *Ticker) Arm(callback func(), period time.Duration) {
	if period <= 0 {
		period = time.Second
	}

	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	ticker.disarmLocked()

	stopCh := make(chan struct{})
	ticker.stopCh = stopCh
	go run(stopCh, callback, period)
}

// Disarm stops delivery. It does not wait for a callback that is already
// running to return.
func (ticker *Ticker) Disarm() {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	ticker.disarmLocked()
}

// Armed reports whether the ticker is currently delivering.
func (ticker *Ticker) Armed() bool {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	return ticker.stopCh != nil
}

func (ticker *Ticker) disarmLocked() {
	if ticker.stopCh == nil {
		return
	}
	close(ticker.stopCh)
	ticker.stopCh = nil
}

func run(stopCh <-chan struct{}, callback func(), period time.Duration) {
	clock := time.NewTicker(period)
	defer clock.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-clock.C:
			// A stop may race with the clock; prefer the stop.
			select {
			case <-stopCh:
				return
			default:
			}
			callback()
		}
	}
}
