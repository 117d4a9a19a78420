package trace

import (
	"strconv"
	"sync"
	"time"
)

// Heartbeat emits a liveness event on a fixed interval. A run of beats
// with no span ending between them points at an input the parser is
// stuck on.
type Heartbeat struct {
	done chan struct{}
	wg   sync.WaitGroup
	once sync.Once
}

// StartHeartbeat returns nil when t records nothing or interval is not
// positive. Stop is safe on a nil Heartbeat.
func StartHeartbeat(t Tracer, interval time.Duration) *Heartbeat {
	if t == nil || t.Level() == LevelOff || interval <= 0 {
		return nil
	}
	h := &Heartbeat{done: make(chan struct{})}
	h.wg.Add(1)
	go h.beat(t, interval)
	return h
}

func (h *Heartbeat) beat(t Tracer, interval time.Duration) {
	defer h.wg.Done()
	tick := time.NewTicker(interval)
	defer tick.Stop()
	started := time.Now()
	for n := 1; ; n++ {
		select {
		case <-h.done:
			return
		case now := <-tick.C:
			t.Emit(&Event{
				Time:   now,
				Kind:   KindHeartbeat,
				Scope:  ScopeDriver,
				Name:   "heartbeat",
				Detail: "#" + strconv.Itoa(n) + " after " + now.Sub(started).Round(time.Millisecond).String(),
			})
		}
	}
}

// Stop ends the goroutine and waits for it.
func (h *Heartbeat) Stop() {
	if h == nil {
		return
	}
	h.once.Do(func() { close(h.done) })
	h.wg.Wait()
}
