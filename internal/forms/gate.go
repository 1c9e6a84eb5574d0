package forms

import "sync"

// Gate admits at most one in-flight submission per key. Keys identify a form
// instance, e.g. the form name plus the visitor's session id.
type Gate struct {
	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewGate() *Gate {
	return &Gate{inflight: make(map[string]struct{})}
}

// Acquire marks key as submitting. When ok is false another submission for the
// same key has not resolved yet and release is nil.
func (g *Gate) Acquire(key string) (release func(), ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.inflight[key]; busy {
		return nil, false
	}
	g.inflight[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.inflight, key)
			g.mu.Unlock()
		})
	}, true
}
