package llm

import (
	"context"
	"sync"
)

// serial wraps a Provider whose backend is not safe under concurrent
// invocation, admitting one Complete call at a time. Local runtimes serving a
// single model slot need this; hosted APIs do not.
type serial struct {
	mu    sync.Mutex
	inner Provider
}

func Serialized(p Provider) Provider {
	return &serial{inner: p}
}

func (s *serial) Complete(ctx context.Context, prompt string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Complete(ctx, prompt)
}

func (s *serial) Close() error { return s.inner.Close() }
