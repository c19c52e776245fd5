package llm

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type overlapProbe struct {
	active  int32
	overlap int32
}

func (p *overlapProbe) Complete(_ context.Context, prompt string) (string, error) {
	if atomic.AddInt32(&p.active, 1) > 1 {
		atomic.StoreInt32(&p.overlap, 1)
	}
	time.Sleep(time.Millisecond)
	atomic.AddInt32(&p.active, -1)
	return prompt, nil
}

func (p *overlapProbe) Close() error { return nil }

func TestSerializedAdmitsOneCallAtATime(t *testing.T) {
	probe := &overlapProbe{}
	p := Serialized(probe)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := p.Complete(context.Background(), "x"); err != nil {
				t.Errorf("complete: %v", err)
			}
		}()
	}
	wg.Wait()

	if atomic.LoadInt32(&probe.overlap) != 0 {
		t.Fatal("observed concurrent calls through serialized provider")
	}
}
