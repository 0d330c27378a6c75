package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinnerRendersWhenEnabled(t *testing.T) {
	var buf syncBuffer
	s := newSpinnerTo(context.Background(), &buf, true, "Scanning")
	s.Start()
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	if !strings.Contains(buf.String(), "Scanning") {
		t.Errorf("output %q should contain the message", buf.String())
	}
}

func TestSpinnerSilentWhenDisabled(t *testing.T) {
	var buf syncBuffer
	s := newSpinnerTo(context.Background(), &buf, false, "Scanning")
	s.Start()
	time.Sleep(100 * time.Millisecond)
	s.Stop()

	if buf.String() != "" {
		t.Errorf("disabled spinner wrote %q", buf.String())
	}
}

func TestSpinnerStopTwice(t *testing.T) {
	s := newSpinnerTo(context.Background(), &syncBuffer{}, true, "x")
	s.Start()
	s.Stop()
	s.Stop()
}

func TestSpinnerWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	s := newSpinnerTo(ctx, &syncBuffer{}, true, "Testing with context...")
	s.Start()
	cancel()
	time.Sleep(100 * time.Millisecond)

	if s.ctx.Err() == nil {
		t.Error("spinner context should end with its parent")
	}
	s.Stop()
}
