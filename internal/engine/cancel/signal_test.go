package cancel_test

import (
	"context"
	"os"
	"sync"
	"syscall"
	"testing"
	"testing/synctest"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/differ/internal/engine/cancel"
)

type recorder struct {
	mu    sync.Mutex
	msgs  []string
	codes []int
}

func (r *recorder) notify(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
}

func (r *recorder) exit(code int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.codes = append(r.codes, code)
}

func TestSignal_RequestAndRequested(t *testing.T) {
	s := cancel.New(nil, nil)
	assert.False(t, s.Requested())

	s.Request()
	assert.True(t, s.Requested())
}

func TestSignal_InterruptEscalation(t *testing.T) {
	rec := &recorder{}
	s := cancel.New(rec.notify, rec.exit)

	s.Interrupt()
	assert.True(t, s.Requested())
	assert.Equal(t, []string{cancel.MsgShuttingDown}, rec.msgs)
	assert.Empty(t, rec.codes)

	s.Interrupt()
	assert.Equal(t, []string{cancel.MsgShuttingDown, cancel.MsgShuttingDown}, rec.msgs)
	assert.Empty(t, rec.codes)

	s.Interrupt()
	assert.Equal(t, []string{cancel.MsgShuttingDown, cancel.MsgShuttingDown, cancel.MsgTerminating}, rec.msgs)
	assert.Equal(t, []int{1}, rec.codes)
}

func TestSignal_Watch(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		s := cancel.New(rec.notify, rec.exit)

		ctx, cancelCtx := context.WithCancel(t.Context())
		signals := make(chan os.Signal, 1)

		done := make(chan struct{})
		go func() {
			s.Watch(ctx, signals)
			close(done)
		}()

		signals <- syscall.SIGINT
		synctest.Wait()
		assert.True(t, s.Requested())
		assert.Empty(t, rec.codes)

		cancelCtx()
		<-done
	})
}

func TestSignal_WatchStopsOnClosedChannel(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s := cancel.New(nil, nil)
		signals := make(chan os.Signal)

		done := make(chan struct{})
		go func() {
			s.Watch(t.Context(), signals)
			close(done)
		}()

		close(signals)
		<-done
		assert.False(t, s.Requested())
	})
}
