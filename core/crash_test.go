package core

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type crashCapture struct {
	mu   sync.Mutex
	buf  bytes.Buffer
	code chan int
}

func (c *crashCapture) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.Write(p)
}

func (c *crashCapture) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.String()
}

func captureCrash(t *testing.T) *crashCapture {
	t.Helper()
	c := &crashCapture{code: make(chan int, 1)}

	oldExit, oldStderr := exit, stderr
	exit = func(code int) { c.code <- code }
	stderr = c
	t.Cleanup(func() {
		exit, stderr = oldExit, oldStderr
		SetRestore(nil)
	})
	return c
}

func TestHandleCrashRestoresOnce(t *testing.T) {
	c := captureCrash(t)

	restored := 0
	SetRestore(func() { restored++ })

	HandleCrash("boom")
	assert.Equal(t, 1, <-c.code)
	assert.Equal(t, 1, restored)
	assert.Contains(t, c.String(), "CRASH DETECTED: boom")
	assert.Contains(t, c.String(), "Stack Trace:")

	HandleCrash("again")
	<-c.code
	assert.Equal(t, 1, restored, "restore runs only for the first crash")
}

func TestHandleCrashNil(t *testing.T) {
	c := captureCrash(t)
	HandleCrash(nil)
	assert.Empty(t, c.String())
	assert.Len(t, c.code, 0)
}

func TestGoRecoversPanic(t *testing.T) {
	c := captureCrash(t)

	Go(func() { panic("poll loop failed") })

	select {
	case code := <-c.code:
		assert.Equal(t, 1, code)
	case <-time.After(2 * time.Second):
		require.FailNow(t, "panic was not recovered")
	}
	assert.Contains(t, c.String(), "poll loop failed")
}
