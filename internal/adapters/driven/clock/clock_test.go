package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReal_AfterFuncFires(t *testing.T) {
	done := make(chan struct{})

	Real{}.AfterFunc(time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("callback did not fire")
	}
}

func TestReal_StopPreventsCallback(t *testing.T) {
	fired := make(chan struct{}, 1)

	timer := Real{}.AfterFunc(time.Hour, func() { fired <- struct{}{} })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())
	assert.Empty(t, fired)
}
