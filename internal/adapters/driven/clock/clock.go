// Package clock provides the wall-clock implementation of driven.Clock.
package clock

import (
	"time"

	"github.com/jorge2985/El-Academico/internal/core/ports/driven"
)

// Ensure Real implements the interface.
var _ driven.Clock = Real{}

// Real schedules callbacks with time.AfterFunc.
type Real struct{}

// AfterFunc calls f in its own goroutine after d.
func (Real) AfterFunc(d time.Duration, f func()) driven.Timer {
	return time.AfterFunc(d, f)
}
