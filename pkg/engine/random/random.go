// Package random provides the uniform sample sources the maze generator
// draws its walk directions from.
//
// The generator only needs one operation, a uniform sample in [0,1), so any
// *rand.Rand can be used directly. The wrappers in this package make runs
// reproducible (Recorder, Replay) and observable (Counter).
package random

import (
	"math/rand"
	"sync/atomic"
	"time"
)

// Source yields uniform samples in [0,1).
// Implementations must not block; the generator calls Float64 in a tight loop.
type Source interface {
	Float64() float64
}

// NewSeeded returns a deterministic source for the given seed
func NewSeeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NewTimeSeeded returns a source seeded from the wall clock.
// Every call returns an independent generator; *rand.Rand is not safe to
// share between goroutines.
func NewTimeSeeded() *rand.Rand {
	return NewSeeded(time.Now().UnixNano())
}

// Replay plays back a fixed sequence of samples, starting over when the
// sequence is exhausted.
type Replay struct {
	samples []float64
	pos     int
}

// NewReplay creates a replay source over a copy of samples.
// An empty sequence replays 0 forever.
func NewReplay(samples ...float64) *Replay {
	s := make([]float64, len(samples))
	copy(s, samples)
	return &Replay{samples: s}
}

// Float64 returns the next recorded sample
func (r *Replay) Float64() float64 {
	if len(r.samples) == 0 {
		return 0
	}
	v := r.samples[r.pos]
	r.pos = (r.pos + 1) % len(r.samples)
	return v
}

// Recorder passes samples through from another source and keeps a copy of
// each one, so a run can be replayed later.
type Recorder struct {
	src     Source
	samples []float64
}

// NewRecorder wraps src
func NewRecorder(src Source) *Recorder {
	return &Recorder{src: src}
}

// Float64 draws from the wrapped source and records the sample
func (r *Recorder) Float64() float64 {
	v := r.src.Float64()
	r.samples = append(r.samples, v)
	return v
}

// Replay returns a Replay over the recorded samples
func (r *Recorder) Replay() *Replay {
	return NewReplay(r.samples...)
}

// Counter counts how many samples have been drawn from the wrapped source.
// It is the diagnostic hook for walk length: one sample is one stride.
type Counter struct {
	src   Source
	calls atomic.Int64
}

// NewCounter wraps src
func NewCounter(src Source) *Counter {
	return &Counter{src: src}
}

// Float64 draws from the wrapped source
func (c *Counter) Float64() float64 {
	c.calls.Add(1)
	return c.src.Float64()
}

// Calls returns the number of samples drawn
func (c *Counter) Calls() int64 {
	return c.calls.Load()
}
