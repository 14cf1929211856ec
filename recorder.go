package wld

import (
	"sync"

	"github.com/serioustools/wld/format"
)

// Entry is one captured parse log event.
type Entry struct {
	Level   format.Level
	Message string
}

// Recorder captures parse events in emission order so a console can replay
// the narrative after the parse returns.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Func returns a sink that appends to the recorder.
func (r *Recorder) Func() format.LogFunc {
	return func(level format.Level, msg string) {
		r.mu.Lock()
		r.entries = append(r.entries, Entry{Level: level, Message: msg})
		r.mu.Unlock()
	}
}

// Entries returns a copy of the captured events in emission order.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Count returns the number of captured events at the given level.
func (r *Recorder) Count(level format.Level) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.entries {
		if e.Level == level {
			n++
		}
	}
	return n
}

// Tee fans one event out to several sinks in order.
func Tee(sinks ...format.LogFunc) format.LogFunc {
	return func(level format.Level, msg string) {
		for _, sink := range sinks {
			if sink != nil {
				sink(level, msg)
			}
		}
	}
}
