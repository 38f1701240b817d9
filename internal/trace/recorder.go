package trace

// Sink receives build events. Record must not fail the build.
type Sink interface {
	Record(event Event)
}

// SafeRecord records an event and swallows panics from a buggy sink.
func SafeRecord(s Sink, event Event) {
	if s == nil {
		return
	}
	defer func() {
		_ = recover()
	}()
	s.Record(event)
}

// Recorder collects events in memory. A build is single-goroutine, so no
// locking is done.
type Recorder struct {
	events []Event
}

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) Record(event Event) {
	if r == nil {
		return
	}
	r.events = append(r.events, event)
}

// Snapshot returns a copy of the recorded events.
func (r *Recorder) Snapshot() []Event {
	if r == nil {
		return nil
	}
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Trace builds a BuildTrace from the recorded events.
func (r *Recorder) Trace(identifier string) BuildTrace {
	return BuildTrace{Identifier: identifier, Events: r.Snapshot()}
}
