package karl

import "sync/atomic"

type stats struct {
	emitted     atomic.Uint64
	bytes       atomic.Uint64
	writeErrors atomic.Uint64
}

// StatsSnapshot is a point-in-time counters snapshot.
type StatsSnapshot struct {
	Emitted      uint64
	BytesWritten uint64
	WriteErrors  uint64
}

func (s *stats) snapshot() StatsSnapshot {
	return StatsSnapshot{
		Emitted:      s.emitted.Load(),
		BytesWritten: s.bytes.Load(),
		WriteErrors:  s.writeErrors.Load(),
	}
}

// Stats returns a snapshot of the logger's emission counters.
func (l *Logger) Stats() StatsSnapshot { return l.st.snapshot() }
