package karl

// Observer is notified with every fully built event, after the enrich
// callback has run and before formatting. Implementations MUST be
// concurrency-safe; they run on the emission worker and must not call
// back into the logger.
type Observer interface {
	OnEvent(e Event)
}

// ObserverFunc adapter.
type ObserverFunc func(Event)

func (f ObserverFunc) OnEvent(e Event) { f(e) }

// AddObserver registers an observer for subsequent events.
func (l *Logger) AddObserver(o Observer) {
	l.obsMu.Lock()
	defer l.obsMu.Unlock()
	cur := l.snapshotObservers()
	cur = append(cur, o)
	l.observers.Store(cur)
}

func (l *Logger) snapshotObservers() []Observer {
	v := l.observers.Load()
	if v == nil {
		return nil
	}
	cur := v.([]Observer)
	if len(cur) == 0 {
		return nil
	}
	out := make([]Observer, len(cur))
	copy(out, cur)
	return out
}

func (l *Logger) notifyObservers(e *Event) {
	v := l.observers.Load()
	if v == nil {
		return
	}
	obs := v.([]Observer)
	for _, o := range obs {
		o.OnEvent(*e)
	}
}
