package catlog

// Observer is notified after each write (Observer pattern).
// Implementations MUST be concurrency-safe; they run on the caller's goroutine.
type Observer interface {
	OnWrite(e Entry)
}

// ObserverFunc adapter.
type ObserverFunc func(Entry)

func (f ObserverFunc) OnWrite(e Entry) { f(e) }
