package notifier

import "log"

// DispatchObserver receives retry-protocol events for outbound notifications.
// It exists so dispatch attempts and outcomes can be counted without binding
// the client to a metrics subsystem.
type DispatchObserver interface {
	ObserveAttempt(operation string, attempt int, err error)
	ObserveOutcome(operation string, success bool)
}

// LogObserver writes dispatch events to the standard logger.
type LogObserver struct{}

func (LogObserver) ObserveAttempt(operation string, attempt int, err error) {
	if err != nil {
		log.Printf("[Notifier] %s attempt %d failed: %v", operation, attempt, err)
	}
}

func (LogObserver) ObserveOutcome(operation string, success bool) {
	if success {
		log.Printf("[Notifier] %s succeeded", operation)
	} else {
		log.Printf("[Notifier] %s failed, giving up", operation)
	}
}

// NopObserver discards all events.
type NopObserver struct{}

func (NopObserver) ObserveAttempt(string, int, error) {}
func (NopObserver) ObserveOutcome(string, bool)       {}
