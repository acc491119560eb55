package mock

import (
	"sync"

	"github.com/fwojciec/wikictx"
)

var _ wikictx.StatusSink = (*StatusSink)(nil)

// StatusSink is a mock implementation of wikictx.StatusSink that records
// every notification it receives. It is safe for concurrent use.
type StatusSink struct {
	mu     sync.Mutex
	events []StatusEvent
}

// StatusEvent is one recorded notification.
type StatusEvent struct {
	Message  string
	Severity wikictx.Severity
}

func (s *StatusSink) Notify(message string, severity wikictx.Severity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, StatusEvent{Message: message, Severity: severity})
}

// Events returns a copy of the recorded notifications.
func (s *StatusSink) Events() []StatusEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]StatusEvent(nil), s.events...)
}

// BySeverity returns the recorded messages with the given severity.
func (s *StatusSink) BySeverity(severity wikictx.Severity) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var messages []string
	for _, e := range s.events {
		if e.Severity == severity {
			messages = append(messages, e.Message)
		}
	}
	return messages
}
