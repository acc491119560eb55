// Package slog adapts wikictx interfaces to the standard library's
// structured logger.
package slog

import (
	"log/slog"

	"github.com/fwojciec/wikictx"
)

// Ensure StatusSink implements wikictx.StatusSink.
var _ wikictx.StatusSink = (*StatusSink)(nil)

// StatusSink forwards crawl status notifications to a slog.Logger.
type StatusSink struct {
	logger *slog.Logger
}

// NewStatusSink creates a new StatusSink.
func NewStatusSink(logger *slog.Logger) *StatusSink {
	return &StatusSink{logger: logger}
}

// Notify logs the message at a level derived from the severity.
// Success is reported at Info level with a marker attribute.
func (s *StatusSink) Notify(message string, severity wikictx.Severity) {
	switch severity {
	case wikictx.SeverityWarning:
		s.logger.Warn(message)
	case wikictx.SeverityError:
		s.logger.Error(message)
	case wikictx.SeveritySuccess:
		s.logger.Info(message, "status", "success")
	default:
		s.logger.Info(message)
	}
}
