package wikictx

// Severity classifies a status notification.
type Severity string

// Status severities.
const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// StatusSink receives progress and error notifications from a crawl.
// Notifications are fire-and-forget; implementations must not block.
type StatusSink interface {
	Notify(message string, severity Severity)
}

// NopStatusSink discards all notifications.
type NopStatusSink struct{}

// Notify implements StatusSink.
func (NopStatusSink) Notify(string, Severity) {}
