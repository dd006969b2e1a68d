// Package notify delivers transient notifications (toasts) about results of user actions.
package notify

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tippni/tippni/internal/metrics"
)

var log = logrus.WithField("package", "notify")

// Level ...
type Level string

const (
	// InfoLevel ...
	InfoLevel Level = "info"
	// SuccessLevel ...
	SuccessLevel Level = "success"
	// ErrorLevel ...
	ErrorLevel Level = "error"
)

// Notification is a transient message shown to the viewer.
type Notification struct {
	Level   Level     `json:"level"`
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}

// Notifier ...
type Notifier interface {
	Notify(n Notification)
}

// Error creates error notification.
func Error(format string, args ...interface{}) Notification {
	return Notification{Level: ErrorLevel, Message: fmt.Sprintf(format, args...), Time: time.Now()}
}

// Success creates success notification.
func Success(format string, args ...interface{}) Notification {
	return Notification{Level: SuccessLevel, Message: fmt.Sprintf(format, args...), Time: time.Now()}
}

// Info creates info notification.
func Info(format string, args ...interface{}) Notification {
	return Notification{Level: InfoLevel, Message: fmt.Sprintf(format, args...), Time: time.Now()}
}

type logNotifier struct{}

// NewLogNotifier returns notifier writing notifications to log.
func NewLogNotifier() Notifier {
	return logNotifier{}
}

func (logNotifier) Notify(n Notification) {
	l := log.WithField("level", n.Level)
	if n.Level == ErrorLevel {
		l.Warn(n.Message)
		return
	}
	l.Info(n.Message)
}

type multi []Notifier

// Multi fans notifications out to every notifier. Nil notifiers are skipped.
func Multi(n ...Notifier) Notifier {
	out := make(multi, 0, len(n))
	for _, v := range n {
		if v != nil {
			out = append(out, v)
		}
	}

	return out
}

func (m multi) Notify(n Notification) {
	metrics.IncNotification(string(n.Level))

	for _, v := range m {
		v.Notify(n)
	}
}

// Func is an adapter to use ordinary function as notifier.
type Func func(n Notification)

// Notify ...
func (f Func) Notify(n Notification) {
	f(n)
}
