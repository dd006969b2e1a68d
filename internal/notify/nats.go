package notify

import (
	"encoding/json"

	"github.com/nats-io/nats.go"
)

// Publisher is a part of *nats.Conn used by notifier.
type Publisher interface {
	Publish(subj string, data []byte) error
}

var _ Publisher = (*nats.Conn)(nil)

type natsNotifier struct {
	p       Publisher
	subject string
}

// NewNATS returns notifier publishing notifications as JSON to subject.
func NewNATS(p Publisher, subject string) Notifier {
	return natsNotifier{p: p, subject: subject}
}

func (n natsNotifier) Notify(v Notification) {
	data, err := json.Marshal(v)
	if err != nil {
		log.WithError(err).Error("failed to marshal notification")
		return
	}

	if err := n.p.Publish(n.subject, data); err != nil {
		log.WithError(err).WithField("subject", n.subject).Error("failed to publish notification")
	}
}
