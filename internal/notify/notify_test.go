package notify

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type publisher struct {
	subject string
	data    []byte
	err     error
}

func (p *publisher) Publish(subj string, data []byte) error {
	p.subject, p.data = subj, data
	return p.err
}

func TestNATS(t *testing.T) {
	p := &publisher{}
	n := Notification{Level: ErrorLevel, Message: "Failed to follow", Time: time.Unix(10, 0).UTC()}

	NewNATS(p, "tippni.notifications").Notify(n)

	require.Equal(t, "tippni.notifications", p.subject)

	var got Notification
	require.NoError(t, json.Unmarshal(p.data, &got))
	require.Equal(t, n, got)

	p.err = errors.New("closed")
	require.NotPanics(t, func() { NewNATS(p, "s").Notify(n) })
}

func TestMulti(t *testing.T) {
	var got []Notification
	collect := Func(func(n Notification) { got = append(got, n) })

	m := Multi(collect, nil, NewLogNotifier(), collect)
	m.Notify(Error("failed to %s", "like"))

	require.Len(t, got, 2)
	require.Equal(t, ErrorLevel, got[0].Level)
	require.Equal(t, "failed to like", got[0].Message)
}
