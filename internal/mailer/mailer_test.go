package mailer

import (
	"errors"
	"sync"
	"testing"

	"github.com/jordan-wright/email"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTransport records sent messages and fails selectively by subject.
type fakeTransport struct {
	mu     sync.Mutex
	sent   []*email.Email
	failOn map[string]error
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{failOn: map[string]error{}}
}

func (t *fakeTransport) Send(msg *email.Email) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err, ok := t.failOn[msg.Subject]; ok {
		return err
	}
	t.sent = append(t.sent, msg)
	return nil
}

func (t *fakeTransport) bySubject(subject string) *email.Email {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, msg := range t.sent {
		if msg.Subject == subject {
			return msg
		}
	}
	return nil
}

func testSubmission() Submission {
	return Submission{
		Name:    "Al",
		Email:   "a@b.com",
		Subject: "Hello there",
		Message: "line one\nline two",
	}
}

func TestSend_DispatchesBothMessages(t *testing.T) {
	transport := newFakeTransport()
	d := NewDispatcher(transport, "me@example.com", "owner@example.com")

	require.NoError(t, d.Send(testSubmission()))
	require.Len(t, transport.sent, 2)

	notification := transport.bySubject("Portfolio Contact: Hello there")
	require.NotNil(t, notification)
	assert.Equal(t, []string{"owner@example.com"}, notification.To)
	assert.Equal(t, "me@example.com", notification.From)
	assert.Contains(t, string(notification.HTML), "Al")
	assert.Contains(t, string(notification.HTML), "a@b.com")
	assert.Contains(t, string(notification.HTML), "line one<br>line two")

	ack := transport.bySubject("Thank you for contacting me!")
	require.NotNil(t, ack)
	assert.Equal(t, []string{"a@b.com"}, ack.To)
	assert.Contains(t, string(ack.HTML), "Hi Al,")
}

func TestSend_ApostropheAddressStaysDeliverable(t *testing.T) {
	transport := newFakeTransport()
	d := NewDispatcher(transport, "me@example.com", "owner@example.com")

	sub := testSubmission()
	sub.Email = "o'brien@example.com"
	require.NoError(t, d.Send(sub))

	ack := transport.bySubject("Thank you for contacting me!")
	require.NotNil(t, ack)
	assert.Equal(t, []string{"o'brien@example.com"}, ack.To,
		"the acknowledgment goes to the real mailbox")

	notification := transport.bySubject("Portfolio Contact: Hello there")
	require.NotNil(t, notification)
	assert.Equal(t, []string{"o'brien@example.com"}, notification.ReplyTo,
		"owner replies reach the real mailbox")
	assert.Contains(t, string(notification.HTML), "o&#39;brien@example.com",
		"the address is escaped where it appears in the body")
}

func TestSend_NotificationFailureFailsWhole(t *testing.T) {
	transport := newFakeTransport()
	transport.failOn["Portfolio Contact: Hello there"] = errors.New("relay refused")
	d := NewDispatcher(transport, "me@example.com", "owner@example.com")

	err := d.Send(testSubmission())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "notification send")
}

func TestSend_AcknowledgmentFailureFailsWhole(t *testing.T) {
	transport := newFakeTransport()
	transport.failOn["Thank you for contacting me!"] = errors.New("mailbox unavailable")
	d := NewDispatcher(transport, "me@example.com", "owner@example.com")

	err := d.Send(testSubmission())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "acknowledgment send")
}

func TestSend_BothFailuresReported(t *testing.T) {
	transport := newFakeTransport()
	transport.failOn["Portfolio Contact: Hello there"] = errors.New("down")
	transport.failOn["Thank you for contacting me!"] = errors.New("down")
	d := NewDispatcher(transport, "me@example.com", "owner@example.com")

	err := d.Send(testSubmission())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "notification send")
	assert.Contains(t, err.Error(), "acknowledgment send")
}
