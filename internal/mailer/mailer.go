package mailer

import (
	"errors"
	"fmt"
	"html/template"
	"strings"
	"sync"

	"github.com/jordan-wright/email"
)

// Submission carries the validated fields of one contact form
// submission. Name, Subject and Message must already be HTML-escaped;
// Email is the real, deliverable address and is escaped here only
// where it is embedded in a body.
type Submission struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Dispatcher builds and sends the two outbound messages produced by one
// accepted submission: a notification to the site owner and an
// acknowledgment to the submitter.
type Dispatcher struct {
	transport Transport
	from      string
	owner     string
}

// NewDispatcher creates a dispatcher sending through the given transport.
// from is the sender address, owner receives the notifications.
func NewDispatcher(transport Transport, from, owner string) *Dispatcher {
	return &Dispatcher{
		transport: transport,
		from:      from,
		owner:     owner,
	}
}

// Send dispatches both messages concurrently and waits for both to
// complete. If either send fails the whole operation fails; no
// partial-success state is reported.
func (d *Dispatcher) Send(sub Submission) error {
	notification := d.notification(sub)
	acknowledgment := d.acknowledgment(sub)

	var wg sync.WaitGroup
	var notifErr, ackErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		notifErr = d.transport.Send(notification)
	}()
	go func() {
		defer wg.Done()
		ackErr = d.transport.Send(acknowledgment)
	}()
	wg.Wait()

	if notifErr != nil {
		notifErr = fmt.Errorf("notification send: %w", notifErr)
	}
	if ackErr != nil {
		ackErr = fmt.Errorf("acknowledgment send: %w", ackErr)
	}
	return errors.Join(notifErr, ackErr)
}

// notification is the email to the site owner carrying the submission.
func (d *Dispatcher) notification(sub Submission) *email.Email {
	e := email.NewEmail()
	e.From = d.from
	e.To = []string{d.owner}
	e.ReplyTo = []string{sub.Email}
	e.Subject = "Portfolio Contact: " + sub.Subject
	e.HTML = []byte(fmt.Sprintf(`<h2>New Contact Form Submission</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Subject:</strong> %s</p>
<p><strong>Message:</strong></p>
<p>%s</p>
<hr>
<p><small>Sent from your portfolio website</small></p>`,
		sub.Name,
		template.HTMLEscapeString(sub.Email),
		sub.Subject,
		strings.ReplaceAll(sub.Message, "\n", "<br>"),
	))
	return e
}

// acknowledgment is the fixed thank-you reply to the submitter.
func (d *Dispatcher) acknowledgment(sub Submission) *email.Email {
	e := email.NewEmail()
	e.From = d.from
	e.To = []string{sub.Email}
	e.Subject = "Thank you for contacting me!"
	e.HTML = []byte(fmt.Sprintf(`<h2>Thank you for your message!</h2>
<p>Hi %s,</p>
<p>Thank you for reaching out through my portfolio website. I've received your message and will get back to you as soon as possible.</p>
<p>Best regards,<br>Alex Chen</p>`,
		sub.Name,
	))
	return e
}
