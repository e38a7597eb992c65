package form

import (
	"errors"
	"sync"
)

// Phase is the submission status of the form. Modeling it as one value
// (rather than independent booleans) makes states like "pending and
// failed at once" unrepresentable.
type Phase int

const (
	Idle Phase = iota
	Pending
	Succeeded
	Failed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Status pairs the phase with the message attached to terminal phases.
type Status struct {
	Phase   Phase
	Message string
}

// Fields holds the four editable submission fields.
type Fields struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ErrSubmissionPending is returned when Submit is called while a
// submission is already in flight.
var ErrSubmissionPending = errors.New("a submission is already in flight")

// Controller owns the form field state and drives submission. Blocking
// re-submission while Pending is the only concurrency control: there is
// never more than one in-flight submission per form instance.
type Controller struct {
	mu     sync.Mutex
	client *Client
	fields Fields
	status Status
}

func NewController(client *Client) *Controller {
	return &Controller{client: client}
}

// Editing a field updates only that field; validation is the server's
// responsibility.

func (c *Controller) SetName(v string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fields.Name = v
}

func (c *Controller) SetEmail(v string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fields.Email = v
}

func (c *Controller) SetSubject(v string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fields.Subject = v
}

func (c *Controller) SetMessage(v string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fields.Message = v
}

func (c *Controller) Fields() Fields {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fields
}

func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Submit sends the current fields to the contact endpoint and blocks
// until the result is known. On success the fields are cleared; on
// failure they are retained so the user can correct and resubmit. The
// returned status carries the message the endpoint produced.
func (c *Controller) Submit() (Status, error) {
	c.mu.Lock()
	if c.status.Phase == Pending {
		status := c.status
		c.mu.Unlock()
		return status, ErrSubmissionPending
	}
	c.status = Status{Phase: Pending}
	fields := c.fields
	c.mu.Unlock()

	result := c.client.SubmitContact(fields)

	c.mu.Lock()
	defer c.mu.Unlock()
	if result.OK {
		c.fields = Fields{}
		c.status = Status{Phase: Succeeded, Message: result.Message}
	} else {
		c.status = Status{Phase: Failed, Message: result.Message}
	}
	return c.status, nil
}
