package form

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillValid(c *Controller) {
	c.SetName("Al")
	c.SetEmail("a@b.com")
	c.SetSubject("Hello there")
	c.SetMessage("This is a test message.")
}

func TestSubmit_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/contact", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"message":"Message sent successfully! I'll get back to you soon."}`))
	}))
	defer srv.Close()

	c := NewController(NewClient(srv.URL))
	fillValid(c)

	status, err := c.Submit()
	require.NoError(t, err)
	assert.Equal(t, Succeeded, status.Phase)
	assert.Contains(t, status.Message, "Message sent successfully")

	// Fields are cleared so the form resets after a successful send.
	assert.Equal(t, Fields{}, c.Fields())
}

func TestSubmit_ValidationFailureRetainsFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success":false,"message":"Invalid input data","errors":[{"field":"name","reason":"must be at least 2 characters"}]}`))
	}))
	defer srv.Close()

	c := NewController(NewClient(srv.URL))
	c.SetName("A")
	c.SetEmail("a@b.com")
	c.SetSubject("Hello there")
	c.SetMessage("This is a test message.")

	status, err := c.Submit()
	require.NoError(t, err)
	assert.Equal(t, Failed, status.Phase)
	assert.Equal(t, "Invalid input data", status.Message)

	// Fields stay put so the user can correct and resubmit.
	assert.Equal(t, "A", c.Fields().Name)
}

func TestSubmit_RateLimitPlainTextBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte("Too many contact form submissions, please try again later."))
	}))
	defer srv.Close()

	c := NewController(NewClient(srv.URL))
	fillValid(c)

	status, err := c.Submit()
	require.NoError(t, err)
	assert.Equal(t, Failed, status.Phase)
	assert.Equal(t, "Too many contact form submissions, please try again later.", status.Message)
}

func TestSubmit_ServerUnreachable(t *testing.T) {
	c := NewController(NewClient("http://127.0.0.1:1"))
	fillValid(c)

	status, err := c.Submit()
	require.NoError(t, err)
	assert.Equal(t, Failed, status.Phase)
	assert.NotEmpty(t, status.Message)
}

func TestSubmit_BlockedWhilePending(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"message":"ok"}`))
	}))
	defer srv.Close()

	c := NewController(NewClient(srv.URL))
	fillValid(c)

	done := make(chan Status, 1)
	go func() {
		status, _ := c.Submit()
		done <- status
	}()

	// Wait for the first submission to reach Pending.
	require.Eventually(t, func() bool {
		return c.Status().Phase == Pending
	}, time.Second, 5*time.Millisecond)

	_, err := c.Submit()
	assert.ErrorIs(t, err, ErrSubmissionPending)

	close(release)
	status := <-done
	assert.Equal(t, Succeeded, status.Phase)
}

func TestSubmit_RetryAfterFailure(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.Header().Set("Content-Type", "application/json")
		if attempts == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"success":false,"message":"Failed to send message. Please try again later."}`))
			return
		}
		w.Write([]byte(`{"success":true,"message":"sent"}`))
	}))
	defer srv.Close()

	c := NewController(NewClient(srv.URL))
	fillValid(c)

	status, err := c.Submit()
	require.NoError(t, err)
	assert.Equal(t, Failed, status.Phase)

	// Failed is not terminal for the controller; a manual retry runs.
	status, err = c.Submit()
	require.NoError(t, err)
	assert.Equal(t, Succeeded, status.Phase)
	assert.Equal(t, 2, attempts)
}
