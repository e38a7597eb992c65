package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/Jnyanu18/portfolio/internal/api/middleware"
	"github.com/Jnyanu18/portfolio/internal/mailer"
	"github.com/Jnyanu18/portfolio/internal/ratelimit"

	"github.com/gin-gonic/gin"
	"github.com/jordan-wright/email"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTransport struct {
	mu   sync.Mutex
	sent []*email.Email
	err  error
}

func (t *stubTransport) Send(msg *email.Email) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.err != nil {
		return t.err
	}
	t.sent = append(t.sent, msg)
	return nil
}

func (t *stubTransport) sentCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.sent)
}

func newContactRouter(transport mailer.Transport, limiter *ratelimit.Limiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	dispatcher := mailer.NewDispatcher(transport, "me@example.com", "owner@example.com")
	handler := NewContactHandler(dispatcher)

	router.POST("/api/contact",
		middleware.RateLimit(limiter, ratelimit.ScopeContact, middleware.ContactRateLimitMessage),
		handler.Submit,
	)
	return router
}

func postContact(router *gin.Engine, payload map[string]string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "10.0.0.1:1234"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func validPayload() map[string]string {
	return map[string]string{
		"name":    "Al",
		"email":   "a@b.com",
		"subject": "Hello there",
		"message": "This is a test message.",
	}
}

type apiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Errors  []struct {
		Field  string `json:"field"`
		Reason string `json:"reason"`
	} `json:"errors"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) apiResponse {
	t.Helper()
	var resp apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestSubmit_Accepted(t *testing.T) {
	transport := &stubTransport{}
	router := newContactRouter(transport, ratelimit.New())

	w := postContact(router, validPayload())

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.True(t, resp.Success)
	assert.Contains(t, resp.Message, "Message sent successfully")
	assert.Equal(t, 2, transport.sentCount(), "notification and acknowledgment both dispatched")
}

func TestSubmit_ValidationErrors(t *testing.T) {
	transport := &stubTransport{}
	router := newContactRouter(transport, ratelimit.New())

	w := postContact(router, map[string]string{
		"name":    "A",
		"email":   "a@b.com",
		"subject": "Hi",
		"message": "short",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "Invalid input data", resp.Message)
	require.Len(t, resp.Errors, 3)

	fields := make([]string, 0, 3)
	for _, fe := range resp.Errors {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{"name", "subject", "message"}, fields)
	assert.NotContains(t, fields, "email")

	assert.Zero(t, transport.sentCount(), "validation failure writes nothing")
}

func TestSubmit_MalformedJSON(t *testing.T) {
	transport := &stubTransport{}
	router := newContactRouter(transport, ratelimit.New())

	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, decode(t, w).Success)
}

func TestSubmit_RateLimited(t *testing.T) {
	transport := &stubTransport{}
	router := newContactRouter(transport, ratelimit.New())

	for i := 1; i <= 5; i++ {
		w := postContact(router, validPayload())
		assert.Equal(t, http.StatusOK, w.Code, "submission %d within the ceiling", i)
	}

	w := postContact(router, validPayload())
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, middleware.ContactRateLimitMessage, w.Body.String())
	assert.Equal(t, 10, transport.sentCount(), "only the first five submissions dispatched")
}

func TestSubmit_RateLimitPrecedesValidation(t *testing.T) {
	transport := &stubTransport{}
	router := newContactRouter(transport, ratelimit.New())

	for i := 0; i < 5; i++ {
		postContact(router, validPayload())
	}

	// The 6th request is throttled regardless of payload validity.
	w := postContact(router, map[string]string{"name": "A"})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestSubmit_DispatchFailure(t *testing.T) {
	transport := &stubTransport{err: errors.New("relay down")}
	limiter := ratelimit.New()
	router := newContactRouter(transport, limiter)

	w := postContact(router, validPayload())

	require.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decode(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "Failed to send message. Please try again later.", resp.Message)
	assert.NotContains(t, w.Body.String(), "relay down", "transport defect never reaches the caller")
}

func TestSubmit_FailedDispatchStillConsumesQuota(t *testing.T) {
	transport := &stubTransport{err: errors.New("relay down")}
	router := newContactRouter(transport, ratelimit.New())

	for i := 0; i < 5; i++ {
		w := postContact(router, validPayload())
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	}

	w := postContact(router, validPayload())
	assert.Equal(t, http.StatusTooManyRequests, w.Code,
		"attempts count against the window even when dispatch fails")
}

func TestSubmit_NoDeduplication(t *testing.T) {
	transport := &stubTransport{}
	router := newContactRouter(transport, ratelimit.New())

	// Identical payloads each count and each dispatch independently.
	postContact(router, validPayload())
	postContact(router, validPayload())
	assert.Equal(t, 4, transport.sentCount())
}

func TestSubmit_DistinctClientsIndependent(t *testing.T) {
	transport := &stubTransport{}
	router := newContactRouter(transport, ratelimit.New())

	body, _ := json.Marshal(validPayload())
	for i := 0; i < 6; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Real-IP", "10.0.0.1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if i == 5 {
			assert.Equal(t, http.StatusTooManyRequests, w.Code)
		}
	}

	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Real-IP", "10.0.0.2")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code, "a different client identity has its own window")
}

func TestSubmit_EscapedBeforeDispatch(t *testing.T) {
	transport := &stubTransport{}
	router := newContactRouter(transport, ratelimit.New())

	w := postContact(router, map[string]string{
		"name":    "<b>Al</b>",
		"email":   "A@B.com",
		"subject": "Hello <i>there</i>",
		"message": "a <script>alert(1)</script> message",
	})
	require.Equal(t, http.StatusOK, w.Code)

	transport.mu.Lock()
	defer transport.mu.Unlock()
	require.Len(t, transport.sent, 2)
	for _, msg := range transport.sent {
		assert.NotContains(t, string(msg.HTML), "<script>")
	}

	var notification *email.Email
	for _, msg := range transport.sent {
		if msg.Subject != "Thank you for contacting me!" {
			notification = msg
		}
	}
	require.NotNil(t, notification)
	assert.Equal(t, "Portfolio Contact: Hello &lt;i&gt;there&lt;/i&gt;", notification.Subject)
	assert.Equal(t, []string{"a@b.com"}, notification.ReplyTo,
		"owner can reply straight to the normalized sender address")
}

func TestSubmit_ApostropheAddressDeliveredVerbatim(t *testing.T) {
	transport := &stubTransport{}
	router := newContactRouter(transport, ratelimit.New())

	payload := validPayload()
	payload["email"] = "O'Brien@Example.com"
	w := postContact(router, payload)
	require.Equal(t, http.StatusOK, w.Code)

	transport.mu.Lock()
	defer transport.mu.Unlock()
	require.Len(t, transport.sent, 2)
	for _, msg := range transport.sent {
		if msg.Subject == "Thank you for contacting me!" {
			assert.Equal(t, []string{"o'brien@example.com"}, msg.To,
				"addressing uses the lower-cased, unescaped address")
		} else {
			assert.Equal(t, []string{"o'brien@example.com"}, msg.ReplyTo)
		}
	}
}
