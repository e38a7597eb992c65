package form

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Jnyanu18/portfolio/internal/api/dto/common"
	"github.com/Jnyanu18/portfolio/internal/api/dto/v1/contact"
	"github.com/Jnyanu18/portfolio/internal/api/dto/v1/portfolio"
)

// requestTimeout bounds every call; there is no cancellation once a
// submission is in flight.
const requestTimeout = 10 * time.Second

// Client is a thin HTTP client for the portfolio API.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// SubmitResult is the outcome of one contact submission as seen by the
// client: accepted or not, plus whatever message the endpoint returned.
type SubmitResult struct {
	OK      bool
	Message string
	// FieldErrors carries per-field issues on a validation rejection.
	FieldErrors []FieldIssue
}

// FieldIssue mirrors the endpoint's per-field error entries.
type FieldIssue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// SubmitContact posts one submission to the contact endpoint and
// decodes the structured result. Transport failures are reported as a
// failed result rather than an error: the form surfaces a message
// either way.
func (c *Client) SubmitContact(fields Fields) SubmitResult {
	payload, err := json.Marshal(contact.ContactRequest{
		Name:    fields.Name,
		Email:   fields.Email,
		Subject: fields.Subject,
		Message: fields.Message,
	})
	if err != nil {
		return SubmitResult{Message: "Failed to send message. Please try again."}
	}

	resp, err := c.http.Post(c.baseURL+"/api/contact", "application/json", bytes.NewReader(payload))
	if err != nil {
		return SubmitResult{Message: "Failed to reach the server. Please try again later."}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return SubmitResult{Message: "Failed to read the server response."}
	}

	// Throttling responses are plain text, not JSON.
	var decoded struct {
		Success bool         `json:"success"`
		Message string       `json:"message"`
		Errors  []FieldIssue `json:"errors"`
	}
	if err := json.Unmarshal(body, &decoded); err != nil {
		message := strings.TrimSpace(string(body))
		if message == "" {
			message = fmt.Sprintf("Unexpected server response (status %d).", resp.StatusCode)
		}
		return SubmitResult{Message: message}
	}

	return SubmitResult{
		OK:          decoded.Success,
		Message:     decoded.Message,
		FieldErrors: decoded.Errors,
	}
}

// Health fetches the health endpoint.
func (c *Client) Health() (common.HealthResponse, error) {
	var health common.HealthResponse
	if err := c.getJSON("/api/health", &health); err != nil {
		return common.HealthResponse{}, err
	}
	return health, nil
}

// Portfolio fetches the full portfolio document.
func (c *Client) Portfolio() (*portfolio.Document, error) {
	doc := &portfolio.Document{}
	if err := c.getJSON("/api/portfolio", doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (c *Client) getJSON(path string, out interface{}) error {
	resp, err := c.http.Get(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
