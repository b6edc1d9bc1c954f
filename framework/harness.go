package framework

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

const maxLoggedBodyLength = 2000

// TestHarness holds the state shared by every test in a run: the base URLs of the services
// under test and an HTTP client whose cookie jar carries the authenticated session from one
// request to the next.
//
// The client has no overall timeout; callers set one per request through the request context.
type TestHarness struct {
	backendBaseURL  string
	frontendBaseURL string
	client          *http.Client
	logger          Logger
}

func NewTestHarness(
	backendBaseURL string,
	frontendBaseURL string,
	debugLogger Logger,
) (*TestHarness, error) {
	if debugLogger == nil {
		debugLogger = NullLogger()
	}
	if backendBaseURL == "" {
		return nil, fmt.Errorf("backend URL is required")
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &TestHarness{
		backendBaseURL:  strings.TrimSuffix(backendBaseURL, "/"),
		frontendBaseURL: strings.TrimSuffix(frontendBaseURL, "/"),
		client:          &http.Client{Jar: jar},
		logger:          debugLogger,
	}, nil
}

func (h *TestHarness) BackendURL(path string) string {
	return h.backendBaseURL + path
}

func (h *TestHarness) FrontendURL(path string) string {
	return h.frontendBaseURL + path
}

func (h *TestHarness) HTTPClient() *http.Client {
	return h.client
}

func (h *TestHarness) Logger() Logger {
	return h.logger
}

// QueryStatus makes a single GET request to the URL and returns the response status. It does
// not retry; a connection error or timeout is returned as an error.
func (h *TestHarness) QueryStatus(url string, timeout time.Duration, logger Logger) (int, error) {
	if logger == nil {
		logger = h.logger
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return 0, err
	}
	logger.Printf("Querying status of %s", url)
	resp, err := h.client.Do(req)
	if err != nil {
		logger.Printf("Status query failed: %s", err)
		return 0, err
	}
	_, _ = io.Copy(ioutil.Discard, resp.Body)
	resp.Body.Close()
	logger.Printf("Status query returned %d", resp.StatusCode)
	return resp.StatusCode, nil
}

// BodyExcerpt shortens a response body for debug output.
func BodyExcerpt(body []byte) string {
	if len(body) > maxLoggedBodyLength {
		return string(body[:maxLoggedBodyLength]) + "...(truncated)"
	}
	return string(body)
}
