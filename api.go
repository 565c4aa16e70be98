package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"
)

const (
	sessionCookieName = "session"
	maxResponseSize   = 10 * 1024 * 1024 // 10MB limit
)

var (
	// errHTMLResponse indicates the site answered with a web page instead of
	// puzzle input, usually a login page for an expired session.
	errHTMLResponse     = errors.New("received an HTML page instead of puzzle input (session cookie expired?)")
	errResponseTooLarge = errors.New("response exceeds 10MB limit")
)

// inputClient fetches puzzle input from the puzzle site.
type inputClient struct {
	baseURL       string
	baseURLParsed *url.URL
	userAgent     string
	jar           http.CookieJar
	http          *http.Client
}

// newInputClient creates a client whose cookie jar holds the session cookie
// for the configured site only.
func newInputClient(cfg appConfig) (*inputClient, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("base_url is required")
	}
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base_url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base_url: %q", cfg.BaseURL)
	}
	u.Path = strings.TrimRight(u.Path, "/")

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	jar.SetCookies(u, []*http.Cookie{{
		Name:  sessionCookieName,
		Value: cfg.SessionCookie,
		Path:  "/",
	}})

	c := &inputClient{
		baseURL:       u.String(),
		baseURLParsed: u,
		userAgent:     cfg.UserAgent,
		jar:           jar,
		http: &http.Client{
			Timeout: 30 * time.Second,
			Jar:     jar,
		},
	}
	if c.userAgent == "" {
		c.userAgent = defaultUA
	}
	return c, nil
}

// apiError represents a non-2xx response from the puzzle site.
type apiError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *apiError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("http %d", e.StatusCode)
}

// inputURL returns the input URL for the given date.
func (c *inputClient) inputURL(d puzzleDate) string {
	return c.baseURL + d.urlPath()
}

// fetchInput downloads the raw puzzle input for the given date.
func (c *inputClient) fetchInput(ctx context.Context, d puzzleDate) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.inputURL(d), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize+1))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if len(b) > maxResponseSize {
		return nil, errResponseTooLarge
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &apiError{StatusCode: resp.StatusCode, Message: errorMessage(b), Body: b}
	}
	if isHTML(resp.Header.Get("Content-Type")) {
		return nil, errHTMLResponse
	}
	return b, nil
}

// errorMessage extracts a short message from a plain-text error body.
func errorMessage(body []byte) string {
	msg := strings.TrimSpace(string(body))
	if i := strings.IndexByte(msg, '\n'); i >= 0 {
		msg = strings.TrimSpace(msg[:i])
	}
	const maxLen = 200
	if len(msg) > maxLen {
		msg = msg[:maxLen] + "..."
	}
	return msg
}

func isHTML(contentType string) bool {
	if contentType == "" {
		return false
	}
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mt == "text/html" || mt == "application/xhtml+xml"
}

// isAuthError reports whether err looks like a rejected session.
func isAuthError(err error) bool {
	if errors.Is(err, errHTMLResponse) {
		return true
	}
	var ae *apiError
	return errors.As(err, &ae) && (ae.StatusCode == 400 || ae.StatusCode == 401 || ae.StatusCode == 403)
}
