package templatefetcher

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html/charset"
)

// HTTP fetches email templates with a plain GET request. Substitution tokens
// are replaced inside the URL itself, so the endpoint receives the
// per-request values as part of its path or query.
type HTTP struct {
	client *http.Client
}

func NewHTTP(timeout time.Duration) *HTTP {
	return &HTTP{client: &http.Client{Timeout: timeout}}
}

func (f *HTTP) FetchAndRender(
	ctx context.Context,
	templateURL string,
	substitutions map[string]string,
) (string, error) {
	for token, value := range substitutions {
		templateURL = strings.ReplaceAll(templateURL, token, value)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, templateURL, nil)
	if err != nil {
		return "", err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	// A non-success response means there is nothing to send, not a failure.
	if resp.StatusCode != http.StatusOK {
		return "", nil
	}

	reader, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", err
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
