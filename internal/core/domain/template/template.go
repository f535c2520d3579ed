package template

import "context"

// Fetcher retrieves an HTML email template over the network. Every
// substitution token is replaced with its value inside the URL before the
// request is issued, so the target URL encodes the per-request values.
//
// A non-success response yields an empty result and a nil error; the caller
// decides how to interpret "nothing to send".
type Fetcher interface {
	FetchAndRender(ctx context.Context, templateURL string, substitutions map[string]string) (string, error)
}
