package template

import (
	"context"
	"fmt"
	"sync"
)

type FetchRequest struct {
	TemplateURL   string
	Substitutions map[string]string
}

type FakeFetcher struct {
	HTML        string
	ReturnError bool
	Requests    []FetchRequest
	lock        sync.Mutex
}

func NewFakeFetcher(html string) *FakeFetcher {
	return &FakeFetcher{HTML: html}
}

func (f *FakeFetcher) FetchAndRender(
	ctx context.Context,
	templateURL string,
	substitutions map[string]string,
) (string, error) {
	if f.ReturnError {
		return "", fmt.Errorf("could not fetch template %s", templateURL)
	}
	f.lock.Lock()
	defer f.lock.Unlock()
	f.Requests = append(f.Requests, FetchRequest{TemplateURL: templateURL, Substitutions: substitutions})
	return f.HTML, nil
}

func (f *FakeFetcher) RequestCount() int {
	f.lock.Lock()
	defer f.lock.Unlock()
	return len(f.Requests)
}
