package notification

import (
	"context"
	c "cuentas/internal/core/domain/common"
	"fmt"
	"sync"
)

type SentEmail struct {
	To       c.Email
	Subject  string
	HTMLBody string
}

type FakeSender struct {
	Sent        []SentEmail
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeSender() *FakeSender {
	return &FakeSender{}
}

func (s *FakeSender) Send(ctx context.Context, to c.Email, subject string, htmlBody string) error {
	if s.ReturnError {
		return fmt.Errorf("could not send email to %s", to)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, SentEmail{To: to, Subject: subject, HTMLBody: htmlBody})
	return nil
}

func (s *FakeSender) SentCount() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.Sent)
}

func (s *FakeSender) LastSent() SentEmail {
	s.lock.Lock()
	defer s.lock.Unlock()
	l := len(s.Sent)
	if l == 0 {
		panic("Sent count is 0.")
	}
	return s.Sent[l-1]
}
