package notification

import (
	"context"
	c "cuentas/internal/core/domain/common"
)

// Sender delivers a rendered HTML email. A nil error means the message was
// accepted for delivery.
type Sender interface {
	Send(ctx context.Context, to c.Email, subject string, htmlBody string) error
}
