package account

import (
	"errors"
)

var (
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrAccountDoesNotExist = errors.New("account does not exist")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrNothingToSend       = errors.New("email template rendered empty")
	ErrNotificationNotSent = errors.New("notification could not be sent")
)
