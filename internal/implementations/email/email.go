package email

import (
	"context"

	c "cuentas/internal/core/domain/common"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

const charsetUTF8 = "UTF-8"

type SesSender struct {
	ses *ses.Client
	// This address must be verified with Amazon SES.
	sender string
}

func NewSesSender(awsConfig aws.Config, sender string) *SesSender {
	return &SesSender{
		ses:    ses.NewFromConfig(awsConfig),
		sender: sender,
	}
}

func (s *SesSender) Send(ctx context.Context, to c.Email, subject string, htmlBody string) error {
	_, err := s.ses.SendEmail(
		ctx,
		&ses.SendEmailInput{
			Source: &s.sender,
			Destination: &types.Destination{
				ToAddresses: []string{string(to)},
			},
			Message: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String(charsetUTF8),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(htmlBody),
						Charset: aws.String(charsetUTF8),
					},
				},
			},
		},
	)
	return err
}
