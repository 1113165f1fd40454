package email

import (
	"context"
	"fmt"
	"time"

	"accounts/internal/core/domain/user"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

const charset = "UTF-8"

type ResetLinkSender struct {
	ses *ses.Client
	// This address must be verified with Amazon SES.
	sender        string
	validDuration time.Duration
}

func NewResetLinkSender(
	awsConfig aws.Config,
	sender string,
	validDuration time.Duration,
) *ResetLinkSender {
	return &ResetLinkSender{
		ses:           ses.NewFromConfig(awsConfig),
		sender:        sender,
		validDuration: validDuration,
	}
}

func (s *ResetLinkSender) SendResetLink(ctx context.Context, to user.Email, link user.ResetLink) error {
	subject := "Password reset"
	body := fmt.Sprintf(
		`<p>Hello,</p><p>Click the link below to reset your password:</p>`+
			`<a href="%s">%s</a><p>This link expires in %d minutes.</p>`,
		link,
		link,
		int(s.validDuration.Minutes()),
	)

	recipient := string(to)
	_, err := s.ses.SendEmail(
		ctx,
		&ses.SendEmailInput{
			Source: &s.sender,
			Destination: &types.Destination{
				CcAddresses: []string{},
				ToAddresses: []string{recipient},
			},
			Message: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String(charset),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(body),
						Charset: aws.String(charset),
					},
				},
			},
		},
	)
	return err
}
