package mailer

import (
	"context"
	"fmt"

	appconfig "podcastflow-backend/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// SESTransport delivers mail through Amazon SES
type SESTransport struct {
	client *sesv2.Client
}

// NewSESTransport creates an SES transport. Credentials come from the
// standard AWS environment and instance metadata chain.
func NewSESTransport(ctx context.Context, cfg *appconfig.Config) (*SESTransport, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.SESRegion))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &SESTransport{client: sesv2.NewFromConfig(awsCfg)}, nil
}

// Send delivers one message and returns the SES message ID
func (t *SESTransport) Send(ctx context.Context, msg Message) (string, error) {
	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(msg.From),
		Destination: &types.Destination{
			ToAddresses: []string{msg.To},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(msg.Subject)},
				Body: &types.Body{
					Html: &types.Content{Data: aws.String(msg.HTMLBody)},
					Text: &types.Content{Data: aws.String(msg.TextBody)},
				},
			},
		},
	}

	out, err := t.client.SendEmail(ctx, input)
	if err != nil {
		return "", fmt.Errorf("ses send: %w", err)
	}
	return aws.ToString(out.MessageId), nil
}
