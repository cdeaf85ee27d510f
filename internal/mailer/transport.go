package mailer

import "context"

// Message is one outbound email ready to hand to a provider
type Message struct {
	To       string
	From     string
	Subject  string
	HTMLBody string
	TextBody string
}

// Transport delivers a message through a provider and returns the provider's
// message ID when it assigns one
type Transport interface {
	Send(ctx context.Context, msg Message) (providerMessageID string, err error)
}
