package service

import (
	"context"
)

// PushMessage is one notification fanned out to a set of device tokens.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// PushReport summarises a multicast. InvalidTokens lists tokens the provider
// reported as unregistered or malformed.
type PushReport struct {
	Sent          int
	Failed        int
	InvalidTokens []string
}

// NotificationService delivers pushes to customer devices.
type NotificationService interface {
	// Multicast sends msg to every token. On error the report covers the
	// batches sent before the failure.
	Multicast(ctx context.Context, tokens []string, msg *PushMessage) (*PushReport, error)
}
