package notification

import (
	"context"

	"pizzeria/config"
	"pizzeria/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// maxMulticastTokens is the FCM limit per multicast request.
const maxMulticastTokens = 500

type firebaseService struct {
	client *messaging.Client
}

// NewFirebaseService creates a Firebase notification service from the firebase config section.
// Without a credentials path the application default credentials are used.
func NewFirebaseService(ctx context.Context, cfg *config.Config) (service.NotificationService, error) {
	var fbConfig *firebase.Config
	var opts []option.ClientOption
	if cfg.Firebase != nil {
		if cfg.Firebase.ProjectID != "" {
			fbConfig = &firebase.Config{ProjectID: cfg.Firebase.ProjectID}
		}
		if cfg.Firebase.CredentialsPath != "" {
			opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
		}
	}

	app, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{
		client: client,
	}, nil
}

// Multicast sends msg in FCM-sized chunks and collects tokens FCM rejected.
func (s *firebaseService) Multicast(ctx context.Context, tokens []string, msg *service.PushMessage) (*service.PushReport, error) {
	report := &service.PushReport{}
	notification := &messaging.Notification{Title: msg.Title, Body: msg.Body}

	for _, chunk := range chunkTokens(tokens, maxMulticastTokens) {
		resp, err := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
			Tokens:       chunk,
			Notification: notification,
			Data:         msg.Data,
			Android:      &messaging.AndroidConfig{Priority: "high"},
		})
		if err != nil {
			return report, errors.Wrap(err, "failed to send multicast notification")
		}

		report.Sent += resp.SuccessCount
		report.Failed += resp.FailureCount
		report.InvalidTokens = append(report.InvalidTokens, rejectedTokens(chunk, resp.Responses)...)
	}

	return report, nil
}

// rejectedTokens pairs per-token responses with chunk and keeps the tokens
// that will never succeed.
func rejectedTokens(chunk []string, responses []*messaging.SendResponse) []string {
	var rejected []string
	for i, r := range responses {
		if r.Error == nil || i >= len(chunk) {
			continue
		}
		if messaging.IsInvalidArgument(r.Error) || messaging.IsUnregistered(r.Error) {
			rejected = append(rejected, chunk[i])
		}
	}

	return rejected
}

func chunkTokens(tokens []string, size int) [][]string {
	if len(tokens) == 0 {
		return nil
	}

	chunks := make([][]string, 0, (len(tokens)+size-1)/size)
	for start := 0; start < len(tokens); start += size {
		end := min(start+size, len(tokens))
		chunks = append(chunks, tokens[start:end])
	}

	return chunks
}
