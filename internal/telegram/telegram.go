package telegram

import "context"

//go:generate go run go.uber.org/mock/mockgen -source=telegram.go -destination=mocks/mock.go

// Client notifies the operator about finished runs.
type Client interface {
	SendMessageToUser(ctx context.Context, text string) error
}

// Noop is used when no bot token or user is configured.
type Noop struct{}

func (Noop) SendMessageToUser(context.Context, string) error { return nil }
