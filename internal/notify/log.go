// Package notify provides notification sink implementations for the cart's
// fire-and-forget toast messages.
package notify

import (
	"context"

	"github.com/velocita/storefront/internal/cart/domain"
	"github.com/velocita/storefront/pkg/logger"
)

// LogNotifier writes notifications to the structured log. It is the default
// sink when no event bus is configured.
type LogNotifier struct{}

// NewLogNotifier creates a log-backed notifier
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// Notify logs the notification
func (n *LogNotifier) Notify(ctx context.Context, notification domain.Notification) {
	logger.Info(ctx).
		Str("title", notification.Title).
		Str("description", notification.Description).
		Msg("Cart notification")
}
