package notify

import (
	"context"

	"github.com/velocita/storefront/internal/cart/domain"
	"github.com/velocita/storefront/kafka"
	"github.com/velocita/storefront/pkg/logger"
)

// KafkaNotifier mirrors cart notifications onto the event bus. Delivery is
// fire-and-forget: publish failures are logged and dropped.
type KafkaNotifier struct {
	publisher *kafka.Publisher
}

// NewKafkaNotifier creates a Kafka-backed notifier
func NewKafkaNotifier(publisher *kafka.Publisher) *KafkaNotifier {
	return &KafkaNotifier{publisher: publisher}
}

// Notify publishes the notification to the cart notifications topic
func (n *KafkaNotifier) Notify(ctx context.Context, notification domain.Notification) {
	event := kafka.CartNotificationEvent{
		Title:       notification.Title,
		Description: notification.Description,
	}
	if err := n.publisher.PublishCartNotification(ctx, event); err != nil {
		logger.Warn(ctx).Err(err).Msg("Dropping cart notification")
	}
}
