// Package notify delivers workflow notifications to an AMQP topic exchange or, when no
// broker is configured, to the structured log.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/cheque_management_app/internal/core/domain"
	"github.com/SscSPs/cheque_management_app/internal/core/ports"
	"github.com/SscSPs/cheque_management_app/internal/middleware"
	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// LogNotifier writes notifications to the request logger.
type LogNotifier struct{}

var _ ports.Notifier = LogNotifier{}

func (LogNotifier) Notify(ctx context.Context, n domain.Notification) {
	middleware.GetLoggerFromCtx(ctx).Info("Notification",
		slog.String("type", n.Type),
		slog.String("entity_type", n.EntityType),
		slog.String("entity_id", n.EntityID),
		slog.String("title", n.Title),
		slog.String("message", n.Message))
}

// Channel is the subset of *amqp.Channel the publisher uses.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPNotifier publishes JSON notifications with routing key "cms.<type>".
type AMQPNotifier struct {
	mu       sync.Mutex // amqp channels are not safe for concurrent publishing
	ch       Channel
	exchange string
	closeFn  func() error
}

var _ ports.Notifier = (*AMQPNotifier)(nil)

// NewAMQPNotifier declares the exchange on ch and returns a publisher.
func NewAMQPNotifier(ch Channel, exchange string) (*AMQPNotifier, error) {
	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}
	return &AMQPNotifier{ch: ch, exchange: exchange, closeFn: ch.Close}, nil
}

// DialAMQP connects to url and returns a notifier owning the connection.
func DialAMQP(url, exchange string) (*AMQPNotifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to AMQP broker: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open AMQP channel: %w", err)
	}
	n, err := NewAMQPNotifier(ch, exchange)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	n.closeFn = func() error {
		_ = ch.Close()
		return conn.Close()
	}
	return n, nil
}

// RoutingKey returns the routing key a notification type is published under.
func RoutingKey(notificationType string) string {
	return "cms." + strings.ToLower(notificationType)
}

// Notify publishes n. Failures are logged and swallowed.
func (a *AMQPNotifier) Notify(ctx context.Context, n domain.Notification) {
	logger := middleware.GetLoggerFromCtx(ctx)
	body, err := json.Marshal(n)
	if err != nil {
		logger.Error("Failed to encode notification", slog.String("type", n.Type), slog.String("error", err.Error()))
		return
	}

	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	a.mu.Lock()
	err = a.ch.PublishWithContext(pubCtx, a.exchange, RoutingKey(n.Type), false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    n.CreatedAt,
		Type:         n.Type,
		Body:         body,
	})
	a.mu.Unlock()
	if err != nil {
		logger.Error("Failed to publish notification",
			slog.String("type", n.Type),
			slog.String("entity_id", n.EntityID),
			slog.String("error", err.Error()))
		return
	}
	logger.Debug("Notification published", slog.String("type", n.Type), slog.String("entity_id", n.EntityID))
}

func (a *AMQPNotifier) Close() error {
	if a.closeFn == nil {
		return nil
	}
	return a.closeFn()
}
