package app

import (
	"context"
	"log/slog"

	"github.com/dwikikusuma/bakery-shop/internal/order/domain"
	"github.com/dwikikusuma/bakery-shop/pkg/logger"
)

// LogNotifier records ready notifications in the log; message delivery is
// left to whatever reads it.
type LogNotifier struct {
	log *slog.Logger
}

func NewLogNotifier(log *slog.Logger) *LogNotifier {
	return &LogNotifier{log: logger.Component(log, "order.notifier")}
}

func (n *LogNotifier) OrderReady(_ context.Context, o domain.Order) error {
	n.log.Info("order ready",
		slog.String("order_id", o.ID),
		slog.String("user_id", o.UserID),
		slog.String("customer", o.Contact.Name),
		slog.String("phone", o.Contact.Phone),
		slog.String("delivery_method", string(o.DeliveryMethod)),
	)
	return nil
}
