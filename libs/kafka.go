package libs

import (
	"context"
	"encoding/json"
	"time"

	"pharmacy-shop/models"

	"github.com/segmentio/kafka-go"
)

// OrderEventProducer emits order.created events for branch and inventory
// consumers. Checkout treats publishing as best effort.
type OrderEventProducer struct {
	writer *kafka.Writer
}

func NewOrderEventProducer(brokers []string, topic string) *OrderEventProducer {
	return &OrderEventProducer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

type orderItemEvent struct {
	ProductID int     `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type orderCreatedEvent struct {
	EventType   string           `json:"event_type"`
	OrderNumber string           `json:"order_number"`
	UserID      int              `json:"user_id"`
	TotalAmount float64          `json:"total_amount"`
	Items       []orderItemEvent `json:"items"`
	OccurredAt  time.Time        `json:"occurred_at"`
}

func (p *OrderEventProducer) PublishOrderCreated(ctx context.Context, order *models.Order) error {
	event := orderCreatedEvent{
		EventType:   "order.created",
		OrderNumber: order.OrderNumber,
		UserID:      order.UserID,
		TotalAmount: order.TotalAmount,
		OccurredAt:  time.Now(),
	}
	for _, item := range order.Items {
		event.Items = append(event.Items, orderItemEvent{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(order.OrderNumber),
		Value: value,
		Time:  event.OccurredAt,
	})
}

func (p *OrderEventProducer) Close() error {
	return p.writer.Close()
}
