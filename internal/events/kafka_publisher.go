package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SscSPs/stock_trading_app/internal/core/domain"
	portsclients "github.com/SscSPs/stock_trading_app/internal/core/ports/clients"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

const (
	StockCreatedEventType = "stock.created"
	DefaultStockTopic     = "stocks"
)

// MessageWriter is the subset of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// StockCreatedEvent is the payload written for every newly created stock.
type StockCreatedEvent struct {
	Type       string          `json:"type"`
	StockID    string          `json:"stockId"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Currency   string          `json:"currency"`
	OccurredAt time.Time       `json:"occurredAt"`
}

var _ portsclients.StockEventPublisher = (*KafkaPublisher)(nil)

type KafkaPublisher struct {
	writer MessageWriter
	now    func() time.Time
}

// NewKafkaPublisher builds a synchronous writer so a failed write is reported to the caller.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	if topic == "" {
		topic = DefaultStockTopic
	}
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		RequiredAcks:           kafka.RequireOne,
		MaxAttempts:            3,
		WriteBackoffMin:        50 * time.Millisecond,
		WriteBackoffMax:        250 * time.Millisecond,
		WriteTimeout:           2 * time.Second,
		AllowAutoTopicCreation: true,
	}
	return NewKafkaPublisherWithWriter(writer)
}

func NewKafkaPublisherWithWriter(writer MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: writer, now: time.Now}
}

// PublishStockCreated keys the message by stock id so events for a stock stay ordered.
func (p *KafkaPublisher) PublishStockCreated(ctx context.Context, stock domain.Stock) error {
	payload, err := json.Marshal(StockCreatedEvent{
		Type:       StockCreatedEventType,
		StockID:    stock.StockID,
		Name:       stock.Name,
		Price:      stock.Price,
		Currency:   stock.Currency,
		OccurredAt: p.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to encode %s event: %w", StockCreatedEventType, err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(stock.StockID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(StockCreatedEventType)},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to write %s event for stock %s: %w", StockCreatedEventType, stock.StockID, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher discards every event. Used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishStockCreated(context.Context, domain.Stock) error { return nil }
func (NoopPublisher) Close() error                                          { return nil }
