package events

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-kafka/v2/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// Publisher emits domain events. Publishing is fire-and-forget from the
// caller's point of view: services log publish failures and move on.
type Publisher interface {
	Publish(topic string, payload any) error
	Close() error
}

type watermillPublisher struct {
	pub message.Publisher
}

// NewGoChannelPublisher returns the in-process publisher used when no broker
// is configured.
func NewGoChannelPublisher(logger *slog.Logger) Publisher {
	pub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewSlogLogger(logger))
	return &watermillPublisher{pub: pub}
}

// NewKafkaPublisher returns a publisher backed by the given Kafka brokers.
func NewKafkaPublisher(brokers []string, logger *slog.Logger) (Publisher, error) {
	pub, err := kafka.NewPublisher(kafka.PublisherConfig{
		Brokers:   brokers,
		Marshaler: kafka.DefaultMarshaler{},
	}, watermill.NewSlogLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("create kafka publisher: %w", err)
	}
	return &watermillPublisher{pub: pub}, nil
}

func (p *watermillPublisher) Publish(topic string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event payload: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), data)
	return p.pub.Publish(topic, msg)
}

func (p *watermillPublisher) Close() error {
	return p.pub.Close()
}

// MockPublisher records published events for tests.
type MockPublisher struct {
	mu     sync.Mutex
	events []MockEvent
	fail   error
}

type MockEvent struct {
	Topic   string
	Payload any
}

func NewMockPublisher() *MockPublisher {
	return &MockPublisher{}
}

// FailWith makes every subsequent Publish return err.
func (m *MockPublisher) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fail = err
}

func (m *MockPublisher) Publish(topic string, payload any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	m.events = append(m.events, MockEvent{Topic: topic, Payload: payload})
	return nil
}

func (m *MockPublisher) Close() error { return nil }

func (m *MockPublisher) PublishedEvents() []MockEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]MockEvent, len(m.events))
	copy(out, m.events)
	return out
}
