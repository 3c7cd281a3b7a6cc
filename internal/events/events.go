// Package events publishes wallet activity to an optional Kafka topic.
package events

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
)

// DefaultTopic receives wallet events when no topic is configured
const DefaultTopic = "arena.wallet.events"

// WalletEvent describes one recorded wallet transaction
type WalletEvent struct {
	TransactionID string `json:"transaction_id"`
	Type          string `json:"type"`
	AmountCents   int64  `json:"amount_cents"`
	Method        string `json:"method"`
	Status        string `json:"status"`
	BalanceCents  int64  `json:"balance_cents"`
	TsUnixMs      int64  `json:"ts_unix_ms"`
}

// Publisher delivers wallet events
type Publisher interface {
	PublishWallet(ctx context.Context, e WalletEvent) error
	Close() error
}

// Kafka writes events as JSON messages keyed by transaction id
type Kafka struct {
	writer *kafka.Writer
}

// NewKafka creates a publisher for a comma separated broker list
func NewKafka(brokers, topic string) *Kafka {
	if topic == "" {
		topic = DefaultTopic
	}
	return &Kafka{writer: &kafka.Writer{
		Addr:                   kafka.TCP(strings.Split(brokers, ",")...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
		BatchTimeout:           50 * time.Millisecond,
	}}
}

func (k *Kafka) PublishWallet(ctx context.Context, e WalletEvent) error {
	if e.TsUnixMs == 0 {
		e.TsUnixMs = time.Now().UnixMilli()
	}
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return k.writer.WriteMessages(ctx, kafka.Message{Key: []byte(e.TransactionID), Value: b})
}

func (k *Kafka) Close() error {
	return k.writer.Close()
}

// Noop drops every event
type Noop struct{}

func (Noop) PublishWallet(context.Context, WalletEvent) error { return nil }
func (Noop) Close() error                                     { return nil }

// Memory keeps published events in memory
type Memory struct {
	mu     sync.Mutex
	events []WalletEvent
	Err    error
}

func (m *Memory) PublishWallet(_ context.Context, e WalletEvent) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	m.events = append(m.events, e)
	m.mu.Unlock()
	return nil
}

func (m *Memory) Close() error { return nil }

// Events returns a copy of what has been published
func (m *Memory) Events() []WalletEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]WalletEvent, len(m.events))
	copy(out, m.events)
	return out
}

var (
	_ Publisher = (*Kafka)(nil)
	_ Publisher = Noop{}
	_ Publisher = (*Memory)(nil)
)
