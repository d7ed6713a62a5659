// Package events streams committed ledger changes to Kafka for downstream
// consumers. Publishing is best effort; the database stays the source of truth.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/GlebRadaev/loyalty/internal/domain"
)

const (
	bufferSize   = 1024
	maxBatch     = 100
	writeTimeout = 5 * time.Second
)

var (
	ErrBufferFull      = errors.New("ledger event buffer is full")
	ErrPublisherClosed = errors.New("ledger event publisher closed")
)

type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher hands events to a background writer so callers never wait
// on the broker.
type KafkaPublisher struct {
	writer Writer
	queue  chan kafka.Message
	done   chan struct{}

	mu     sync.RWMutex
	closed bool
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return newKafkaPublisher(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
		BatchTimeout:           10 * time.Millisecond,
		WriteTimeout:           writeTimeout,
	}, bufferSize)
}

func newKafkaPublisher(writer Writer, buffer int) *KafkaPublisher {
	p := &KafkaPublisher{
		writer: writer,
		queue:  make(chan kafka.Message, buffer),
		done:   make(chan struct{}),
	}
	go p.run()
	return p
}

func (p *KafkaPublisher) run() {
	defer close(p.done)
	for msg := range p.queue {
		batch := []kafka.Message{msg}
	drain:
		for len(batch) < maxBatch {
			select {
			case next, ok := <-p.queue:
				if !ok {
					break drain
				}
				batch = append(batch, next)
			default:
				break drain
			}
		}

		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		err := p.writer.WriteMessages(ctx, batch...)
		cancel()
		if err != nil {
			zap.L().Warn("can't write ledger events", zap.Int("count", len(batch)), zap.Error(err))
		}
	}
}

// Publish keys messages by business so one tenant's events stay ordered.
// It only enqueues; a full buffer drops the event and reports ErrBufferFull.
func (p *KafkaPublisher) Publish(_ context.Context, event domain.LedgerEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}
	msg := kafka.Message{
		Key:   []byte(strconv.Itoa(event.BusinessID)),
		Value: value,
		Time:  event.OccurredAt,
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPublisherClosed
	}
	select {
	case p.queue <- msg:
		return nil
	default:
		return ErrBufferFull
	}
}

// Close flushes queued events and closes the writer.
func (p *KafkaPublisher) Close() error {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.queue)
	}
	p.mu.Unlock()

	<-p.done
	return p.writer.Close()
}

// NopPublisher is used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, event domain.LedgerEvent) error {
	zap.L().Debug("ledger event", zap.String("type", string(event.Type)), zap.String("reference", event.Reference))
	return nil
}

func (NopPublisher) Close() error { return nil }
