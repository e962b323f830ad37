package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"desk/config"
	"desk/shared/logger"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl"
	"github.com/segmentio/kafka-go/sasl/plain"
)

type Message struct {
	Key   string
	Value any
}

func (m *Message) ToKafkaMessage() (kafkaGo.Message, error) {
	jsonValue, err := json.Marshal(m.Value)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal message value to JSON")

		return kafkaGo.Message{}, fmt.Errorf("failed to marshal message value to JSON: %w", err)
	}

	return kafkaGo.Message{
		Key:   []byte(m.Key),
		Value: jsonValue,
	}, nil
}

// DecodeKafkaMessage unmarshals the JSON value of msg into T.
func DecodeKafkaMessage[T any](msg kafkaGo.Message) (T, error) {
	var value T

	if err := json.Unmarshal(msg.Value, &value); err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal Kafka message value from JSON")

		return value, fmt.Errorf("failed to unmarshal Kafka message value from JSON: %w", err)
	}

	return value, nil
}

type Client interface {
	Enabled() bool
	SendMessages(ctx context.Context, topic string, messages ...Message) (err error)
	Consume(ctx context.Context, consumerGroup, topic string, handler func(message kafkaGo.Message))
	Close() error
}

const (
	readBackoffMin = 100 * time.Millisecond
	readBackoffMax = 5 * time.Second
)

// messageReader and messageWriter are the parts of kafka-go's Reader and
// Writer the client uses.
type messageReader interface {
	ReadMessage(ctx context.Context) (kafkaGo.Message, error)
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkaGo.Message) error
	Close() error
}

type kafkaClientImpl struct {
	config    *config.Config
	dialer    *kafkaGo.Dialer
	transport *kafkaGo.Transport

	mu      sync.Mutex
	writers map[string]messageWriter
}

// New returns a client that silently drops messages when Kafka is disabled.
func New(config *config.Config) Client {
	if !config.Kafka.Enable || len(config.Kafka.Brokers) == 0 {
		log.Debug().Msg("Kafka disabled, record events will not be published")

		return disabledClient{}
	}

	var mechanism sasl.Mechanism
	if config.Kafka.SASL.Username != "" {
		mechanism = plain.Mechanism{
			Username: config.Kafka.SASL.Username,
			Password: config.Kafka.SASL.Password,
		}
	}

	log.Info().Strs("brokers", config.Kafka.Brokers).Msg("Kafka client initialized")

	return &kafkaClientImpl{
		config:    config,
		dialer:    &kafkaGo.Dialer{DualStack: true, SASLMechanism: mechanism},
		transport: &kafkaGo.Transport{SASL: mechanism},
		writers:   map[string]messageWriter{},
	}
}

func (k *kafkaClientImpl) Enabled() bool {
	return true
}

func (k *kafkaClientImpl) writer(topic string) messageWriter {
	k.mu.Lock()
	defer k.mu.Unlock()

	if writer, ok := k.writers[topic]; ok {
		return writer
	}

	writer := &kafkaGo.Writer{
		Addr:                   kafkaGo.TCP(k.config.Kafka.Brokers...),
		Topic:                  topic,
		Transport:              k.transport,
		AllowAutoTopicCreation: true,
		Async:                  true,
		Completion: func(messages []kafkaGo.Message, err error) {
			if err != nil {
				log.Error().Err(err).Str("topic", topic).Int("count", len(messages)).Msg("Failed to deliver messages to Kafka.")
			}
		},
	}
	k.writers[topic] = writer

	return writer
}

func (k *kafkaClientImpl) SendMessages(ctx context.Context, topic string, messages ...Message) error {
	msgs := make([]kafkaGo.Message, 0, len(messages))

	for _, message := range messages {
		msg, err := message.ToKafkaMessage()
		if err != nil {
			return fmt.Errorf("failed to convert message to Kafka message: %w", err)
		}

		msgs = append(msgs, msg)
	}

	if err := k.writer(topic).WriteMessages(ctx, msgs...); err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Failed to send message to Kafka.")

		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	log.Debug().Str("topic", topic).Int("count", len(msgs)).Msg("Queued messages for Kafka.")

	return nil
}

// Consume blocks until ctx is done, handing each message to handler in order.
func (k *kafkaClientImpl) Consume(ctx context.Context, consumerGroup, topic string, handler func(message kafkaGo.Message)) {
	groupID := k.config.Kafka.ConsumerGroup
	if consumerGroup != "" {
		groupID = consumerGroup
	}

	reader := kafkaGo.NewReader(kafkaGo.ReaderConfig{
		Brokers:     k.config.Kafka.Brokers,
		Topic:       topic,
		GroupID:     groupID,
		Dialer:      k.dialer,
		StartOffset: kafkaGo.FirstOffset,
	})

	consume(ctx, reader, logger.Component("kafka").With().Str("topic", topic).Str("group", groupID).Logger(), handler)
}

// consume reads until ctx is done. Read errors back off exponentially from
// readBackoffMin to readBackoffMax; a successful read resets the delay.
func consume(ctx context.Context, reader messageReader, l zerolog.Logger, handler func(message kafkaGo.Message)) {
	defer func() {
		if err := reader.Close(); err != nil {
			l.Error().Err(err).Msg("Failed to close Kafka reader.")
		}
	}()

	backoff := readBackoffMin

	for {
		msg, err := reader.ReadMessage(ctx)
		if ctx.Err() != nil {
			l.Info().Msg("Consumer context done.")

			return
		}

		if err != nil {
			l.Error().Err(err).Dur("retryIn", backoff).Msg("Failed to read message from Kafka.")

			select {
			case <-ctx.Done():
				l.Info().Msg("Consumer context done.")

				return
			case <-time.After(backoff):
			}

			backoff = min(backoff*2, readBackoffMax)

			continue
		}

		backoff = readBackoffMin

		handler(msg)
	}
}

// Close closes every writer, even when some fail, and joins their errors.
func (k *kafkaClientImpl) Close() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	errs := make([]error, 0, len(k.writers))

	for topic, writer := range k.writers {
		if err := writer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Kafka writer for %s: %w", topic, err))
		}
	}

	k.writers = map[string]messageWriter{}

	return errors.Join(errs...)
}

type disabledClient struct{}

func (disabledClient) Enabled() bool { return false }

func (disabledClient) SendMessages(context.Context, string, ...Message) error { return nil }

func (disabledClient) Consume(context.Context, string, string, func(kafkaGo.Message)) {
	log.Warn().Msg("Kafka disabled, nothing to consume")
}

func (disabledClient) Close() error { return nil }
