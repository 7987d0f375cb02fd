package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"iugu_gateway/internal/usecase/interfaces"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

const DefaultEmailTopic = "notifications.email"

// EmailRequest is the message a mailer service consumes from the email topic.
type EmailRequest struct {
	To        string    `json:"to"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Source    string    `json:"source"`
	Timestamp time.Time `json:"timestamp"`
}

// KafkaNotifier publishes admin emails to Kafka instead of sending them
// directly.
type KafkaNotifier struct {
	producer sarama.SyncProducer
	topic    string
	log      *zap.Logger
}

var _ interfaces.INotifier = (*KafkaNotifier)(nil)

func NewKafkaNotifier(producer sarama.SyncProducer, topic string, log *zap.Logger) *KafkaNotifier {
	if topic == "" {
		topic = DefaultEmailTopic
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &KafkaNotifier{producer: producer, topic: topic, log: log.Named("notifier")}
}

// NewSyncProducer builds a producer that waits for all in-sync replicas.
func NewSyncProducer(brokers []string) (sarama.SyncProducer, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create producer: %w", err)
	}
	return producer, nil
}

func (n *KafkaNotifier) SendEmail(_ context.Context, to, subject, body string) error {
	data, err := json.Marshal(EmailRequest{
		To:        to,
		Subject:   subject,
		Body:      body,
		Source:    "iugu-gateway",
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal email request: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: n.topic,
		Key:   sarama.StringEncoder(to),
		Value: sarama.ByteEncoder(data),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte("email.requested")},
		},
	}

	partition, offset, err := n.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to publish email request: %w", err)
	}
	n.log.Info("email request published",
		zap.String("topic", n.topic),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset),
	)
	return nil
}

func (n *KafkaNotifier) Close() error {
	return n.producer.Close()
}

// LogNotifier only logs emails. It is used when no broker is configured.
type LogNotifier struct {
	log *zap.Logger
}

var _ interfaces.INotifier = (*LogNotifier)(nil)

func NewLogNotifier(log *zap.Logger) *LogNotifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogNotifier{log: log.Named("notifier")}
}

func (n *LogNotifier) SendEmail(_ context.Context, to, subject, body string) error {
	n.log.Info("email not delivered, no broker configured",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.Int("body_len", len(body)),
	)
	return nil
}
