package notification

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/require"
)

func TestKafkaNotifier_SendEmail(t *testing.T) {
	t.Run("publishes the email request", func(t *testing.T) {
		producer := mocks.NewSyncProducer(t, nil)
		producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
			if msg.Topic != DefaultEmailTopic {
				return errors.New("unexpected topic " + msg.Topic)
			}
			raw, err := msg.Value.Encode()
			if err != nil {
				return err
			}
			var req EmailRequest
			if err := json.Unmarshal(raw, &req); err != nil {
				return err
			}
			if req.To != "admin@loja.example.com" || req.Subject != "Invoice for order 1042 was refunded" {
				return errors.New("unexpected request")
			}
			return nil
		})

		n := NewKafkaNotifier(producer, "", nil)
		require.NoError(t, n.SendEmail(context.Background(), "admin@loja.example.com", "Invoice for order 1042 was refunded", "body"))
		require.NoError(t, n.Close())
	})

	t.Run("broker failure", func(t *testing.T) {
		producer := mocks.NewSyncProducer(t, nil)
		producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

		n := NewKafkaNotifier(producer, "emails", nil)
		err := n.SendEmail(context.Background(), "admin@loja.example.com", "s", "b")
		require.ErrorIs(t, err, sarama.ErrOutOfBrokers)
		require.NoError(t, n.Close())
	})
}

func TestLogNotifier_SendEmail(t *testing.T) {
	require.NoError(t, NewLogNotifier(nil).SendEmail(context.Background(), "a@b.c", "s", "b"))
}
