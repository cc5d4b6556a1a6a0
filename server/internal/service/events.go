package service

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"

	"github.com/Astemirdum/shareit-service/pkg/kafka"
	"github.com/Astemirdum/shareit-service/server/internal/model"
)

// EventPublisher emits booking lifecycle events. Delivery is best effort:
// failures are logged by the caller and never surfaced to the client.
type EventPublisher interface {
	PublishBookingEvent(ctx context.Context, ev model.BookingEvent) error
}

type kafkaPublisher struct {
	producer sarama.SyncProducer
}

func NewKafkaPublisher(producer sarama.SyncProducer) EventPublisher {
	return &kafkaPublisher{producer: producer}
}

func (p *kafkaPublisher) PublishBookingEvent(_ context.Context, ev model.BookingEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{Topic: kafka.BookingTopic, Value: sarama.ByteEncoder(data)}
	_, _, err = p.producer.SendMessage(msg)
	return err
}

type nopPublisher struct{}

func NewNopPublisher() EventPublisher {
	return nopPublisher{}
}

func (nopPublisher) PublishBookingEvent(context.Context, model.BookingEvent) error {
	return nil
}
