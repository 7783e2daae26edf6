package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/m04kA/Mira-CourtBooking/internal/domain"
)

// Publisher отправляет события жизненного цикла бронирований в Kafka.
// Публикация идет после коммита транзакции и не влияет на результат
// операции: ошибку логирует вызывающий код.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher создает publisher поверх kafka.Writer
func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			BatchTimeout: 10 * time.Millisecond,
		},
	}
}

// ReservationCreated публикует событие о созданном бронировании
func (p *Publisher) ReservationCreated(ctx context.Context, res *domain.Reservation) error {
	return p.publish(ctx, TypeReservationCreated, res)
}

// ReservationDeleted публикует событие об удаленном бронировании
func (p *Publisher) ReservationDeleted(ctx context.Context, res *domain.Reservation) error {
	return p.publish(ctx, TypeReservationDeleted, res)
}

// Close закрывает соединение с брокером
func (p *Publisher) Close() error {
	return p.writer.Close()
}

func (p *Publisher) publish(ctx context.Context, eventType string, res *domain.Reservation) error {
	event := newEvent(eventType, res)

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("events: marshal %s: %w", eventType, err)
	}

	msg := kafka.Message{
		// Ключ - заявитель: события одной виллы идут в одну партицию
		// и сохраняют порядок
		Key:   []byte(res.Claimant.String()),
		Value: value,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("events: publish %s: %w", eventType, err)
	}
	return nil
}
