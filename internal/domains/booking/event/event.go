package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=../mocks/event_mock.go -package=mocks

import (
	"context"
	"fmt"
	"pororo/config"
	"pororo/infras/kafka"
	"pororo/infras/otel"
	"pororo/internal/domains/booking/model"
	"pororo/internal/domains/booking/model/dto"
	"pororo/shared/constant"
	"pororo/shared/timezone"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Type string

const (
	TypeCreated Type = "booking.created"
	TypeUpdated Type = "booking.updated"
	TypeDeleted Type = "booking.deleted"
)

// Event describes one committed change to the ledger.
type Event struct {
	ID         string              `json:"id"`
	Type       Type                `json:"type"`
	OccurredAt time.Time           `json:"occurred_at"`
	Booking    dto.BookingResponse `json:"booking"`
}

func New(eventType Type, booking model.Booking) Event {
	e := Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: timezone.Now(),
	}
	e.Booking.FromModel(booking)

	return e
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// NewPublisher sends events to Kafka when it is enabled and drops them otherwise.
func NewPublisher(cfg *config.Config, client kafka.Client, otel otel.Otel) Publisher {
	if !cfg.Kafka.Enable {
		log.Info().Msg("Kafka disabled, booking events will not be published")

		return noopPublisher{}
	}

	return &kafkaPublisher{
		client: client,
		topic:  cfg.Kafka.Topic,
		otel:   otel,
	}
}

type kafkaPublisher struct {
	client kafka.Client
	topic  string
	otel   otel.Otel
}

func (p *kafkaPublisher) Publish(ctx context.Context, event Event) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		"event.id":   event.ID,
		"event.type": string(event.Type),
	})

	msg := kafka.Message{
		Key:   strconv.Itoa(event.Booking.CustomerID),
		Value: event,
	}

	if err = p.client.SendMessages(ctx, p.topic, msg); err != nil {
		return fmt.Errorf("failed to publish %s: %w", event.Type, err)
	}

	return nil
}

type noopPublisher struct{}

func (noopPublisher) Publish(_ context.Context, _ Event) error {
	return nil
}
