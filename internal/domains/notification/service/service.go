package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/notifier_mock.go -package=mocks

import (
	"context"
	"desk/config"
	"desk/infras/kafka"
	"desk/infras/otel"
	"desk/infras/webhook"
	"desk/internal/domains/notification/payload"
	"desk/internal/domains/record/model"
	"desk/shared/constant"
	"desk/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

const MessageStatusChangeDisabled = "status change notifications disabled"

// Notifier forwards record events to the webhook and the event stream. The
// returned Outcome describes the webhook call only; it never affects the
// record that was already persisted.
type Notifier interface {
	BookingCreated(ctx context.Context, booking model.Booking) webhook.Outcome
	ContactCreated(ctx context.Context, contact model.Contact) webhook.Outcome
	BookingStatusChanged(ctx context.Context, booking model.Booking, previous model.Status) webhook.Outcome
	ContactStatusChanged(ctx context.Context, contact model.Contact, previous model.Status) webhook.Outcome
}

// Event is the record event published to Kafka.
type Event struct {
	Type    string          `json:"type"`
	Kind    model.Kind      `json:"kind"`
	ID      string          `json:"id"`
	Payload payload.Payload `json:"payload"`
	Webhook webhook.Outcome `json:"webhook"`
}

type serviceImpl struct {
	dispatcher webhook.Dispatcher
	events     kafka.Client
	cfg        *config.Config
	otel       otel.Otel
	now        func() time.Time
}

func New(dispatcher webhook.Dispatcher, events kafka.Client, cfg *config.Config, otel otel.Otel) Notifier {
	return NewWithClock(dispatcher, events, cfg, otel, time.Now)
}

// NewWithClock uses now for meta.sent_at.
func NewWithClock(dispatcher webhook.Dispatcher, events kafka.Client, cfg *config.Config, otel otel.Otel, now func() time.Time) Notifier {
	return &serviceImpl{
		dispatcher: dispatcher,
		events:     events,
		cfg:        cfg,
		otel:       otel,
		now:        now,
	}
}

func (s *serviceImpl) meta() payload.Meta {
	return payload.NewMeta(s.now(), timezone.GetLocation(), s.cfg.App.Title, s.cfg.Webhook.Source)
}

// headers carries the optional extra header; the value is never logged.
func (s *serviceImpl) headers() map[string]string {
	if s.cfg.Webhook.HeaderName == constant.Empty {
		return nil
	}

	return map[string]string{s.cfg.Webhook.HeaderName: s.cfg.Webhook.HeaderValue}
}

func (s *serviceImpl) BookingCreated(ctx context.Context, booking model.Booking) webhook.Outcome {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".notification.BookingCreated")
	defer scope.End()

	return s.notify(ctx, model.KindBooking, booking.ID, payload.Booking(booking, s.meta(), timezone.GetLocation()), true)
}

func (s *serviceImpl) ContactCreated(ctx context.Context, contact model.Contact) webhook.Outcome {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".notification.ContactCreated")
	defer scope.End()

	return s.notify(ctx, model.KindContact, contact.ID, payload.Contact(contact, s.meta()), true)
}

func (s *serviceImpl) BookingStatusChanged(ctx context.Context, booking model.Booking, previous model.Status) webhook.Outcome {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".notification.BookingStatusChanged")
	defer scope.End()

	body := payload.BookingStatusChanged(booking, previous, s.meta(), timezone.GetLocation())

	return s.notify(ctx, model.KindBooking, booking.ID, body, s.cfg.Webhook.NotifyStatusChange)
}

func (s *serviceImpl) ContactStatusChanged(ctx context.Context, contact model.Contact, previous model.Status) webhook.Outcome {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".notification.ContactStatusChanged")
	defer scope.End()

	body := payload.ContactStatusChanged(contact, previous, s.meta())

	return s.notify(ctx, model.KindContact, contact.ID, body, s.cfg.Webhook.NotifyStatusChange)
}

func (s *serviceImpl) notify(ctx context.Context, kind model.Kind, id string, body payload.Payload, sendWebhook bool) webhook.Outcome {
	outcome := webhook.Skipped(MessageStatusChangeDisabled)
	if sendWebhook {
		outcome = s.dispatcher.Dispatch(ctx, s.cfg.Webhook.URL, body, s.headers())
	}

	logger := log.With().Str("type", body.Type).Str("id", id).Str("webhook", string(outcome.State)).Logger()

	if outcome.State == webhook.StateFailed {
		logger.Warn().Str("message", outcome.Message).Msg("record saved but webhook notification failed")
	} else {
		logger.Info().Msg("record notification handled")
	}

	s.publish(ctx, Event{Type: body.Type, Kind: kind, ID: id, Payload: body, Webhook: outcome})

	return outcome
}

func (s *serviceImpl) publish(ctx context.Context, event Event) {
	if s.events == nil || !s.events.Enabled() {
		return
	}

	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".notification.Publish")
	defer scope.End()

	scope.SetAttribute("topic", s.cfg.Kafka.Topic)

	err := s.events.SendMessages(ctx, s.cfg.Kafka.Topic, kafka.Message{Key: event.ID, Value: event})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("type", event.Type).Str("id", event.ID).Msg("failed to publish record event")
	}
}
