package event

import (
	"context"

	"riminspect/config"
	"riminspect/infras/kafka"
	"riminspect/infras/otel"
	"riminspect/internal/domains/schedule/model"
	"riminspect/shared/constant"
	"riminspect/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	TypeScheduleCreated       = "schedule.created"
	TypeScheduleCanceled      = "schedule.canceled"
	TypeScheduleStatusChanged = "schedule.status_changed"
)

type SchedulePayload struct {
	Event         string `json:"event"`
	ScheduleID    string `json:"schedule_id"`
	Location      string `json:"location"`
	ScheduledDate string `json:"scheduled_date"`
	Status        string `json:"status"`
	OccurredAt    string `json:"occurred_at"`
}

// Publisher emits schedule lifecycle events. Publishing is best effort: a
// broker outage must never fail the request that triggered the event.
type Publisher interface {
	Publish(ctx context.Context, eventType string, schedule model.Schedule)
}

type kafkaPublisher struct {
	client kafka.Client
	config *config.Config
	otel   otel.Otel
}

func NewKafka(client kafka.Client, config *config.Config, otl otel.Otel) Publisher {
	return &kafkaPublisher{
		client: client,
		config: config,
		otel:   otl,
	}
}

func (p *kafkaPublisher) Publish(ctx context.Context, eventType string, schedule model.Schedule) {
	if !p.config.Kafka.Enable {
		return
	}

	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()

	payload := SchedulePayload{
		Event:         eventType,
		ScheduleID:    schedule.ID,
		Location:      schedule.Location,
		ScheduledDate: schedule.ScheduledDate.Format("2006-01-02"),
		Status:        schedule.Status,
		OccurredAt:    timezone.Format(timezone.Now(), constant.DateFormat),
	}

	err := p.client.SendMessages(ctx, p.config.Kafka.Topic, kafka.Message{
		Key:   schedule.ID,
		Value: payload,
	})
	if err != nil {
		log.Error().Err(err).Str("event", eventType).Str("scheduleID", schedule.ID).Msg("failed to publish schedule event")
		scope.TraceError(err)
	}
}

type noopPublisher struct{}

// NewNoop returns a Publisher that discards events, for tests and for
// deployments without a broker.
func NewNoop() Publisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(_ context.Context, _ string, _ model.Schedule) {}
