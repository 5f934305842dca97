package delayqueue

//go:generate go run go.uber.org/mock/mockgen -source=./delayqueue.go -destination=./mocks/delayqueue_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"riminspect/config"
	"riminspect/infras/otel"
	"riminspect/shared/constant"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Task is a deferred status transition for a schedule. Tasks carry the target
// status rather than a command, so replaying one is harmless: appliers check
// the schedule's current state before acting.
type Task struct {
	ScheduleID   string    `json:"schedule_id"`
	TargetStatus string    `json:"target_status"`
	FireAt       time.Time `json:"fire_at"`
}

type Handler func(ctx context.Context, task Task) error

type Queue interface {
	Enqueue(ctx context.Context, task Task) error
	Run(ctx context.Context, handler Handler)
}

type redisQueue struct {
	client *goRedis.Client
	config *config.Config
	otel   otel.Otel
}

func New(client *goRedis.Client, config *config.Config, otl otel.Otel) Queue {
	return &redisQueue{
		client: client,
		config: config,
		otel:   otl,
	}
}

// Enqueue stores the task in a sorted set scored by its fire instant. The
// member is the serialized task itself, so duplicate payloads collapse into
// one entry.
func (q *redisQueue) Enqueue(ctx context.Context, task Task) (err error) {
	ctx, scope := q.otel.NewScope(ctx, constant.OtelTransitionScopeName, constant.OtelTransitionScopeName+".Enqueue")
	defer scope.End()
	defer scope.TraceIfError(err)

	member, err := json.Marshal(task)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal transition task")

		return fmt.Errorf("failed to marshal transition task: %w", err)
	}

	err = q.client.ZAdd(ctx, q.config.Scheduler.QueueKey, goRedis.Z{
		Score:  float64(task.FireAt.Unix()),
		Member: member,
	}).Err()
	if err != nil {
		log.Error().Err(err).Str("scheduleID", task.ScheduleID).Msg("failed to enqueue transition task")

		return fmt.Errorf("failed to enqueue transition task: %w", err)
	}

	log.Info().
		Str("scheduleID", task.ScheduleID).
		Str("targetStatus", task.TargetStatus).
		Time("fireAt", task.FireAt).
		Msg("transition task enqueued")

	return nil
}

// Run polls for due tasks until the context is canceled. A task is claimed by
// removing it from the set; whichever worker's ZREM wins processes it, so
// delivery is at-least-once across workers.
func (q *redisQueue) Run(ctx context.Context, handler Handler) {
	interval := time.Duration(q.config.Scheduler.PollIntervalSeconds) * time.Second
	if interval <= 0 {
		interval = time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Info().
		Str("queueKey", q.config.Scheduler.QueueKey).
		Dur("pollInterval", interval).
		Msg("transition worker started")

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("transition worker stopped")

			return
		case <-ticker.C:
			q.drain(ctx, handler, interval)
		}
	}
}

func (q *redisQueue) drain(ctx context.Context, handler Handler, retryDelay time.Duration) {
	ctx, scope := q.otel.NewScope(ctx, constant.OtelTransitionScopeName, constant.OtelTransitionScopeName+".drain")
	defer scope.End()

	now := time.Now()

	members, err := q.client.ZRangeByScore(ctx, q.config.Scheduler.QueueKey, &goRedis.ZRangeBy{
		Min: "-inf",
		Max: strconv.FormatInt(now.Unix(), 10),
	}).Result()
	if err != nil {
		log.Error().Err(err).Msg("failed to read due transition tasks")
		scope.TraceError(err)

		return
	}

	for _, member := range members {
		removed, err := q.client.ZRem(ctx, q.config.Scheduler.QueueKey, member).Result()
		if err != nil {
			log.Error().Err(err).Msg("failed to claim transition task")

			continue
		}

		// Another worker claimed it first.
		if removed == 0 {
			continue
		}

		var task Task
		if err := json.Unmarshal([]byte(member), &task); err != nil {
			log.Error().Err(err).Str("member", member).Msg("dropping malformed transition task")

			continue
		}

		if err := handler(ctx, task); err != nil {
			log.Error().Err(err).Str("scheduleID", task.ScheduleID).Msg("transition task failed, requeueing")

			requeue := q.client.ZAdd(ctx, q.config.Scheduler.QueueKey, goRedis.Z{
				Score:  float64(now.Add(retryDelay).Unix()),
				Member: member,
			}).Err()
			if requeue != nil {
				log.Error().Err(requeue).Str("scheduleID", task.ScheduleID).Msg("failed to requeue transition task")
			}
		}
	}
}
