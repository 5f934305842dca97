package transition

import (
	"context"
	"fmt"

	"riminspect/infras/delayqueue"
	"riminspect/infras/otel"
	"riminspect/internal/domains/schedule/event"
	"riminspect/internal/domains/schedule/model"
	"riminspect/internal/domains/schedule/repository"
	"riminspect/shared"
	"riminspect/shared/cache"
	"riminspect/shared/clock"
	"riminspect/shared/constant"
	gDto "riminspect/shared/dto"

	"github.com/rs/zerolog/log"
)

// schedulerActor attributes transition writes in row metadata.
const schedulerActor = "scheduler"

// Applier advances a schedule to a transition task's target status. Guards
// keep the lifecycle forward-only no matter how late or how often a task is
// replayed: canceled and missing schedules are skipped, and a completed
// schedule never drops back to processing.
type Applier struct {
	repo   repository.Schedule
	events event.Publisher
	cache  cache.RedisCache
	otel   otel.Otel
	clock  clock.Clock
}

func NewApplier(
	repo repository.Schedule,
	events event.Publisher,
	cache cache.RedisCache,
	otl otel.Otel,
	clock clock.Clock,
) *Applier {
	return &Applier{
		repo:   repo,
		events: events,
		cache:  cache,
		otel:   otl,
		clock:  clock,
	}
}

func (a *Applier) Apply(ctx context.Context, task delayqueue.Task) (err error) {
	ctx, scope := a.otel.NewScope(ctx, constant.OtelTransitionScopeName, constant.OtelTransitionScopeName+".Apply")
	defer scope.End()
	defer scope.TraceIfError(err)

	schedule, err := a.repo.Get(ctx, byID(task.ScheduleID))
	if err != nil {
		log.Error().Err(err).Str("scheduleID", task.ScheduleID).Msg("failed to load schedule for transition")

		return fmt.Errorf("failed to load schedule for transition: %w", err)
	}

	if schedule.ID == constant.Empty {
		log.Debug().Str("scheduleID", task.ScheduleID).Msg("transition target no longer exists, skipping")

		return nil
	}

	if schedule.IsCanceled {
		log.Debug().Str("scheduleID", task.ScheduleID).Msg("schedule canceled, skipping transition")

		return nil
	}

	if schedule.Status == task.TargetStatus {
		return nil
	}

	if task.TargetStatus == model.StatusProcessing && schedule.Status == model.StatusCompleted {
		log.Debug().Str("scheduleID", task.ScheduleID).Msg("schedule already completed, skipping stale transition")

		return nil
	}

	// The guard repeats in the WHERE clause so a cancel or completion racing
	// this update loses nothing: the row simply stops matching.
	updatedFields := map[string]any{
		model.FieldStatus:        task.TargetStatus,
		constant.FieldModifiedAt: a.clock.Now(),
		constant.FieldModifiedBy: schedulerActor,
	}

	if err = a.repo.Update(ctx, updatedFields, guardedByID(task.ScheduleID, task.TargetStatus)); err != nil {
		log.Error().Err(err).Str("scheduleID", task.ScheduleID).Msg("failed to apply schedule transition")

		return fmt.Errorf("failed to apply schedule transition: %w", err)
	}

	log.Info().
		Str("scheduleID", task.ScheduleID).
		Str("from", schedule.Status).
		Str("to", task.TargetStatus).
		Msg("schedule transition applied")

	schedule.Status = task.TargetStatus

	go func() {
		c := context.WithoutCancel(ctx)

		a.events.Publish(c, event.TypeScheduleStatusChanged, schedule)

		if err := a.cache.Delete(c, shared.BuildCacheKey(model.CacheGet, task.ScheduleID)); err != nil {
			log.Error().Err(err).Msg("failed to delete schedule from cache")
		}

		shared.InvalidateCaches(c, a.cache, model.CacheGetAll)
		shared.InvalidateCaches(c, a.cache, model.CacheCount)
	}()

	return nil
}

// Worker drains the transition queue through the Applier.
type Worker struct {
	queue   delayqueue.Queue
	applier *Applier
}

func NewWorker(queue delayqueue.Queue, applier *Applier) *Worker {
	return &Worker{
		queue:   queue,
		applier: applier,
	}
}

func (w *Worker) Run(ctx context.Context) {
	w.queue.Run(ctx, w.applier.Apply)
}

func byID(id string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Value:    id,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}

// guardedByID matches the schedule only while the transition is still legal.
func guardedByID(id, target string) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{
			Field:    model.FieldID,
			Value:    id,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		},
		gDto.Filter{
			Field:    model.FieldIsCanceled,
			Value:    false,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		},
	}

	if target == model.StatusProcessing {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldStatus,
			Value:    model.StatusCompleted,
			Operator: gDto.FilterOperatorNotEq,
			Table:    model.TableName,
		})
	}

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  filters,
	}
}
