package service

import (
	"context"
	"fmt"
	"time"

	"riminspect/config"
	"riminspect/infras/delayqueue"
	"riminspect/infras/otel"
	"riminspect/internal/domains/schedule/event"
	"riminspect/internal/domains/schedule/model"
	"riminspect/internal/domains/schedule/model/dto"
	"riminspect/internal/domains/schedule/repository"
	"riminspect/internal/domains/schedule/window"
	"riminspect/shared"
	"riminspect/shared/cache"
	"riminspect/shared/clock"
	"riminspect/shared/constant"
	gDto "riminspect/shared/dto"
	"riminspect/shared/failure"

	"github.com/rs/zerolog/log"
)

type Schedule interface {
	Create(ctx context.Context, req dto.CreateScheduleRequest) (dto.ScheduleResponse, error)
	CreateImmediate(ctx context.Context, req dto.CreateImmediateScheduleRequest) (dto.ScheduleResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetSchedulesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ScheduleResponse, error)
	Update(ctx context.Context, req dto.UpdateScheduleRequest, id string) (dto.ScheduleResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo   repository.Schedule
	cfg    *config.Config
	cache  cache.RedisCache
	otel   otel.Otel
	clock  clock.Clock
	queue  delayqueue.Queue
	events event.Publisher
	slots  *slotLocker
}

func New(
	repo repository.Schedule,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	clock clock.Clock,
	queue delayqueue.Queue,
	events event.Publisher,
) Schedule {
	return &serviceImpl{
		repo:   repo,
		cfg:    cfg,
		cache:  cache,
		otel:   otel,
		clock:  clock,
		queue:  queue,
		events: events,
		slots:  newSlotLocker(),
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateScheduleRequest) (res dto.ScheduleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyOperator).(string)

	w, err := window.Compute(req.ScheduledDate, req.ScheduledTime, window.Duration(s.cfg, window.PolicyStandard))
	if err != nil {
		log.Error().Err(err).Msg("failed to compute schedule window")

		return res, err
	}

	unlock := s.slots.Lock(req.Location, w.Date)
	defer unlock()

	conflict, err := s.repo.HasConflict(ctx, req.Location, w.Date, w.Start, w.End, constant.Empty)
	if err != nil {
		log.Error().Err(err).Msg("failed to check schedule conflict")

		return res, fmt.Errorf("failed to check schedule conflict: %w", err)
	}

	if conflict {
		return res, failure.Conflict("schedule overlaps an existing booking at this location") // nolint:wrapcheck
	}

	schedule := req.ToModel(user, model.StatusScheduled, w)

	if err = s.repo.Insert(ctx, schedule); err != nil {
		log.Error().Err(err).Msg("failed to create schedule")

		return res, fmt.Errorf("failed to create schedule: %w", err)
	}

	if err = s.enqueueTransition(ctx, schedule.ID, model.StatusProcessing, w.StartAt); err != nil {
		return res, err
	}

	if err = s.enqueueTransition(ctx, schedule.ID, model.StatusCompleted, w.EndAt); err != nil {
		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.events.Publish(c, event.TypeScheduleCreated, schedule)

		shared.InvalidateCaches(c, s.cache, model.CacheGetAll)
		shared.InvalidateCaches(c, s.cache, model.CacheCount)
	}()

	res.FromModel(schedule)

	return res, nil
}

func (s *serviceImpl) CreateImmediate(ctx context.Context, req dto.CreateImmediateScheduleRequest) (res dto.ScheduleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateImmediate")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyOperator).(string)

	w, err := window.FromInstant(s.clock.Now(), window.Duration(s.cfg, window.PolicyShort))
	if err != nil {
		log.Error().Err(err).Msg("failed to compute immediate schedule window")

		return res, err
	}

	unlock := s.slots.Lock(req.Location, w.Date)
	defer unlock()

	conflict, err := s.repo.HasConflict(ctx, req.Location, w.Date, w.Start, w.End, constant.Empty)
	if err != nil {
		log.Error().Err(err).Msg("failed to check schedule conflict")

		return res, fmt.Errorf("failed to check schedule conflict: %w", err)
	}

	if conflict {
		return res, failure.Conflict("schedule overlaps an existing booking at this location") // nolint:wrapcheck
	}

	schedule := req.ToModel(user, w)

	if err = s.repo.Insert(ctx, schedule); err != nil {
		log.Error().Err(err).Msg("failed to create immediate schedule")

		return res, fmt.Errorf("failed to create immediate schedule: %w", err)
	}

	// The schedule starts in processing, so only completion is deferred.
	if err = s.enqueueTransition(ctx, schedule.ID, model.StatusCompleted, w.EndAt); err != nil {
		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.events.Publish(c, event.TypeScheduleCreated, schedule)

		shared.InvalidateCaches(c, s.cache, model.CacheGetAll)
		shared.InvalidateCaches(c, s.cache, model.CacheCount)
	}()

	res.FromModel(schedule)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetSchedulesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter = withActiveOnly(filter)
	cacheKey := shared.BuildCacheKeyWithQuery(model.CacheGetAll, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for schedules")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count schedules")

		return res, fmt.Errorf("failed to count schedules: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get schedules")

		return res, fmt.Errorf("failed to get schedules: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save schedules to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter = withActiveOnly(filter)
	cacheKey := shared.BuildCacheKeyWithQuery(model.CacheCount, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for schedule count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count schedules")

		return res, fmt.Errorf("failed to count schedules: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save schedule count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ScheduleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(model.CacheGet, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for schedule")

		return res, nil
	}

	schedule, err := s.repo.Get(ctx, activeByID(id))
	if err != nil {
		log.Error().Err(err).Msg("failed to get schedule")

		return res, fmt.Errorf("failed to get schedule: %w", err)
	}

	if schedule.ID == constant.Empty {
		return res, failure.NotFound("schedule not found") // nolint:wrapcheck
	}

	res.FromModel(schedule)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save schedule to cache")
		}
	}()

	return res, nil
}

// Update restarts a schedule: its window is rebuilt from the current instant
// with the short duration and the status is forced back to processing. A new
// completion transition is enqueued for the fresh window.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateScheduleRequest, id string) (res dto.ScheduleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyOperator).(string)

	schedule, err := s.repo.Get(ctx, activeByID(id))
	if err != nil {
		log.Error().Err(err).Msg("failed to get schedule")

		return res, fmt.Errorf("failed to get schedule: %w", err)
	}

	if schedule.ID == constant.Empty {
		return res, failure.NotFound("schedule not found") // nolint:wrapcheck
	}

	location := schedule.Location
	if req.Location != constant.Empty {
		location = req.Location
	}

	w, err := window.FromInstant(s.clock.Now(), window.Duration(s.cfg, window.PolicyShort))
	if err != nil {
		log.Error().Err(err).Msg("failed to compute updated schedule window")

		return res, err
	}

	unlock := s.slots.Lock(location, w.Date)
	defer unlock()

	conflict, err := s.repo.HasConflict(ctx, location, w.Date, w.Start, w.End, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to check schedule conflict")

		return res, fmt.Errorf("failed to check schedule conflict: %w", err)
	}

	if conflict {
		return res, failure.Conflict("schedule overlaps an existing booking at this location") // nolint:wrapcheck
	}

	now := s.clock.Now()

	updatedFields := map[string]any{
		model.FieldLocation:      location,
		model.FieldScheduledDate: w.Date,
		model.FieldScheduledTime: w.Start,
		model.FieldEndTime:       w.End,
		model.FieldStatus:        model.StatusProcessing,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, activeByID(id)); err != nil {
		log.Error().Err(err).Msg("failed to update schedule")

		return res, fmt.Errorf("failed to update schedule: %w", err)
	}

	if err = s.enqueueTransition(ctx, id, model.StatusCompleted, w.EndAt); err != nil {
		return res, err
	}

	schedule.Location = location
	schedule.ScheduledDate = w.Date
	schedule.ScheduledTime = w.Start
	schedule.EndTime = w.End
	schedule.Status = model.StatusProcessing
	schedule.ModifiedAt = now
	schedule.ModifiedBy = user

	go func() {
		c := context.WithoutCancel(ctx)

		s.events.Publish(c, event.TypeScheduleStatusChanged, schedule)

		if err := s.cache.Delete(c, shared.BuildCacheKey(model.CacheGet, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete schedule from cache")
		}

		shared.InvalidateCaches(c, s.cache, model.CacheGetAll)
		shared.InvalidateCaches(c, s.cache, model.CacheCount)
	}()

	res.FromModel(schedule)

	return res, nil
}

// Delete cancels a schedule. Rows are never removed; cancellation flips
// is_canceled so the slot frees up while history is kept.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyOperator).(string)

	schedule, err := s.repo.Get(ctx, activeByID(id))
	if err != nil {
		log.Error().Err(err).Msg("failed to get schedule")

		return fmt.Errorf("failed to get schedule: %w", err)
	}

	if schedule.ID == constant.Empty {
		return failure.NotFound("schedule not found") // nolint:wrapcheck
	}

	if schedule.Status == model.StatusCompleted {
		return failure.InvalidState("completed schedule cannot be canceled") // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldIsCanceled:    true,
		constant.FieldModifiedAt: s.clock.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, activeByID(id)); err != nil {
		log.Error().Err(err).Msg("failed to cancel schedule")

		return fmt.Errorf("failed to cancel schedule: %w", err)
	}

	schedule.IsCanceled = true

	go func() {
		c := context.WithoutCancel(ctx)

		s.events.Publish(c, event.TypeScheduleCanceled, schedule)

		if err := s.cache.Delete(c, shared.BuildCacheKey(model.CacheGet, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete schedule from cache")
		}

		shared.InvalidateCaches(c, s.cache, model.CacheGetAll)
		shared.InvalidateCaches(c, s.cache, model.CacheCount)
	}()

	return nil
}

func (s *serviceImpl) enqueueTransition(ctx context.Context, id, target string, fireAt time.Time) error {
	err := s.queue.Enqueue(ctx, delayqueue.Task{
		ScheduleID:   id,
		TargetStatus: target,
		FireAt:       fireAt,
	})
	if err != nil {
		log.Error().Err(err).Str("scheduleID", id).Str("targetStatus", target).Msg("failed to enqueue schedule transition")

		return fmt.Errorf("failed to enqueue schedule transition: %w", err)
	}

	return nil
}

func activeByID(id string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
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
		},
	}
}

// withActiveOnly hides canceled rows from list and count queries.
func withActiveOnly(filter gDto.FilterGroup) gDto.FilterGroup {
	if filter.Operator == constant.Empty {
		filter.Operator = gDto.FilterGroupOperatorAnd
	}

	filter.Filters = append(filter.Filters, gDto.Filter{
		Field:    model.FieldIsCanceled,
		Value:    false,
		Operator: gDto.FilterOperatorEq,
		Table:    model.TableName,
	})

	return filter
}
