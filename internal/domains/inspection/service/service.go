package service

import (
	"context"
	"errors"
	"fmt"

	"riminspect/config"
	"riminspect/infras/otel"
	"riminspect/infras/s3"
	"riminspect/internal/domains/inspection/model"
	"riminspect/internal/domains/inspection/model/dto"
	"riminspect/internal/domains/inspection/repository"
	scheduleModel "riminspect/internal/domains/schedule/model"
	scheduleRepo "riminspect/internal/domains/schedule/repository"
	"riminspect/shared"
	"riminspect/shared/cache"
	"riminspect/shared/clock"
	"riminspect/shared/constant"
	gDto "riminspect/shared/dto"
	"riminspect/shared/failure"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

type Inspection interface {
	Create(ctx context.Context, scheduleID string, req dto.CreateInspectionRequest) (dto.InspectionResponse, error)
	GetAll(ctx context.Context, scheduleID string, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetInspectionsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.InspectionResponse, error)
}

type serviceImpl struct {
	repo         repository.Inspection
	scheduleRepo scheduleRepo.Schedule
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
	clock        clock.Clock
	s3           s3.S3
}

func New(
	repo repository.Inspection,
	scheduleRepo scheduleRepo.Schedule,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	clock clock.Clock,
	s3 s3.S3,
) Inspection {
	return &serviceImpl{
		repo:         repo,
		scheduleRepo: scheduleRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
		clock:        clock,
		s3:           s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, scheduleID string, req dto.CreateInspectionRequest) (res dto.InspectionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyOperator).(string)

	scheduleExists, err := s.scheduleRepo.Exist(ctx, activeScheduleByID(scheduleID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if schedule exists")

		return res, fmt.Errorf("failed to check if schedule exists: %w", err)
	}

	if !scheduleExists {
		return res, failure.NotFound("schedule not found") // nolint:wrapcheck
	}

	duplicate, err := s.repo.Exist(ctx, byScheduleAndRim(scheduleID, req.RimID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check for duplicate rim inspection")

		return res, fmt.Errorf("failed to check for duplicate rim inspection: %w", err)
	}

	if duplicate {
		return res, failure.Duplicate("rim already inspected for this schedule") // nolint:wrapcheck
	}

	imageURL := constant.Empty

	if req.Image != nil && req.ImageFile != nil {
		fileName := fmt.Sprintf("%s_%s", scheduleID, req.Image.Filename)

		imageURL, err = s.s3.UploadFile(ctx, s.cfg.External.S3.BucketName, model.EntityName, req.ImageFile, req.Image, fileName)
		if err != nil {
			log.Error().Err(err).Msg("failed to upload inspection image to S3")

			return res, fmt.Errorf("failed to upload inspection image to S3: %w", err)
		}
	}

	inspection := req.ToModel(scheduleID, imageURL, user, s.clock.Now())

	if err = s.repo.Insert(ctx, inspection); err != nil {
		// The unique constraint backstops the duplicate check above when two
		// requests race past it.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return res, failure.Duplicate("rim already inspected for this schedule") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create inspection")

		return res, fmt.Errorf("failed to create inspection: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, model.CacheGetAll)
		shared.InvalidateCaches(c, s.cache, model.CacheCount)
	}()

	res.FromModel(inspection)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, scheduleID string, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetInspectionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter = withSchedule(filter, scheduleID)
	cacheKey := shared.BuildCacheKeyWithQuery(model.CacheGetAll, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for inspections")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count inspections")

		return res, fmt.Errorf("failed to count inspections: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get inspections")

		return res, fmt.Errorf("failed to get inspections: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save inspections to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(model.CacheCount, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for inspection count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count inspections")

		return res, fmt.Errorf("failed to count inspections: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save inspection count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.InspectionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(model.CacheGet, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for inspection")

		return res, nil
	}

	inspection, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get inspection")

		return res, fmt.Errorf("failed to get inspection: %w", err)
	}

	if inspection.ID == constant.Empty {
		return res, failure.NotFound("inspection not found") // nolint:wrapcheck
	}

	res.FromModel(inspection)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save inspection to cache")
		}
	}()

	return res, nil
}

func activeScheduleByID(id string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    scheduleModel.FieldID,
				Value:    id,
				Operator: gDto.FilterOperatorEq,
				Table:    scheduleModel.TableName,
			},
			gDto.Filter{
				Field:    scheduleModel.FieldIsCanceled,
				Value:    false,
				Operator: gDto.FilterOperatorEq,
				Table:    scheduleModel.TableName,
			},
		},
	}
}

func byScheduleAndRim(scheduleID, rimID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldScheduleID,
				Value:    scheduleID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldRimID,
				Value:    rimID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}

func withSchedule(filter gDto.FilterGroup, scheduleID string) gDto.FilterGroup {
	if filter.Operator == constant.Empty {
		filter.Operator = gDto.FilterGroupOperatorAnd
	}

	filter.Filters = append(filter.Filters, gDto.Filter{
		Field:    model.FieldScheduleID,
		Value:    scheduleID,
		Operator: gDto.FilterOperatorEq,
		Table:    model.TableName,
	})

	return filter
}
