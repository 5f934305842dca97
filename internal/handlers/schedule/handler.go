package schedule

import (
	"net/http"

	"riminspect/infras/otel"
	"riminspect/internal/domains/schedule/model"
	"riminspect/internal/domains/schedule/model/dto"
	"riminspect/internal/domains/schedule/service"
	"riminspect/shared/constant"
	gDto "riminspect/shared/dto"
	"riminspect/shared/validator"
	"riminspect/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Schedule
	otel    otel.Otel
}

func New(service service.Schedule, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers the schedule endpoints on the /schedules group provided by
// the parent router.
func (handler *Handler) Router(router chi.Router) {
	router.Post("/", handler.CreateSchedule)
	router.Post("/immediate", handler.CreateImmediateSchedule)
	router.Get("/", handler.GetSchedules)
	router.Get("/{id}", handler.GetScheduleByID)
	router.Patch("/{id}", handler.UpdateSchedule)
	router.Delete("/{id}", handler.DeleteSchedule)
}

// CreateSchedule books an inspection slot.
// @Summary Create a new schedule
// @Description Book an inspection slot at a location. The end time is derived from the start time plus the configured duration; overlapping slots at the same location are rejected.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param request body dto.CreateScheduleRequest true "Create Schedule Request"
// @Success 201 {object} response.Data[dto.ScheduleResponse] "Schedule created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/schedules [post]
func (handler *Handler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSchedule")
	defer scope.End()

	req := dto.CreateScheduleRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	schedule, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create schedule")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Schedule created successfully")

	response.WithJSON(w, http.StatusCreated, schedule)
}

// CreateImmediateSchedule books a slot that starts right away.
// @Summary Create an immediate schedule
// @Description Book an inspection slot starting at the current time with the short duration. The schedule begins in processing status.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param request body dto.CreateImmediateScheduleRequest true "Create Immediate Schedule Request"
// @Success 201 {object} response.Data[dto.ScheduleResponse] "Schedule created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/schedules/immediate [post]
func (handler *Handler) CreateImmediateSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateImmediateSchedule")
	defer scope.End()

	req := dto.CreateImmediateScheduleRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	schedule, err := handler.service.CreateImmediate(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create immediate schedule")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Immediate schedule created successfully")

	response.WithJSON(w, http.StatusCreated, schedule)
}

// GetSchedules retrieves all schedules based on query parameters.
// @Summary Get all schedules
// @Description Retrieve active schedules with optional filtering and pagination. Canceled schedules are excluded.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param location query string false "Filter by location"
// @Param status query string false "Filter by status (scheduled, processing, completed)"
// @Param scheduled_date query string false "Filter by scheduled date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetSchedulesResponse] "List of schedules"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/schedules [get]
func (handler *Handler) GetSchedules(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSchedules")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	location := r.URL.Query().Get(model.FieldLocation)
	status := r.URL.Query().Get(model.FieldStatus)
	scheduledDate := r.URL.Query().Get(model.FieldScheduledDate)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if location != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldLocation,
			Operator: gDto.FilterOperatorEq,
			Value:    location,
			Table:    model.TableName,
		})
	}

	if status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	if scheduledDate != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldScheduledDate,
			Operator: gDto.FilterOperatorEq,
			Value:    scheduledDate,
			Table:    model.TableName,
		})
	}

	schedules, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get schedules")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Schedules retrieved successfully")

	response.WithJSON(w, http.StatusOK, schedules)
}

// GetScheduleByID retrieves a schedule by its ID.
// @Summary Get a schedule by ID
// @Description Retrieve a schedule by its unique identifier.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID"
// @Success 200 {object} response.Data[dto.ScheduleResponse] "Schedule details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/schedules/{id} [get]
func (handler *Handler) GetScheduleByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetScheduleByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	schedule, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get schedule by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Schedule retrieved successfully")

	response.WithJSON(w, http.StatusOK, schedule)
}

// UpdateSchedule restarts a schedule by its ID.
// @Summary Update a schedule by ID
// @Description Restart a schedule: the window is reset to begin at the current time with the short duration and the status returns to processing. Only the location is editable.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID"
// @Param request body dto.UpdateScheduleRequest true "Update Schedule Request"
// @Success 200 {object} response.Data[dto.ScheduleResponse] "Schedule updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/schedules/{id} [patch]
func (handler *Handler) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSchedule")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateScheduleRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	schedule, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update schedule")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Schedule updated successfully")

	response.WithJSON(w, http.StatusOK, schedule)
}

// DeleteSchedule cancels a schedule by its ID.
// @Summary Cancel a schedule by ID
// @Description Cancel a schedule. The row is kept for history but the slot frees up. Completed schedules cannot be canceled.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID"
// @Success 200 {object} response.Message "Schedule canceled successfully"
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/schedules/{id} [delete]
func (handler *Handler) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteSchedule")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel schedule")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Schedule canceled successfully")

	response.WithMessage(w, http.StatusOK, "Schedule canceled successfully")
}
