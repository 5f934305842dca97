package inspection

import (
	"net/http"
	"strings"

	"riminspect/infras/otel"
	"riminspect/internal/domains/inspection/model"
	"riminspect/internal/domains/inspection/model/dto"
	"riminspect/internal/domains/inspection/service"
	"riminspect/shared"
	"riminspect/shared/constant"
	gDto "riminspect/shared/dto"
	"riminspect/shared/validator"
	"riminspect/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

const (
	formFieldRimID       = "rim_id"
	formFieldIsDefect    = "is_defect"
	formFieldDescription = "description"
	formFieldImage       = "image"
)

type Handler struct {
	service service.Inspection
	otel    otel.Otel
}

func New(service service.Inspection, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers inspection endpoints nested under a schedule.
func (handler *Handler) Router(router chi.Router) {
	router.Route("/{id}/inspections", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateInspection)
		routerGroup.Get("/", handler.GetInspections)
	})
}

// CreateInspection records a rim inspection for a schedule.
// @Summary Create a rim inspection
// @Description Record one inspected rim for a schedule. Accepts JSON or multipart form data with an optional image; each rim can be recorded only once per schedule.
// @Tags Inspection
// @Accept json
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Schedule ID"
// @Param request body dto.CreateInspectionRequest true "Create Inspection Request"
// @Success 201 {object} response.Data[dto.InspectionResponse] "Inspection created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/schedules/{id}/inspections [post]
func (handler *Handler) CreateInspection(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateInspection")
	defer scope.End()

	scheduleID := chi.URLParam(r, constant.RequestParamID)

	req, err := handler.parseRequest(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse inspection request")

		response.WithError(w, err)

		return
	}

	inspection, err := handler.service.Create(ctx, scheduleID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create inspection")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inspection created successfully")

	response.WithJSON(w, http.StatusCreated, inspection)
}

// GetInspections retrieves the inspections recorded for a schedule.
// @Summary Get inspections for a schedule
// @Description Retrieve all rim inspections attached to a schedule with optional filtering and pagination.
// @Tags Inspection
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param is_defect query string false "Filter by defect flag (true/false)"
// @Success 200 {object} response.Data[dto.GetInspectionsResponse] "List of inspections"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/schedules/{id}/inspections [get]
func (handler *Handler) GetInspections(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInspections")
	defer scope.End()

	scheduleID := chi.URLParam(r, constant.RequestParamID)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if isDefect := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldIsDefect)); isDefect != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldIsDefect,
			Operator: gDto.FilterOperatorEq,
			Value:    *isDefect,
			Table:    model.TableName,
		})
	}

	inspections, err := handler.service.GetAll(ctx, scheduleID, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get inspections")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inspections retrieved successfully")

	response.WithJSON(w, http.StatusOK, inspections)
}

// parseRequest accepts the inspection payload either as JSON or as a
// multipart form carrying the rim photo.
func (handler *Handler) parseRequest(r *http.Request) (req dto.CreateInspectionRequest, err error) {
	contentType := r.Header.Get(constant.RequestHeaderContentType)

	if !strings.HasPrefix(contentType, constant.ContentTypeMultipartFormData) {
		if err = validator.Validate(r.Body, &req); err != nil {
			return req, err
		}

		return req, nil
	}

	if err = r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		return req, err
	}

	req.RimID = r.FormValue(formFieldRimID)
	req.Description = r.FormValue(formFieldDescription)

	if isDefect := shared.ConvertStringToBool(r.FormValue(formFieldIsDefect)); isDefect != nil {
		req.IsDefect = *isDefect
	}

	file, fileHeader, err := r.FormFile(formFieldImage)
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return req, err
	}

	return req, nil
}
