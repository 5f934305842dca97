package dto

import (
	"mime/multipart"
	"time"

	"riminspect/internal/domains/inspection/model"
	"riminspect/shared"
	gDto "riminspect/shared/dto"
	gModel "riminspect/shared/model"
	"riminspect/shared/timezone"

	"github.com/google/uuid"
)

type CreateInspectionRequest struct {
	RimID       string                `json:"rim_id"      validate:"required,max=100"`
	IsDefect    bool                  `json:"is_defect"   validate:"omitempty"`
	Description string                `json:"description" validate:"omitempty,max=500"`
	Image       *multipart.FileHeader `json:"-"           swaggerignore:"true"`
	ImageFile   multipart.File        `json:"-"           swaggerignore:"true"`
}

func (c *CreateInspectionRequest) ToModel(scheduleID, imageURL, user string, inspectedAt time.Time) model.Inspection {
	return model.Inspection{
		ID:          uuid.NewString(),
		ScheduleID:  scheduleID,
		RimID:       c.RimID,
		ImageURL:    imageURL,
		IsDefect:    c.IsDefect,
		Description: c.Description,
		InspectedAt: inspectedAt,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type InspectionResponse struct {
	ID          string `json:"id"`
	ScheduleID  string `json:"schedule_id"`
	RimID       string `json:"rim_id"`
	ImageURL    string `json:"image_url"`
	IsDefect    bool   `json:"is_defect"`
	Description string `json:"description"`
	InspectedAt string `json:"inspected_at"`
	gDto.Metadata
}

func (r *InspectionResponse) FromModel(model model.Inspection) {
	r.ID = model.ID
	r.ScheduleID = model.ScheduleID
	r.RimID = model.RimID
	r.ImageURL = model.ImageURL
	r.IsDefect = model.IsDefect
	r.Description = model.Description
	r.InspectedAt = timezone.Format(model.InspectedAt, time.RFC3339)
	r.Metadata.FromModel(model.Metadata)
}

type GetInspectionsResponse struct {
	Inspections []InspectionResponse `json:"inspections"`
	TotalPage   int                  `json:"total_page"`
	TotalData   int                  `json:"total_data"`
}

func (r *GetInspectionsResponse) FromModels(models []model.Inspection, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Inspections = make([]InspectionResponse, len(models))
	for i, mod := range models {
		r.Inspections[i].FromModel(mod)
	}
}
