package dto

import (
	"riminspect/internal/domains/schedule/model"
	"riminspect/internal/domains/schedule/window"
	"riminspect/shared"
	gDto "riminspect/shared/dto"
	gModel "riminspect/shared/model"
	"riminspect/shared/timezone"

	"github.com/google/uuid"
)

// CreateScheduleRequest books a slot at a caller-chosen date and start time.
// end_time is accepted for backward compatibility but ignored: the end is
// always derived from the start plus the configured duration.
type CreateScheduleRequest struct {
	Location      string `json:"location"       validate:"required,max=150"`
	ScheduledDate string `json:"scheduled_date" validate:"required"`
	ScheduledTime string `json:"scheduled_time" validate:"required"`
	EndTime       string `json:"end_time"       validate:"omitempty"`
}

func (c *CreateScheduleRequest) ToModel(user, status string, w window.Window) model.Schedule {
	return model.Schedule{
		ID:            uuid.NewString(),
		Location:      c.Location,
		ScheduledDate: w.Date,
		ScheduledTime: w.Start,
		EndTime:       w.End,
		Status:        status,
		IsCanceled:    false,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// CreateImmediateScheduleRequest books a slot starting right now.
type CreateImmediateScheduleRequest struct {
	Location string `json:"location" validate:"required,max=150"`
}

func (c *CreateImmediateScheduleRequest) ToModel(user string, w window.Window) model.Schedule {
	create := CreateScheduleRequest{Location: c.Location}

	return create.ToModel(user, model.StatusProcessing, w)
}

// UpdateScheduleRequest restarts a schedule: its window is reset to begin at
// the current time and its status returns to processing. Only the location is
// caller-editable.
type UpdateScheduleRequest struct {
	Location string `json:"location" validate:"omitempty,max=150"`
}

type ScheduleResponse struct {
	ID            string `json:"id"`
	Location      string `json:"location"`
	ScheduledDate string `json:"scheduled_date"`
	ScheduledTime string `json:"scheduled_time"`
	EndTime       string `json:"end_time"`
	Status        string `json:"status"`
	IsCanceled    bool   `json:"is_canceled"`
	gDto.Metadata
}

func (r *ScheduleResponse) FromModel(model model.Schedule) {
	r.ID = model.ID
	r.Location = model.Location
	r.ScheduledDate = model.ScheduledDate.Format("2006-01-02")
	r.ScheduledTime = model.ScheduledTime.Format("15:04:05")
	r.EndTime = model.EndTime.Format("15:04:05")
	r.Status = model.Status
	r.IsCanceled = model.IsCanceled
	r.Metadata.FromModel(model.Metadata)
}

type GetSchedulesResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetSchedulesResponse) FromModels(models []model.Schedule, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Schedules = make([]ScheduleResponse, len(models))
	for i, mod := range models {
		r.Schedules[i].FromModel(mod)
	}
}
