package model

import (
	"riminspect/shared/model"
	"time"
)

const (
	TableName  = "inspections"
	EntityName = "inspection"

	FieldID          = "id"
	FieldScheduleID  = "schedule_id"
	FieldRimID       = "rim_id"
	FieldImageURL    = "image_url"
	FieldIsDefect    = "is_defect"
	FieldDescription = "description"
	FieldInspectedAt = "inspected_at"
)

const (
	CacheGet    = "inspection:get"
	CacheGetAll = "inspection:gets"
	CacheCount  = "inspection:count"
)

// Inspection is a single rim examined during a schedule. A rim is recorded at
// most once per schedule; the table enforces this with a unique constraint on
// (schedule_id, rim_id).
type Inspection struct {
	ID          string    `db:"id"`
	ScheduleID  string    `db:"schedule_id"`
	RimID       string    `db:"rim_id"`
	ImageURL    string    `db:"image_url"`
	IsDefect    bool      `db:"is_defect"`
	Description string    `db:"description"`
	InspectedAt time.Time `db:"inspected_at"`
	model.Metadata
}
