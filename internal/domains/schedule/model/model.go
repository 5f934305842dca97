package model

import (
	"riminspect/shared/model"
	"time"
)

const (
	TableName  = "schedules"
	EntityName = "schedule"

	FieldID            = "id"
	FieldLocation      = "location"
	FieldScheduledDate = "scheduled_date"
	FieldScheduledTime = "scheduled_time"
	FieldEndTime       = "end_time"
	FieldStatus        = "status"
	FieldIsCanceled    = "is_canceled"
)

// Status values form a forward-only lifecycle; a schedule never regresses.
const (
	StatusScheduled  = "scheduled"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
)

const (
	CacheGet    = "schedule:get"
	CacheGetAll = "schedule:gets"
	CacheCount  = "schedule:count"
)

type Schedule struct {
	ID            string    `db:"id"`
	Location      string    `db:"location"`
	ScheduledDate time.Time `db:"scheduled_date"`
	ScheduledTime time.Time `db:"scheduled_time"`
	EndTime       time.Time `db:"end_time"`
	Status        string    `db:"status"`
	IsCanceled    bool      `db:"is_canceled"`
	model.Metadata
}
