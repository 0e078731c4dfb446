package model

import (
	"time"
)

type TaskID string

type RecurrenceUnit string

const (
	UnitDays   RecurrenceUnit = "days"
	UnitWeeks  RecurrenceUnit = "weeks"
	UnitMonths RecurrenceUnit = "months"
)

// Recurrence describes how far forward to schedule a successor task
// when a task is completed. The zero value means "not recurring".
type Recurrence struct {
	Enabled  bool           `json:"enabled"`
	Interval int            `json:"interval,omitempty"`
	Unit     RecurrenceUnit `json:"unit,omitempty"`
}

type Task struct {
	ID          TaskID     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	DueDate     time.Time  `json:"dueDate"`
	TypeID      TaskTypeID `json:"typeId"`
	Important   bool       `json:"important"`
	Completed   bool       `json:"completed"`

	CreatedAt     time.Time  `json:"createdAt"`
	LastCompleted *time.Time `json:"lastCompleted,omitempty"`

	Recurrence Recurrence `json:"recurrence"`
}
