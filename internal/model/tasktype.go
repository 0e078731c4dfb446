package model

// TaskTypeID is a unique identifier for a task type.
type TaskTypeID string

// TaskType is a user-defined category used to group and filter tasks.
// Types are created by explicit user action and never removed.
type TaskType struct {
	ID    TaskTypeID `json:"id"`
	Name  string     `json:"name"`
	Emoji string     `json:"emoji"`
	Color string     `json:"color"`
}
