package entity

import "time"

// Task statuses.
const (
	TaskStatusOpen       = "OPEN"
	TaskStatusInProgress = "IN_PROGRESS"
	TaskStatusDone       = "DONE"
)

// ValidTaskStatus reports whether s is a known task status.
func ValidTaskStatus(s string) bool {
	switch s {
	case TaskStatusOpen, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

// Task is a follow-up item, optionally tied to a customer and an assignee.
type Task struct {
	ID          string     `bson:"_id" json:"id"`
	Title       string     `bson:"title" json:"title"`
	Description string     `bson:"description,omitempty" json:"description,omitempty"`
	AssigneeID  string     `bson:"assigneeId,omitempty" json:"assigneeId,omitempty"`
	CustomerID  string     `bson:"customerId,omitempty" json:"customerId,omitempty"`
	Status      string     `bson:"status" json:"status"`
	DueAt       *time.Time `bson:"dueAt,omitempty" json:"dueAt,omitempty"`
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time  `bson:"updatedAt" json:"updatedAt"`
}
