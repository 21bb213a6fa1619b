package models

import "github.com/google/uuid"

// DefaultTaskStatus is stored when a task is created without a status.
// Status is otherwise free text.
const DefaultTaskStatus = "todo"

type Task struct {
	Base
	Title       string     `gorm:"not null" json:"title"`
	Description *string    `json:"description"`
	Status      string     `gorm:"not null;default:'todo'" json:"status"`
	ProjectID   uuid.UUID  `gorm:"type:uuid;index;not null" json:"projectId"`
	AssigneeID  *uuid.UUID `gorm:"type:uuid;index" json:"assigneeId"`

	Project  *Project `gorm:"foreignKey:ProjectID" json:"-"`
	Assignee *User    `gorm:"foreignKey:AssigneeID" json:"-"`
}

func (Task) TableName() string {
	return "tasks"
}
