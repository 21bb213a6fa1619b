package models

import "github.com/google/uuid"

type Project struct {
	Base
	Name     string    `gorm:"not null" json:"name"`
	TenantID uuid.UUID `gorm:"type:uuid;index;not null" json:"tenantId"`

	Tenant *Tenant `gorm:"foreignKey:TenantID" json:"-"`
	Tasks  []Task  `gorm:"foreignKey:ProjectID" json:"-"`
}

func (Project) TableName() string {
	return "projects"
}
