package models

import (
	"time"

	"github.com/google/uuid"
)

// ShowcaseApproval is the single approval-status record of a showcase
type ShowcaseApproval struct {
	ShowcaseID     uuid.UUID      `json:"showcase_id" gorm:"type:uuid;primaryKey"`
	Feedback       string         `json:"feedback" gorm:"type:text"`
	Status         ApprovalStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	StatusModified time.Time      `json:"status_modified"`

	Showcase *Package `json:"-" gorm:"foreignKey:ShowcaseID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE"`
}

// TableName returns the table name for ShowcaseApproval
func (ShowcaseApproval) TableName() string {
	return "showcase_approval"
}
